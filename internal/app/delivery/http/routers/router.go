package routers

import (
	"path"
	"sensus-service/internal/app/config"
	"sensus-service/internal/app/delivery/http/controllers"
	"sensus-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

const authBlockTime = time.Minute

type Controllers struct {
	Assessment  *controllers.AssessmentController
	Auth        *controllers.AuthController
	Diary       *controllers.DiaryController
	Preference  *controllers.PreferenceController
	Testimonial *controllers.TestimonialController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	mw *middlewares.Middlewares,
	controllers Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID", "X-Viewer-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging)
	router.Use(mw.ErrorHandler)
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second))
	router.Use(chimiddleware.RequestSize(int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20))

	authLimiter := middlewares.NewRateLimiter(
		internalConfig.App.AuthRateLimitPerMinute,
		internalConfig.App.AuthRateLimitBurst,
		time.Minute,
		authBlockTime,
		logger,
	)

	basePath := path.Join("/", internalConfig.App.EndpointPrefix, internalConfig.App.Version)
	router.Route(basePath, func(r chi.Router) {
		r.Route("/assessments", func(r chi.Router) {
			attachAssessmentRoutes(r, mw, controllers.Assessment)
		})

		r.Route("/assessment-results", func(r chi.Router) {
			attachAssessmentResultRoutes(r, mw, controllers.Assessment)
		})

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, mw, authLimiter, controllers.Auth)
		})

		r.Route("/diary-entries", func(r chi.Router) {
			attachDiaryRoutes(r, mw, controllers.Diary)
		})

		r.Route("/preferences", func(r chi.Router) {
			attachPreferenceRoutes(r, mw, controllers.Preference)
		})

		r.Route("/testimonials", func(r chi.Router) {
			attachTestimonialRoutes(r, mw, controllers.Testimonial)
		})
	})
}
