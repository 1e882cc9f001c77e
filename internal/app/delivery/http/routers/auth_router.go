package routers

import (
	"sensus-service/internal/app/delivery/http/controllers"
	"sensus-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, limiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.Group(func(r chi.Router) {
		r.Use(limiter.Limit)
		r.Post("/sign-up", authController.SignUp)
		r.Post("/sign-in", authController.SignIn)
		r.Post("/password-reset", authController.RequestPasswordReset)
		r.Post("/password-reset/confirm", authController.ResetPassword)
	})
	router.With(middlewares.Authenticate).Post("/sign-out", authController.SignOut)
}
