package routers

import (
	"sensus-service/internal/app/delivery/http/controllers"
	"sensus-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *controllers.AssessmentController) {
	router.Get("/{instrument_code}", assessmentController.FindInstrument)
	router.With(middlewares.OptionalAuthenticate).Post("/{instrument_code}/score", assessmentController.ScoreAssessment)
	router.With(middlewares.Authenticate).Post("/{instrument_code}/results", assessmentController.SaveAssessmentResult)
}

func attachAssessmentResultRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *controllers.AssessmentController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", assessmentController.FindResults)
	router.Post("/export", assessmentController.ExportResults)
	router.Delete("/{result_id}", assessmentController.DeleteResult)
}
