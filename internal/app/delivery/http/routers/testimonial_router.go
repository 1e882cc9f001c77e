package routers

import (
	"sensus-service/internal/app/delivery/http/controllers"
	"sensus-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTestimonialRoutes(router chi.Router, middlewares *middlewares.Middlewares, testimonialController *controllers.TestimonialController) {
	router.Use(middlewares.OptionalAuthenticate, middlewares.ViewerIdentity)
	router.Get("/current", testimonialController.Current)
	router.Post("/next", testimonialController.Next)
	router.Post("/previous", testimonialController.Previous)
}
