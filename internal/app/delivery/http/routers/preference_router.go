package routers

import (
	"sensus-service/internal/app/delivery/http/controllers"
	"sensus-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPreferenceRoutes(router chi.Router, middlewares *middlewares.Middlewares, preferenceController *controllers.PreferenceController) {
	router.Use(middlewares.OptionalAuthenticate, middlewares.ViewerIdentity)
	router.Get("/theme", preferenceController.GetTheme)
	router.Put("/theme", preferenceController.UpdateTheme)
	router.Post("/theme/toggle", preferenceController.ToggleTheme)
}
