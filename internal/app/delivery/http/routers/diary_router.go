package routers

import (
	"sensus-service/internal/app/delivery/http/controllers"
	"sensus-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDiaryRoutes(router chi.Router, middlewares *middlewares.Middlewares, diaryController *controllers.DiaryController) {
	router.With(middlewares.Authenticate).Post("/", diaryController.CreateEntry)
	router.With(middlewares.Authenticate).Get("/", diaryController.FindEntries)
	router.With(middlewares.Authenticate).Delete("/{entry_id}", diaryController.DeleteEntry)
}
