package routers

import (
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCalendarRoutes(router chi.Router, middlewares *middlewares.Middlewares, calendarController *controllers.CalendarController) {
	router.With(middlewares.Authenticate).Get("/", calendarController.Calendar)
	router.With(middlewares.Authenticate).Get("/check-day", calendarController.CheckDay)
}
