package routers

import (
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachHolidayRoutes(router chi.Router, middlewares *middlewares.Middlewares, holidayController *controllers.HolidayController) {
	router.With(middlewares.Authenticate).Get("/", holidayController.FindAll)
}
