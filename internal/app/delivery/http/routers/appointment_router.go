package routers

import (
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate).Get("/", appointmentController.FindAll)
	router.With(middlewares.Authenticate, middlewares.MutationThrottle).Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.Authenticate, middlewares.MutationThrottle).Put("/{id}", appointmentController.UpdateAppointment)
	router.With(middlewares.Authenticate, middlewares.MutationThrottle).Delete("/{id}", appointmentController.DeleteAppointment)
}
