package routers

import (
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.With(middlewares.Authenticate).Get("/", availabilityController.FindAll)
	router.With(middlewares.Authenticate, middlewares.MutationThrottle).Post("/", availabilityController.CreateAvailability)
	router.With(middlewares.Authenticate, middlewares.MutationThrottle).Put("/{id}", availabilityController.UpdateAvailability)
	router.With(middlewares.Authenticate, middlewares.MutationThrottle).Delete("/{id}", availabilityController.DeleteAvailability)
}
