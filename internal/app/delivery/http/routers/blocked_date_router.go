package routers

import (
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBlockedDateRoutes(router chi.Router, middlewares *middlewares.Middlewares, blockedDateController *controllers.BlockedDateController) {
	router.With(middlewares.Authenticate).Get("/", blockedDateController.FindAll)
	router.With(middlewares.Authenticate, middlewares.MutationThrottle).Post("/", blockedDateController.CreateBlockedDate)
	router.With(middlewares.Authenticate, middlewares.MutationThrottle).Delete("/{id}", blockedDateController.DeleteBlockedDate)
}
