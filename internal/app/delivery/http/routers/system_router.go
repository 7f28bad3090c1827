package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSystemRoutes(router chi.Router, systemController *controllers.SystemController) {
	router.Get("/healthz", systemController.Health)
	router.Get("/internal/breaker", systemController.BreakerState)
}
