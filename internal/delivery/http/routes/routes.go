package routes

import (
	"matchmaker/internal/delivery/http/handler"
	"matchmaker/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health       *handler.HealthHandler
	auth         *middleware.AuthMiddleware
	resources    *handler.MatchHandler
	requirements *handler.MatchHandler
	batchLimiter fiber.Handler
}

type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *middleware.AuthMiddleware
	Resources    *handler.MatchHandler
	Requirements *handler.MatchHandler
	BatchLimiter fiber.Handler
}

func NewRegistry(h Handlers) *Registry {
	return &Registry{
		health:       h.Health,
		auth:         h.Auth,
		resources:    h.Resources,
		requirements: h.Requirements,
		batchLimiter: h.BatchLimiter,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")

	var v1 fiber.Router
	if r.auth != nil {
		v1 = api.Group("/v1", r.auth.Middleware())
	} else {
		v1 = api.Group("/v1")
	}
	RegisterV1(v1, r.resources, r.requirements, r.batchLimiter)
}

// RegisterV1 mounts the match endpoints for both directions.
func RegisterV1(r fiber.Router, resources, requirements *handler.MatchHandler, batchLimiter fiber.Handler) {
	if r == nil {
		return
	}
	if resources != nil {
		resources.RegisterRoutes(r, batchLimiter)
	}
	if requirements != nil {
		requirements.RegisterRoutes(r, batchLimiter)
	}
}
