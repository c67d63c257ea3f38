package app

import (
	"fmt"
	"strings"
	"time"

	"matchmaker/internal/config"
	"matchmaker/internal/delivery/http/handler"
	"matchmaker/internal/delivery/http/middleware"
	"matchmaker/internal/delivery/http/routes"
	"matchmaker/internal/domain/matching"
	"matchmaker/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP app over an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:      c.Config.App.AppName,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger.Named("http")).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger.Named("access")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	cfg := c.Config
	limits := handler.PageLimits{
		DefaultSize: cfg.Matching.DefaultPageSize,
		MaxSize:     cfg.Matching.MaxPageSize,
	}

	var storage fiber.Storage
	if c.Limiter.Available() {
		storage = c.Limiter
	}

	routes.NewRegistry(routes.Handlers{
		Health:       handler.NewHealthHandler(c.DB),
		Auth:         middleware.NewAuthMiddleware(jwt.NewHMACService(cfg.JWT.AccessSecret, 0)),
		Resources:    handler.NewMatchHandler(c.Matching, matching.DirectionResource, limits),
		Requirements: handler.NewMatchHandler(c.Matching, matching.DirectionRequirement, limits),
		BatchLimiter: middleware.RateLimiter(cfg.RateLimit.BatchMax, cfg.RateLimit.BatchWindow, storage),
	}).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
