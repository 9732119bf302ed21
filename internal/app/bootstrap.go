package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"job-bridge/internal/config"
	"job-bridge/internal/delivery/http/middleware"
	"job-bridge/internal/delivery/http/routes"
	"job-bridge/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
)

type App struct {
	Fiber *fiber.App
}

// New assembles the HTTP app around an already wired route table.
func New(cfg config.Config, registry *routes.Registry, logger *log.Logger) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, cfg.HTTP, logger)
	registry.Register(f)

	return &App{Fiber: f}
}

// Bootstrap connects infrastructure and returns the app plus a cleanup that
// releases it.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, *Container, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return New(cfg, container.Registry, container.Logger), container, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.HTTPConfig, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(cfg.AllowedOrigins),
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		AllowMethods: []string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPut,
			fiber.MethodPatch,
			fiber.MethodDelete,
			fiber.MethodOptions,
		},
	}))

	if cfg.RateLimitMax > 0 {
		window := cfg.RateLimitWindow
		if window <= 0 {
			window = time.Minute
		}
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: window,
			LimitReached: func(c fiber.Ctx) error {
				return response.Error(c, fiber.StatusTooManyRequests, response.CodeRateLimited, "Too many requests, please try again later", nil)
			},
		}))
	}
}

func allowedOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
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
