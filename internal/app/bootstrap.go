package app

import (
	"fmt"
	"log"
	"strings"

	"interest-match/internal/config"
	"interest-match/internal/delivery/http/middleware"
	"interest-match/internal/delivery/http/routes"
	"interest-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, ctn *Container, logger *log.Logger) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)

	matchUC := usecase.NewMatchingUsecase(ctn.Store, ctn.Strategy, cfg.Match.Limit)
	userUC := usecase.NewUserUsecase(ctn.Store)
	routes.NewRegistry(matchUC, userUC, cfg.Match.DefaultUserID).Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	ctn, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(cfg, ctn, logger)
	return app, ctn.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	// Open CORS, matching the public-demo posture of the API.
	app.Use(cors.New())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewMetricsMiddleware().Middleware())
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
