package routes

import (
	"interest-match/internal/delivery/http/handler"
	"interest-match/internal/metrics"
	"interest-match/internal/pkg/response"
	"interest-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	root  *handler.RootHandler
	match *handler.MatchHandler
	users *handler.UserHandler
}

func NewRegistry(matchUC usecase.MatchingUsecase, userUC usecase.UserUsecase, targetID string) *Registry {
	return &Registry{
		root:  handler.NewRootHandler(),
		match: handler.NewMatchHandler(matchUC, targetID),
		users: handler.NewUserHandler(userUC, targetID),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.root.RegisterRoutes(app)
	r.match.RegisterRoutes(app)
	r.users.RegisterRoutes(app)

	app.Get("/health", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
