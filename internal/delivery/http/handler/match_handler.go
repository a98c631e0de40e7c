package handler

import (
	"errors"

	"interest-match/internal/delivery/http/dto"
	"interest-match/internal/delivery/http/middleware"
	"interest-match/internal/pkg/response"
	"interest-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc       usecase.MatchingUsecase
	targetID string
}

// NewMatchHandler serves matches for the configured default target user.
func NewMatchHandler(uc usecase.MatchingUsecase, targetID string) *MatchHandler {
	return &MatchHandler{uc: uc, targetID: targetID}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/match", h.GetMatches)
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	matches, err := h.uc.TopMatches(c.Context(), h.targetID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := dto.TopMatchesResponse{
		UserID:     h.targetID,
		TopMatches: make([]dto.MatchResponse, 0, len(matches)),
	}
	for _, m := range matches {
		out.TopMatches = append(out.TopMatches, dto.MatchResponse{
			UserID:    m.UserID,
			Name:      m.Name,
			Email:     m.Email,
			JobTitle:  m.JobTitle,
			Company:   m.Company,
			Score:     m.Score,
			Interests: m.Interests,
		})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func mapMatchingUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrEmptyInterests):
		return middleware.NewAppError(fiber.StatusNotFound, "User has no interests", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
