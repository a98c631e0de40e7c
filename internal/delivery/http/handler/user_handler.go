package handler

import (
	"errors"

	"interest-match/internal/delivery/http/dto"
	"interest-match/internal/delivery/http/middleware"
	"interest-match/internal/pkg/response"
	"interest-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc       usecase.UserUsecase
	targetID string
}

type updateUserRequest struct {
	FullName  *string   `json:"full_name"`
	Email     *string   `json:"email"`
	JobTitle  *string   `json:"job_title"`
	Company   *string   `json:"company"`
	Interests *[]string `json:"interests"`
}

func NewUserHandler(uc usecase.UserUsecase, targetID string) *UserHandler {
	return &UserHandler{uc: uc, targetID: targetID}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users", h.ListUsers)
	r.Put("/users/:id", h.UpdateUser)
	r.Get("/user", h.GetDefaultUser)
}

// ListUsers returns the stored records verbatim as a raw JSON array.
func (h *UserHandler) ListUsers(c fiber.Ctx) error {
	records, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

func (h *UserHandler) GetDefaultUser(c fiber.Ctx) error {
	record, err := h.uc.GetUser(c.Context(), h.targetID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return c.Status(fiber.StatusOK).JSON(record)
}

func (h *UserHandler) UpdateUser(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, nil)
	}

	var req updateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	in := usecase.UpdateUserInput{
		FullName:  req.FullName,
		Email:     req.Email,
		JobTitle:  req.JobTitle,
		Company:   req.Company,
		Interests: req.Interests,
	}
	if in.IsEmpty() {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, nil)
	}

	record, err := h.uc.UpdateUser(c.Context(), id, in)
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.UpdateUserResponse{Message: "User updated", User: record})
}

func mapUserUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
