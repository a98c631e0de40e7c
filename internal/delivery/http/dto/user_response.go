package dto

import "interest-match/internal/domain/user"

type UpdateUserResponse struct {
	Message string    `json:"message"`
	User    user.User `json:"user"`
}
