package handler

import (
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/domain/user"
	"internhub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	users user.Repository
}

func NewUserHandler(users user.Repository) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id", h.GetUser)
}

func (h *UserHandler) GetUser(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	u, found, err := h.users.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return middleware.NewAppError(fiber.StatusNotFound, "user not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(u))
}
