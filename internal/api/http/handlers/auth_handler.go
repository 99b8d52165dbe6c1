package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Zomujo/dial4inclusion/internal/api/dto"
	"github.com/Zomujo/dial4inclusion/internal/domain"
	"github.com/Zomujo/dial4inclusion/internal/gateway"
	"github.com/Zomujo/dial4inclusion/internal/session"
	apperrors "github.com/Zomujo/dial4inclusion/pkg/errorutil"
)

// AuthHandler exposes login, registration, and session endpoints.
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserIdentifier == "" || req.Password == "" {
		return apperrors.NewValidationError("userIdentifier and password required", nil)
	}

	user, err := h.sessions.Login(c.Context(), req.UserIdentifier, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.sessionResponse(user)})
}

// Register POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return apperrors.NewValidationError("email, password, fullName required", nil)
	}

	input := gateway.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     domain.Role(req.Role),
	}
	if req.District != "" {
		district := domain.District(req.District)
		input.District = &district
	}
	user, err := h.sessions.Register(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": h.sessionResponse(user)})
}

// Logout POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.JSON(fiber.Map{"data": fiber.Map{"loggedOut": true}})
}

// Session GET /auth/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	user := h.sessions.CurrentUser()
	if user == nil {
		return apperrors.NewSessionExpired()
	}
	return c.JSON(fiber.Map{"data": h.sessionResponse(user)})
}

func (h *AuthHandler) sessionResponse(user *domain.User) dto.SessionResponse {
	return dto.SessionResponse{
		User:              user,
		IsAdmin:           h.sessions.IsAdmin(),
		IsNavigator:       h.sessions.IsNavigator(),
		IsDistrictOfficer: h.sessions.IsDistrictOfficer(),
	}
}
