package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"scrumcmd/internal/services"
	"scrumcmd/pkg/auth"
)

// AuthHandler handles the login gate
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login validates the operator credential and issues a session token
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		log.Printf("🚫 [AUTH] Login rejected for %q from %s", req.Username, c.IP())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	return c.JSON(fiber.Map{"token": token})
}

// Logout revokes the caller's session
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token, err := auth.ExtractToken(c.Get("Authorization")); err == nil {
		h.auth.Logout(token)
	}
	return c.JSON(fiber.Map{"success": true})
}
