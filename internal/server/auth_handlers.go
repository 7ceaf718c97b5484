package server

import (
	"github.com/doqhuy/moviechill-backend/internal/models"
	"github.com/doqhuy/moviechill-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// authResponse is the payload returned by every login path.
type authResponse struct {
	ID         uint   `json:"id"`
	FullName   string `json:"full_name"`
	Username   string `json:"username"`
	ProfilePic string `json:"profile_pic"`
	Token      string `json:"token"`
}

func newAuthResponse(result *service.AuthResult) authResponse {
	return authResponse{
		ID:         result.User.ID,
		FullName:   result.User.FullName,
		Username:   result.User.Username,
		ProfilePic: result.User.ProfilePic,
		Token:      result.Token,
	}
}

// Signup handles POST /api/auth/signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req service.SignupInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.authService.Signup(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newAuthResponse(result))
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req service.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.authService.Login(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(newAuthResponse(result))
}

// AutoLogin handles GET /api/auth/autologin. It resolves the bearer token
// back to a reduced account projection.
func (s *Server) AutoLogin(c *fiber.Ctx) error {
	user, err := s.authService.AutoLogin(c.Context(), bearerToken(c))
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":          user.ID,
		"full_name":   user.FullName,
		"profile_pic": user.ProfilePic,
		"username":    user.Username,
		"role":        user.Role,
	})
}

// GoogleLogin handles POST /api/auth/google. The google_login feature flag
// acts as an operational kill switch for the federated path.
func (s *Server) GoogleLogin(c *fiber.Ctx) error {
	if !s.flags.EnabledOrDefault("google_login", 0, true) {
		return models.RespondError(c,
			models.NewForbiddenError("Google login is temporarily disabled"))
	}

	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.authService.GoogleLogin(c.Context(), req.Token)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(newAuthResponse(result))
}
