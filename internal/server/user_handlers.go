package server

import (
	"github.com/doqhuy/moviechill-backend/internal/models"
	"github.com/doqhuy/moviechill-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/profile/:username
func (s *Server) GetProfile(c *fiber.Ctx) error {
	view, err := s.profileService.GetProfile(c.Context(), caller(c), c.Params("username"))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(view)
}

// EditProfile handles PUT /api/users/profile. Absent fields are left
// untouched; an explicit empty string clears a field.
func (s *Server) EditProfile(c *fiber.Ctx) error {
	var req service.EditProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.profileService.EditProfile(c.Context(), caller(c), req); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Profile updated"})
}

// ListUsers handles GET /api/users?page=N&sort=newest
func (s *Server) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	sort := c.Query("sort")

	result, err := s.directoryService.ListUsers(c.Context(), caller(c), page, sort)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(result)
}

// SearchUsers handles GET /api/users/search?q=term (admin only)
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	results, err := s.directoryService.SearchUsers(c.Context(), caller(c), c.Query("q"))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(results)
}

// Impersonate handles POST /api/users/:id/impersonate (admin only). The
// returned token authenticates as the target account.
func (s *Server) Impersonate(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	token, err := s.directoryService.Impersonate(c.Context(), caller(c), targetID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}
