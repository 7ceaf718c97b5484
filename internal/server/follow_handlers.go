package server

import (
	"github.com/doqhuy/moviechill-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleFollow handles PUT /api/users/:id/follow. Following and
// unfollowing are the same endpoint; the response reports the state the
// toggle produced.
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	nowFollowing, err := s.followService.Toggle(c.Context(), caller(c), targetID)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "Follow updated",
		"following": nowFollowing,
	})
}

// ListRelationships handles GET /api/users/:id/relationships
func (s *Server) ListRelationships(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	list, err := s.followService.ListRelationships(c.Context(), caller(c), targetID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(list)
}
