package server

import (
	"github.com/doqhuy/moviechill-backend/internal/models"
	"github.com/doqhuy/moviechill-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddSurvey handles POST /api/survey
func (s *Server) AddSurvey(c *fiber.Ctx) error {
	var req service.SurveyInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.surveyService.Submit(c.Context(), req); err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Survey submitted successfully",
	})
}
