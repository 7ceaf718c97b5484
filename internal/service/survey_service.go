package service

import (
	"context"

	"github.com/doqhuy/moviechill-backend/internal/models"
	"github.com/doqhuy/moviechill-backend/internal/repository"
)

// SurveyService records one-shot feedback form submissions.
type SurveyService struct {
	surveyRepo repository.SurveyRepository
}

func NewSurveyService(surveyRepo repository.SurveyRepository) *SurveyService {
	return &SurveyService{surveyRepo: surveyRepo}
}

type SurveyInput struct {
	Name        string `json:"name"`
	Source      string `json:"source"`
	OtherSource string `json:"other_source"`
	Rating      int    `json:"rating"`
	Feedback    string `json:"feedback"`
}

// Submit stores a feedback submission. There is nothing to validate
// beyond persisting what the caller sent.
func (s *SurveyService) Submit(ctx context.Context, in SurveyInput) error {
	return s.surveyRepo.Create(ctx, &models.Survey{
		Name:        in.Name,
		Source:      in.Source,
		OtherSource: in.OtherSource,
		Rating:      in.Rating,
		Feedback:    in.Feedback,
	})
}
