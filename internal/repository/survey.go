package repository

import (
	"context"

	"github.com/doqhuy/moviechill-backend/internal/models"

	"gorm.io/gorm"
)

// SurveyRepository stores onboarding survey submissions.
type SurveyRepository interface {
	Create(ctx context.Context, survey *models.Survey) error
}

type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository returns a new SurveyRepository implementation.
func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(ctx context.Context, survey *models.Survey) error {
	if err := r.db.WithContext(ctx).Create(survey).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
