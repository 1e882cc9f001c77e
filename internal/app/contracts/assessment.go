package contracts

import (
	"context"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/dto/requests"
	"sensus-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	FindInstrument(ctx context.Context, instrumentCode string) (*responses.Instrument, error)
	ScoreAssessment(ctx context.Context, instrumentCode, userID string, request *requests.ScoreAssessment) (*responses.AssessmentResult, error)
	SaveAssessmentResult(ctx context.Context, instrumentCode, userID string, request *requests.SaveAssessmentResult) (*responses.AssessmentResult, error)
	FindResultsByUserID(ctx context.Context, userID string, page, pageSize int) ([]responses.AssessmentResult, int, error)
	DeleteResultByID(ctx context.Context, userID, resultID string) error
	ExportResults(ctx context.Context, userID string) (*responses.ExportAssessmentResults, error)
}

type AssessmentResultRepository interface {
	Save(ctx context.Context, result *models.AssessmentResult) (resultID string, err error)
	FindByID(ctx context.Context, resultID string) (*models.AssessmentResult, error)
	FindByUserID(ctx context.Context, userID string, offset, limit int) ([]models.AssessmentResult, error)
	FindAllByUserID(ctx context.Context, userID string) ([]models.AssessmentResult, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
	DeleteByID(ctx context.Context, resultID string) error
}
