package contracts

import (
	"context"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/dto/requests"
	"sensus-service/internal/pkg/dto/responses"
	"time"
)

type DiaryUsecase interface {
	CreateEntry(ctx context.Context, userID string, request *requests.CreateDiaryEntry) (*responses.CreateDiaryEntry, error)
	FindEntries(ctx context.Context, userID string, limit int) (*responses.DiaryEntries, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
	Streak(ctx context.Context, userID string, now time.Time) (int, error)
}

type DiaryRepository interface {
	CreateEntry(ctx context.Context, entry *models.DiaryEntry) error
	FindByID(ctx context.Context, entryID string) (*models.DiaryEntry, error)
	FindByUserID(ctx context.Context, userID string, limit int) ([]models.DiaryEntry, error)
	FindEntryDays(ctx context.Context, userID string, location *time.Location, limit int) ([]time.Time, error)
	DeleteEntry(ctx context.Context, entryID, userID string) error
}
