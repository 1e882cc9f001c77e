package diaries

import (
	"context"
	"sensus-service/internal/app/config"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/dto/requests"
	"sensus-service/internal/pkg/dto/responses"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultEntriesLimit = 20
	maxEntriesLimit     = 100

	// streakLookbackDays caps how many distinct days are read to compute a
	// streak.
	streakLookbackDays = 366
)

type diaryUsecase struct {
	DiaryRepository contracts.DiaryRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	location        *time.Location
	now             func() time.Time
}

var (
	diaryUsecaseInstance contracts.DiaryUsecase
	onceDiaryUsecase     sync.Once
	diaryUsecaseError    error
)

func NewDiaryUsecase(
	diaryRepository contracts.DiaryRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.DiaryUsecase, error) {
	onceDiaryUsecase.Do(func() {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			diaryUsecaseError = err
			return
		}
		diaryUsecaseInstance = &diaryUsecase{
			DiaryRepository: diaryRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
			location:        location,
			now:             time.Now,
		}
	})
	return diaryUsecaseInstance, diaryUsecaseError
}

func (uc *diaryUsecase) CreateEntry(ctx context.Context, userID string, request *requests.CreateDiaryEntry) (*responses.CreateDiaryEntry, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("diaryUsecase.CreateEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingMoodKey, request.Mood),
	)

	if !constvars.IsValidMood(request.Mood) {
		return nil, exceptions.ErrMoodRequired(nil)
	}
	text := strings.TrimSpace(request.Text)
	if text == "" {
		return nil, exceptions.ErrDiaryTextRequired(nil)
	}

	now := uc.now()
	entry := &models.DiaryEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mood:      request.Mood,
		Text:      text,
		CreatedAt: now.UTC(),
	}
	if err := uc.DiaryRepository.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	streak, err := uc.Streak(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("diaryUsecase.CreateEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryIDKey, entry.ID),
		zap.Int(constvars.LoggingStreakKey, streak),
	)
	return &responses.CreateDiaryEntry{
		Entry:  mapDiaryEntryToResponse(*entry),
		Streak: streak,
	}, nil
}

func (uc *diaryUsecase) FindEntries(ctx context.Context, userID string, limit int) (*responses.DiaryEntries, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("diaryUsecase.FindEntries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if limit <= 0 {
		limit = defaultEntriesLimit
	}
	if limit > maxEntriesLimit {
		limit = maxEntriesLimit
	}

	entries, err := uc.DiaryRepository.FindByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	streak, err := uc.Streak(ctx, userID, uc.now())
	if err != nil {
		return nil, err
	}

	response := &responses.DiaryEntries{
		Entries: make([]responses.DiaryEntry, 0, len(entries)),
		Streak:  streak,
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, mapDiaryEntryToResponse(entry))
	}

	uc.Log.Info("diaryUsecase.FindEntries succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingEntryCountKey, len(response.Entries)),
	)
	return response, nil
}

func (uc *diaryUsecase) DeleteEntry(ctx context.Context, userID, entryID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("diaryUsecase.DeleteEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryIDKey, entryID),
	)

	entry, err := uc.DiaryRepository.FindByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return exceptions.ErrResourceNotFound(nil, "diary entry")
	}
	if entry.UserID != userID {
		return exceptions.ErrResourceNotOwned(nil, "diary entry")
	}

	return uc.DiaryRepository.DeleteEntry(ctx, entryID, userID)
}

// Streak counts consecutive days with entries in the configured time zone.
func (uc *diaryUsecase) Streak(ctx context.Context, userID string, now time.Time) (int, error) {
	days, err := uc.DiaryRepository.FindEntryDays(ctx, userID, uc.location, streakLookbackDays)
	if err != nil {
		uc.Log.Error("diaryUsecase.Streak error finding entry days",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return 0, err
	}
	return ComputeStreak(days, now.In(uc.location)), nil
}

func mapDiaryEntryToResponse(entry models.DiaryEntry) responses.DiaryEntry {
	return responses.DiaryEntry{
		ID:        entry.ID,
		Mood:      entry.Mood,
		Text:      entry.Text,
		CreatedAt: entry.CreatedAt,
	}
}
