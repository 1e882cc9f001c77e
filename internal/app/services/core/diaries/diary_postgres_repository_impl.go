package diaries

import (
	"context"
	"database/sql"
	"errors"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/queries"
	"sensus-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// pqInvalidTextRepresentation is raised when an id is not a valid uuid.
const pqInvalidTextRepresentation = "22P02"

type diaryPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	diaryPostgresRepositoryInstance contracts.DiaryRepository
	onceDiaryPostgresRepository     sync.Once
)

func NewDiaryPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.DiaryRepository {
	onceDiaryPostgresRepository.Do(func() {
		diaryPostgresRepositoryInstance = &diaryPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return diaryPostgresRepositoryInstance
}

func (r *diaryPostgresRepository) CreateEntry(ctx context.Context, entry *models.DiaryEntry) error {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("diaryPostgresRepository.CreateEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := r.DB.QueryRowContext(ctx, queries.InsertDiaryEntryQuery,
		entry.ID, entry.UserID, entry.Mood, entry.Text, entry.CreatedAt,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		r.Log.Error("diaryPostgresRepository.CreateEntry error inserting entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *diaryPostgresRepository) FindByID(ctx context.Context, entryID string) (*models.DiaryEntry, error) {
	var entry models.DiaryEntry
	err := r.DB.QueryRowContext(ctx, queries.FindDiaryEntryByIDQuery, entryID).Scan(
		&entry.ID, &entry.UserID, &entry.Mood, &entry.Text, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &entry, nil
}

func (r *diaryPostgresRepository) FindByUserID(ctx context.Context, userID string, limit int) ([]models.DiaryEntry, error) {
	requestID := utils.GetRequestID(ctx)

	rows, err := r.DB.QueryContext(ctx, queries.FindDiaryEntriesByUserIDQuery, userID, limit)
	if err != nil {
		r.Log.Error("diaryPostgresRepository.FindByUserID error querying entries",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	entries := make([]models.DiaryEntry, 0, limit)
	for rows.Next() {
		var entry models.DiaryEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Mood, &entry.Text, &entry.CreatedAt); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return entries, nil
}

func (r *diaryPostgresRepository) FindEntryDays(ctx context.Context, userID string, location *time.Location, limit int) ([]time.Time, error) {
	rows, err := r.DB.QueryContext(ctx, queries.FindDiaryEntryDaysByUserIDQuery, userID, location.String(), limit)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		// DATE columns come back as midnight UTC; keep the calendar date.
		days = append(days, time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, location))
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return days, nil
}

func (r *diaryPostgresRepository) DeleteEntry(ctx context.Context, entryID, userID string) error {
	requestID := utils.GetRequestID(ctx)

	_, err := r.DB.ExecContext(ctx, queries.DeleteDiaryEntryQuery, entryID, userID)
	if err != nil {
		r.Log.Error("diaryPostgresRepository.DeleteEntry error deleting entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntryIDKey, entryID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func isInvalidID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqInvalidTextRepresentation
}
