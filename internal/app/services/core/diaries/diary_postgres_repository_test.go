package diaries

import (
	"context"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/queries"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDiaryRepository(t *testing.T) (*diaryPostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &diaryPostgresRepository{DB: db, Log: zap.NewNop()}, sqlMock
}

var entryColumns = []string{"id", "user_id", "mood", "text", "created_at"}

func TestDiaryPostgresRepository_CreateEntry(t *testing.T) {
	repo, sqlMock := newTestDiaryRepository(t)
	createdAt := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	entry := &models.DiaryEntry{ID: "7b1c", UserID: "u1", Mood: "calm", Text: "ok", CreatedAt: createdAt}

	sqlMock.ExpectQuery(queries.InsertDiaryEntryQuery).
		WithArgs("7b1c", "u1", "calm", "ok", createdAt).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("7b1c", createdAt))

	require.NoError(t, repo.CreateEntry(context.Background(), entry))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDiaryPostgresRepository_FindByID(t *testing.T) {
	createdAt := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, sqlMock := newTestDiaryRepository(t)
		sqlMock.ExpectQuery(queries.FindDiaryEntryByIDQuery).WithArgs("e1").
			WillReturnRows(sqlmock.NewRows(entryColumns).AddRow("e1", "u1", "sad", "rain", createdAt))

		entry, err := repo.FindByID(context.Background(), "e1")
		require.NoError(t, err)
		assert.Equal(t, "u1", entry.UserID)
	})

	t.Run("no rows", func(t *testing.T) {
		repo, sqlMock := newTestDiaryRepository(t)
		sqlMock.ExpectQuery(queries.FindDiaryEntryByIDQuery).WithArgs("e1").
			WillReturnRows(sqlmock.NewRows(entryColumns))

		entry, err := repo.FindByID(context.Background(), "e1")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("malformed uuid", func(t *testing.T) {
		repo, sqlMock := newTestDiaryRepository(t)
		sqlMock.ExpectQuery(queries.FindDiaryEntryByIDQuery).WithArgs("nope").
			WillReturnError(&pq.Error{Code: pqInvalidTextRepresentation})

		entry, err := repo.FindByID(context.Background(), "nope")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})
}

func TestDiaryPostgresRepository_FindEntryDays(t *testing.T) {
	repo, sqlMock := newTestDiaryRepository(t)
	location := time.FixedZone("UTC-5", -5*60*60)

	sqlMock.ExpectQuery(queries.FindDiaryEntryDaysByUserIDQuery).
		WithArgs("u1", "UTC-5", 30).
		WillReturnRows(sqlmock.NewRows([]string{"day"}).
			AddRow(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)).
			AddRow(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))

	days, err := repo.FindEntryDays(context.Background(), "u1", location, 30)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, location), days[0])
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDiaryPostgresRepository_DeleteEntry(t *testing.T) {
	repo, sqlMock := newTestDiaryRepository(t)
	sqlMock.ExpectExec(queries.DeleteDiaryEntryQuery).WithArgs("e1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteEntry(context.Background(), "e1", "u1"))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
