package diaries

import (
	"context"
	"errors"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/dto/requests"
	"sensus-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDiaryRepository struct {
	mock.Mock
}

func (m *MockDiaryRepository) CreateEntry(ctx context.Context, entry *models.DiaryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDiaryRepository) FindByID(ctx context.Context, entryID string) (*models.DiaryEntry, error) {
	args := m.Called(ctx, entryID)
	entry, _ := args.Get(0).(*models.DiaryEntry)
	return entry, args.Error(1)
}

func (m *MockDiaryRepository) FindByUserID(ctx context.Context, userID string, limit int) ([]models.DiaryEntry, error) {
	args := m.Called(ctx, userID, limit)
	entries, _ := args.Get(0).([]models.DiaryEntry)
	return entries, args.Error(1)
}

func (m *MockDiaryRepository) FindEntryDays(ctx context.Context, userID string, location *time.Location, limit int) ([]time.Time, error) {
	args := m.Called(ctx, userID, location, limit)
	days, _ := args.Get(0).([]time.Time)
	return days, args.Error(1)
}

func (m *MockDiaryRepository) DeleteEntry(ctx context.Context, entryID, userID string) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}

var diaryNow = time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

func newTestDiaryUsecase() (*diaryUsecase, *MockDiaryRepository) {
	repo := new(MockDiaryRepository)
	return &diaryUsecase{
		DiaryRepository: repo,
		Log:             zap.NewNop(),
		location:        time.UTC,
		now:             func() time.Time { return diaryNow },
	}, repo
}

func TestCreateEntry(t *testing.T) {
	uc, repo := newTestDiaryUsecase()
	ctx := context.Background()

	repo.On("CreateEntry", ctx, mock.MatchedBy(func(entry *models.DiaryEntry) bool {
		return entry.UserID == "u1" && entry.Mood == constvars.MoodCalm && entry.Text == "a quiet day" && entry.ID != ""
	})).Return(nil)
	repo.On("FindEntryDays", ctx, "u1", time.UTC, streakLookbackDays).
		Return([]time.Time{day(2026, 3, 10), day(2026, 3, 9)}, nil)

	response, err := uc.CreateEntry(ctx, "u1", &requests.CreateDiaryEntry{Mood: constvars.MoodCalm, Text: "  a quiet day \n"})
	require.NoError(t, err)
	assert.Equal(t, "a quiet day", response.Entry.Text)
	assert.Equal(t, 2, response.Streak)
	repo.AssertExpectations(t)
}

func TestCreateEntry_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request requests.CreateDiaryEntry
		message string
	}{
		{"missing mood", requests.CreateDiaryEntry{Text: "hello"}, constvars.ErrClientMoodRequired},
		{"unknown mood", requests.CreateDiaryEntry{Mood: "ecstatic", Text: "hello"}, constvars.ErrClientMoodRequired},
		{"blank text", requests.CreateDiaryEntry{Mood: constvars.MoodSad, Text: " \t\n"}, constvars.ErrClientDiaryTextRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestDiaryUsecase()

			_, err := uc.CreateEntry(context.Background(), "u1", &tt.request)

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
			assert.Equal(t, tt.message, customErr.ClientMessage)
			repo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
		})
	}
}

func TestFindEntries_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct{ in, want int }{{0, defaultEntriesLimit}, {-3, defaultEntriesLimit}, {5, 5}, {1000, maxEntriesLimit}} {
		uc, repo := newTestDiaryUsecase()
		repo.On("FindByUserID", ctx, "u1", tc.want).Return([]models.DiaryEntry{{ID: "e1", Mood: constvars.MoodHappy, Text: "hi"}}, nil)
		repo.On("FindEntryDays", ctx, "u1", time.UTC, streakLookbackDays).Return(nil, nil)

		response, err := uc.FindEntries(ctx, "u1", tc.in)
		require.NoError(t, err)
		assert.Len(t, response.Entries, 1)
		assert.Equal(t, 0, response.Streak)
		repo.AssertExpectations(t)
	}
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		uc, repo := newTestDiaryUsecase()
		repo.On("FindByID", ctx, "e1").Return(&models.DiaryEntry{ID: "e1", UserID: "u1"}, nil)
		repo.On("DeleteEntry", ctx, "e1", "u1").Return(nil)

		require.NoError(t, uc.DeleteEntry(ctx, "u1", "e1"))
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newTestDiaryUsecase()
		repo.On("FindByID", ctx, "e1").Return(nil, nil)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, uc.DeleteEntry(ctx, "u1", "e1"), &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("not owner", func(t *testing.T) {
		uc, repo := newTestDiaryUsecase()
		repo.On("FindByID", ctx, "e1").Return(&models.DiaryEntry{ID: "e1", UserID: "u2"}, nil)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, uc.DeleteEntry(ctx, "u1", "e1"), &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		repo.AssertNotCalled(t, "DeleteEntry", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStreak_RepositoryError(t *testing.T) {
	uc, repo := newTestDiaryUsecase()
	ctx := context.Background()
	repo.On("FindEntryDays", ctx, "u1", time.UTC, streakLookbackDays).
		Return(nil, exceptions.ErrPostgresDBFindData(errors.New("connection reset")))

	_, err := uc.Streak(ctx, "u1", diaryNow)
	assert.Error(t, err)
}
