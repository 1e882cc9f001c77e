package assessments

import (
	"context"
	"errors"
	"sensus-service/internal/app/config"
	"sensus-service/internal/app/models"
	"sensus-service/internal/app/services/core/scoring"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/dto/requests"
	"sensus-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAssessmentResultRepository struct {
	mock.Mock
}

func (m *MockAssessmentResultRepository) Save(ctx context.Context, result *models.AssessmentResult) (string, error) {
	args := m.Called(ctx, result)
	return args.String(0), args.Error(1)
}

func (m *MockAssessmentResultRepository) FindByID(ctx context.Context, resultID string) (*models.AssessmentResult, error) {
	args := m.Called(ctx, resultID)
	result, _ := args.Get(0).(*models.AssessmentResult)
	return result, args.Error(1)
}

func (m *MockAssessmentResultRepository) FindByUserID(ctx context.Context, userID string, offset, limit int) ([]models.AssessmentResult, error) {
	args := m.Called(ctx, userID, offset, limit)
	results, _ := args.Get(0).([]models.AssessmentResult)
	return results, args.Error(1)
}

func (m *MockAssessmentResultRepository) FindAllByUserID(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	args := m.Called(ctx, userID)
	results, _ := args.Get(0).([]models.AssessmentResult)
	return results, args.Error(1)
}

func (m *MockAssessmentResultRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAssessmentResultRepository) DeleteByID(ctx context.Context, resultID string) error {
	args := m.Called(ctx, resultID)
	return args.Error(0)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) SendEmail(ctx context.Context, message *models.MailMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, content []byte) error {
	args := m.Called(ctx, bucketName, objectName, contentType, content)
	return args.Error(0)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

var fixedNow = time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)

func newTestUsecase(t *testing.T) (*assessmentUsecase, *MockAssessmentResultRepository, *MockMailerService, *MockStorage) {
	t.Helper()
	catalog, err := scoring.NewCatalog(scoring.GAD7())
	require.NoError(t, err)

	repo := new(MockAssessmentResultRepository)
	mailer := new(MockMailerService)
	storage := new(MockStorage)
	uc := &assessmentUsecase{
		Catalog:                    catalog,
		AssessmentResultRepository: repo,
		MailerService:              mailer,
		Storage:                    storage,
		InternalConfig: &config.InternalConfig{
			Minio:      config.AppMinio{BucketName: "reports", PreSignedUrlExpiryInMinute: 15},
			Assessment: config.Assessment{DefaultInstrumentCode: "gad7"},
		},
		Log: zap.NewNop(),
		now: func() time.Time { return fixedNow },
	}
	return uc, repo, mailer, storage
}

func sessionContext(userID, email string) context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_SESSION_KEY, &models.Session{
		SessionID: "s1",
		UserID:    userID,
		Email:     email,
		Name:      "Ana",
	})
}

func gad7Answers(value int) map[int]int {
	answers := map[int]int{}
	for i := 0; i < 7; i++ {
		answers[i] = value
	}
	return answers
}

func TestFindInstrument(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	instrument, err := uc.FindInstrument(context.Background(), "gad7")
	require.NoError(t, err)
	assert.Len(t, instrument.Questions, 7)
	assert.Len(t, instrument.Options, 4)
	assert.Equal(t, 21, instrument.MaxScore)
}

func TestFindInstrument_Unknown(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	_, err := uc.FindInstrument(context.Background(), "bdi")
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestFindInstrument_DefaultAlias(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	instrument, err := uc.FindInstrument(context.Background(), constvars.DefaultInstrumentAlias)
	require.NoError(t, err)
	assert.Equal(t, "gad7", instrument.Code)

	result, err := uc.ScoreAssessment(context.Background(), constvars.DefaultInstrumentAlias, "", &requests.ScoreAssessment{Answers: gad7Answers(1)})
	require.NoError(t, err)
	assert.Equal(t, "gad7", result.InstrumentCode)
}

func TestScoreAssessment_Anonymous(t *testing.T) {
	uc, repo, _, _ := newTestUsecase(t)

	result, err := uc.ScoreAssessment(context.Background(), "gad7", "", &requests.ScoreAssessment{Answers: gad7Answers(2)})
	require.NoError(t, err)

	assert.Equal(t, 14, result.Score)
	assert.Equal(t, "14 / 21", result.ScoreDisplay)
	assert.Equal(t, "moderate", result.Category)
	assert.Equal(t, "result-moderate", result.Style)
	assert.False(t, result.Saved)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestScoreAssessment_SaveRequiresSession(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	_, err := uc.ScoreAssessment(context.Background(), "gad7", "", &requests.ScoreAssessment{Answers: gad7Answers(0), Save: true})
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestScoreAssessment_SavesAndNotifies(t *testing.T) {
	uc, repo, mailer, _ := newTestUsecase(t)
	ctx := sessionContext("u1", "ana@example.com")

	repo.On("Save", ctx, mock.MatchedBy(func(result *models.AssessmentResult) bool {
		return result.UserID == "u1" && result.Score == 21 && result.Category == "severe" &&
			len(result.Answers) == 7 && result.CreatedAt.Equal(fixedNow)
	})).Return("r1", nil)
	mailer.On("SendEmail", ctx, mock.MatchedBy(func(message *models.MailMessage) bool {
		return message.To == "ana@example.com" && message.Type == constvars.EventTypeResultSaved &&
			strings.Contains(message.Body, "21 / 21")
	})).Return(nil)

	result, err := uc.ScoreAssessment(ctx, "gad7", "u1", &requests.ScoreAssessment{Answers: gad7Answers(3), Save: true})
	require.NoError(t, err)

	assert.Equal(t, "r1", result.ID)
	assert.True(t, result.Saved)
	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestScoreAssessment_NotificationFailureDoesNotFailSave(t *testing.T) {
	uc, repo, mailer, _ := newTestUsecase(t)
	ctx := sessionContext("u1", "ana@example.com")

	repo.On("Save", ctx, mock.Anything).Return("r1", nil)
	mailer.On("SendEmail", ctx, mock.Anything).Return(errors.New("queue down"))

	result, err := uc.SaveAssessmentResult(ctx, "gad7", "u1", &requests.SaveAssessmentResult{Answers: gad7Answers(1)})
	require.NoError(t, err)
	assert.Equal(t, "r1", result.ID)
}

func TestScoreAssessment_IncompleteSubmission(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)
	answers := gad7Answers(1)
	delete(answers, 2)
	delete(answers, 5)

	_, err := uc.ScoreAssessment(context.Background(), "gad7", "", &requests.ScoreAssessment{Answers: answers})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, "please answer every question, missing: 3, 6", customErr.ClientMessage)
	assert.ErrorIs(t, err, scoring.ErrIncompleteSubmission)
}

func TestScoreAssessment_OutOfRangeAnswer(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)
	answers := gad7Answers(1)
	answers[4] = 4

	_, err := uc.ScoreAssessment(context.Background(), "gad7", "", &requests.ScoreAssessment{Answers: answers})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	assert.Equal(t, "question 5 has an invalid answer", customErr.ClientMessage)
}

func TestSaveAssessmentResult_RepositoryError(t *testing.T) {
	uc, repo, mailer, _ := newTestUsecase(t)
	ctx := sessionContext("u1", "ana@example.com")
	repo.On("Save", ctx, mock.Anything).Return("", exceptions.ErrMongoDBInsertDocument(errors.New("timeout")))

	_, err := uc.SaveAssessmentResult(ctx, "gad7", "u1", &requests.SaveAssessmentResult{Answers: gad7Answers(1)})
	assert.Error(t, err)
	mailer.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}

func TestFindResultsByUserID(t *testing.T) {
	uc, repo, _, _ := newTestUsecase(t)
	ctx := context.Background()

	repo.On("CountByUserID", ctx, "u1").Return(12, nil)
	repo.On("FindByUserID", ctx, "u1", 10, 10).Return([]models.AssessmentResult{
		{ID: "r11", UserID: "u1", InstrumentCode: "gad7", Score: 6, MaxScore: 21, Category: "mild", Label: "Mild"},
		{ID: "r12", UserID: "u1", InstrumentCode: "gad7", Score: 16, MaxScore: 21, Category: "severe", Label: "Severe"},
	}, nil)

	results, total, err := uc.FindResultsByUserID(ctx, "u1", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, results, 2)
	assert.Equal(t, "6 / 21", results[0].ScoreDisplay)
	assert.Equal(t, "result-mild", results[0].Style)
	assert.Equal(t, "result-severe", results[1].Style)
}

func TestDeleteResultByID(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)
		repo.On("FindByID", ctx, "r1").Return(&models.AssessmentResult{ID: "r1", UserID: "u1"}, nil)
		repo.On("DeleteByID", ctx, "r1").Return(nil)

		require.NoError(t, uc.DeleteResultByID(ctx, "u1", "r1"))
		repo.AssertExpectations(t)
	})

	t.Run("missing result", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)
		repo.On("FindByID", ctx, "r1").Return(nil, nil)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, uc.DeleteResultByID(ctx, "u1", "r1"), &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("someone else's result", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)
		repo.On("FindByID", ctx, "r1").Return(&models.AssessmentResult{ID: "r1", UserID: "u2"}, nil)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, uc.DeleteResultByID(ctx, "u1", "r1"), &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}

func TestExportResults(t *testing.T) {
	uc, repo, _, storage := newTestUsecase(t)
	ctx := context.Background()

	repo.On("FindAllByUserID", ctx, "u1").Return([]models.AssessmentResult{
		{ID: "r1", UserID: "u1", InstrumentCode: "gad7", Score: 3, MaxScore: 21, Category: "minimal"},
	}, nil)
	storage.On("UploadObject", ctx, "reports", mock.MatchedBy(func(object string) bool {
		return strings.HasPrefix(object, "reports/u1/")
	}), constvars.MinioReportContentType, mock.MatchedBy(func(content []byte) bool {
		return strings.Contains(string(content), `"user_id":"u1"`)
	})).Return(nil)
	storage.On("GetObjectUrlWithExpiryTime", ctx, "reports", mock.Anything, 15*time.Minute).
		Return("https://minio.local/reports/u1/report.json?sig=abc", nil)

	export, err := uc.ExportResults(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, export.Count)
	assert.Equal(t, fixedNow.Add(15*time.Minute), export.ExpiresAt)
	assert.Contains(t, export.URL, "sig=abc")
	storage.AssertExpectations(t)
}
