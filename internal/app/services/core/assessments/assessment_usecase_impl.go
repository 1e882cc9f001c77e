package assessments

import (
	"context"
	"errors"
	"fmt"
	"sensus-service/internal/app/config"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/app/models"
	"sensus-service/internal/app/services/core/scoring"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/dto/requests"
	"sensus-service/internal/pkg/dto/responses"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type assessmentUsecase struct {
	Catalog                    *scoring.Catalog
	AssessmentResultRepository contracts.AssessmentResultRepository
	MailerService              contracts.MailerService
	Storage                    contracts.Storage
	InternalConfig             *config.InternalConfig
	Log                        *zap.Logger
	now                        func() time.Time
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	catalog *scoring.Catalog,
	assessmentResultRepository contracts.AssessmentResultRepository,
	mailerService contracts.MailerService,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		assessmentUsecaseInstance = &assessmentUsecase{
			Catalog:                    catalog,
			AssessmentResultRepository: assessmentResultRepository,
			MailerService:              mailerService,
			Storage:                    storage,
			InternalConfig:             internalConfig,
			Log:                        logger,
			now:                        time.Now,
		}
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) FindInstrument(ctx context.Context, instrumentCode string) (*responses.Instrument, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.FindInstrument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentCodeKey, instrumentCode),
	)

	instrument, err := uc.findInstrument(instrumentCode)
	if err != nil {
		return nil, err
	}

	questions := make([]string, 0, instrument.QuestionCount())
	for _, question := range instrument.Questions {
		questions = append(questions, question.Text)
	}
	options := make([]responses.AnswerOption, 0, len(instrument.Options))
	for _, option := range instrument.Options {
		options = append(options, responses.AnswerOption{Value: option.Value, Label: option.Label})
	}

	return &responses.Instrument{
		Code:      instrument.Code,
		Title:     instrument.Title,
		Prompt:    instrument.Prompt,
		Questions: questions,
		Options:   options,
		MaxScore:  instrument.MaxScore(),
	}, nil
}

// ScoreAssessment scores the answers and, when asked to and the caller is
// signed in, stores the result. Anonymous callers only get the score back.
func (uc *assessmentUsecase) ScoreAssessment(ctx context.Context, instrumentCode, userID string, request *requests.ScoreAssessment) (*responses.AssessmentResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.ScoreAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentCodeKey, instrumentCode),
		zap.Bool(constvars.LoggingSaveKey, request.Save),
	)

	if request.Save && userID == "" {
		return nil, exceptions.ErrMissingSession(nil)
	}

	instrument, result, err := uc.score(ctx, instrumentCode, request.Answers)
	if err != nil {
		return nil, err
	}

	if !request.Save {
		response := buildResultResponse(result)
		return &response, nil
	}
	return uc.save(ctx, userID, instrument, result, request.Answers)
}

func (uc *assessmentUsecase) SaveAssessmentResult(ctx context.Context, instrumentCode, userID string, request *requests.SaveAssessmentResult) (*responses.AssessmentResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.SaveAssessmentResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentCodeKey, instrumentCode),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if userID == "" {
		return nil, exceptions.ErrMissingSession(nil)
	}

	// The score is always recomputed; a client-side score is never stored.
	instrument, result, err := uc.score(ctx, instrumentCode, request.Answers)
	if err != nil {
		return nil, err
	}
	return uc.save(ctx, userID, instrument, result, request.Answers)
}

func (uc *assessmentUsecase) FindResultsByUserID(ctx context.Context, userID string, page, pageSize int) ([]responses.AssessmentResult, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.FindResultsByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	total, err := uc.AssessmentResultRepository.CountByUserID(ctx, userID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindResultsByUserID error counting results",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	results, err := uc.AssessmentResultRepository.FindByUserID(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindResultsByUserID error finding results",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	response := make([]responses.AssessmentResult, 0, len(results))
	for _, result := range results {
		response = append(response, uc.mapResultModelToResponse(result))
	}

	uc.Log.Info("assessmentUsecase.FindResultsByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(response)),
	)
	return response, total, nil
}

func (uc *assessmentUsecase) DeleteResultByID(ctx context.Context, userID, resultID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.DeleteResultByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
	)

	result, err := uc.AssessmentResultRepository.FindByID(ctx, resultID)
	if err != nil {
		return err
	}
	if result == nil {
		return exceptions.ErrResourceNotFound(nil, "assessment result")
	}
	if result.UserID != userID {
		return exceptions.ErrResourceNotOwned(nil, "assessment result")
	}

	return uc.AssessmentResultRepository.DeleteByID(ctx, resultID)
}

type resultReport struct {
	UserID      string                       `json:"user_id"`
	GeneratedAt time.Time                    `json:"generated_at"`
	Results     []responses.AssessmentResult `json:"results"`
}

// ExportResults writes the full history as a JSON document to object storage
// and returns a short-lived download link.
func (uc *assessmentUsecase) ExportResults(ctx context.Context, userID string) (*responses.ExportAssessmentResults, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.ExportResults called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	results, err := uc.AssessmentResultRepository.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	report := resultReport{
		UserID:      userID,
		GeneratedAt: now,
		Results:     make([]responses.AssessmentResult, 0, len(results)),
	}
	for _, result := range results {
		report.Results = append(report.Results, uc.mapResultModelToResponse(result))
	}

	content, err := json.Marshal(report)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateReportObjectName(constvars.MinioReportObjectFormat, userID, now)
	if err := uc.Storage.UploadObject(ctx, bucketName, objectName, constvars.MinioReportContentType, content); err != nil {
		uc.Log.Error("assessmentUsecase.ExportResults error uploading report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlExpiryInMinute) * time.Minute
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.ExportResults succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
		zap.Int(constvars.LoggingResultCountKey, len(results)),
	)
	return &responses.ExportAssessmentResults{
		URL:       url,
		Object:    objectName,
		Count:     len(results),
		ExpiresAt: now.Add(expiry),
	}, nil
}

func (uc *assessmentUsecase) findInstrument(instrumentCode string) (*scoring.Instrument, error) {
	if instrumentCode == constvars.DefaultInstrumentAlias {
		instrumentCode = uc.InternalConfig.Assessment.DefaultInstrumentCode
	}
	instrument, err := uc.Catalog.Find(instrumentCode)
	if err != nil {
		return nil, exceptions.ErrUnknownInstrument(err, instrumentCode)
	}
	return instrument, nil
}

func (uc *assessmentUsecase) score(ctx context.Context, instrumentCode string, answers map[int]int) (*scoring.Instrument, scoring.AssessmentResult, error) {
	instrument, err := uc.findInstrument(instrumentCode)
	if err != nil {
		return nil, scoring.AssessmentResult{}, err
	}

	result, err := instrument.Score(answers)
	if err != nil {
		uc.Log.Info("assessmentUsecase.score rejected submission",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingInstrumentCodeKey, instrumentCode),
			zap.Error(err),
		)

		var incomplete *scoring.IncompleteSubmissionError
		var outOfRange *scoring.OutOfRangeAnswerError
		switch {
		case errors.As(err, &incomplete):
			return nil, scoring.AssessmentResult{}, exceptions.ErrIncompleteSubmission(err, instrumentCode, incomplete.Missing)
		case errors.As(err, &outOfRange):
			return nil, scoring.AssessmentResult{}, exceptions.ErrOutOfRangeAnswer(err, instrumentCode, outOfRange.Index)
		default:
			return nil, scoring.AssessmentResult{}, exceptions.ErrScoring(err, instrumentCode)
		}
	}

	uc.Log.Info("assessmentUsecase.score succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingInstrumentCodeKey, instrumentCode),
		zap.Int(constvars.LoggingScoreKey, result.Score),
		zap.String(constvars.LoggingCategoryKey, string(result.Category)),
	)
	return instrument, result, nil
}

func (uc *assessmentUsecase) save(ctx context.Context, userID string, instrument *scoring.Instrument, result scoring.AssessmentResult, answers map[int]int) (*responses.AssessmentResult, error) {
	requestID := utils.GetRequestID(ctx)

	ordered := make([]int, instrument.QuestionCount())
	for index := range ordered {
		ordered[index] = answers[index]
	}

	model := &models.AssessmentResult{
		UserID:         userID,
		InstrumentCode: result.InstrumentCode,
		Score:          result.Score,
		MaxScore:       result.MaxScore,
		Category:       string(result.Category),
		Label:          result.Label,
		Message:        result.Message,
		Answers:        ordered,
		CreatedAt:      uc.now().UTC(),
	}

	resultID, err := uc.AssessmentResultRepository.Save(ctx, model)
	if err != nil {
		uc.Log.Error("assessmentUsecase.save error saving result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	model.ID = resultID

	uc.notifyResultSaved(ctx, model)

	response := buildResultResponse(result)
	response.ID = resultID
	response.Saved = true
	response.CreatedAt = model.CreatedAt

	uc.Log.Info("assessmentUsecase.save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
	)
	return &response, nil
}

// notifyResultSaved mails a copy of the result to the signed in user. The
// result is already stored, so a queue failure is only logged.
func (uc *assessmentUsecase) notifyResultSaved(ctx context.Context, result *models.AssessmentResult) {
	session, ok := utils.GetSession(ctx)
	if !ok || session.Email == "" || uc.MailerService == nil {
		return
	}

	message := &models.MailMessage{
		Type:    constvars.EventTypeResultSaved,
		To:      session.Email,
		Subject: fmt.Sprintf(constvars.MailSubjectResultSavedFormat, result.InstrumentCode),
		Body: fmt.Sprintf(constvars.MailBodyResultSavedFormat,
			session.Name, result.Score, result.MaxScore, result.Label, result.Message),
	}
	if err := uc.MailerService.SendEmail(ctx, message); err != nil {
		uc.Log.Warn("assessmentUsecase.notifyResultSaved error enqueuing email",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingResultIDKey, result.ID),
			zap.Error(err),
		)
	}
}

func (uc *assessmentUsecase) mapResultModelToResponse(result models.AssessmentResult) responses.AssessmentResult {
	response := responses.AssessmentResult{
		ID:             result.ID,
		InstrumentCode: result.InstrumentCode,
		Score:          result.Score,
		MaxScore:       result.MaxScore,
		ScoreDisplay:   formatScore(result.Score, result.MaxScore),
		Category:       result.Category,
		Label:          result.Label,
		Message:        result.Message,
		Saved:          true,
		CreatedAt:      result.CreatedAt,
	}
	if instrument, err := uc.Catalog.Find(result.InstrumentCode); err == nil {
		response.Style = styleFor(instrument.Bands, scoring.Category(result.Category))
	}
	return response
}

func buildResultResponse(result scoring.AssessmentResult) responses.AssessmentResult {
	return responses.AssessmentResult{
		InstrumentCode: result.InstrumentCode,
		Score:          result.Score,
		MaxScore:       result.MaxScore,
		ScoreDisplay:   formatScore(result.Score, result.MaxScore),
		Category:       string(result.Category),
		Label:          result.Label,
		Message:        result.Message,
		Style:          result.Style,
	}
}

func styleFor(bands []scoring.Band, category scoring.Category) string {
	for _, band := range bands {
		if band.Category == category {
			return band.Style
		}
	}
	return ""
}

func formatScore(score, maxScore int) string {
	return fmt.Sprintf("%d / %d", score, maxScore)
}
