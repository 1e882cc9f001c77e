package controllers

import (
	"context"
	"net/http"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/dto/requests"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
}

var (
	assessmentControllerInstance *AssessmentController
	onceAssessmentController     sync.Once
)

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase) *AssessmentController {
	onceAssessmentController.Do(func() {
		assessmentControllerInstance = &AssessmentController{
			Log:               logger,
			AssessmentUsecase: assessmentUsecase,
		}
	})
	return assessmentControllerInstance
}

func (ctrl *AssessmentController) FindInstrument(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "AssessmentController.FindInstrument")
	if !ok {
		return
	}
	instrumentCode := chi.URLParam(r, constvars.URLParamInstrumentCode)

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindInstrument(ctx, instrumentCode)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AssessmentController.FindInstrument", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindInstrumentSuccessMessage, response)
}

// ScoreAssessment is open to anonymous visitors. A signed in caller may ask
// for the result to be saved in the same request.
func (ctrl *AssessmentController) ScoreAssessment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "AssessmentController.ScoreAssessment")
	if !ok {
		return
	}
	instrumentCode := chi.URLParam(r, constvars.URLParamInstrumentCode)

	request := new(requests.ScoreAssessment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AssessmentController.ScoreAssessment error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	var userID string
	if session, ok := utils.GetSession(r.Context()); ok {
		userID = session.UserID
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.ScoreAssessment(ctx, instrumentCode, userID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AssessmentController.ScoreAssessment", err)
		return
	}

	ctrl.Log.Info("AssessmentController.ScoreAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingScoreKey, response.Score),
	)
	if response.Saved {
		utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SaveAssessmentResultSuccessMessage, response)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScoreAssessmentSuccessMessage, response)
}

func (ctrl *AssessmentController) SaveAssessmentResult(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "AssessmentController.SaveAssessmentResult")
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r, requestID, "AssessmentController.SaveAssessmentResult")
	if !ok {
		return
	}
	instrumentCode := chi.URLParam(r, constvars.URLParamInstrumentCode)

	request := new(requests.SaveAssessmentResult)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AssessmentController.SaveAssessmentResult error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.SaveAssessmentResult(ctx, instrumentCode, session.UserID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AssessmentController.SaveAssessmentResult", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SaveAssessmentResultSuccessMessage, response)
}

func (ctrl *AssessmentController) FindResults(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "AssessmentController.FindResults")
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r, requestID, "AssessmentController.FindResults")
	if !ok {
		return
	}
	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	results, total, err := ctrl.AssessmentUsecase.FindResultsByUserID(ctx, session.UserID, page, pageSize)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AssessmentController.FindResults", err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.FindAssessmentResultsSuccessMessage, pagination, results)
}

func (ctrl *AssessmentController) DeleteResult(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "AssessmentController.DeleteResult")
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r, requestID, "AssessmentController.DeleteResult")
	if !ok {
		return
	}
	resultID := chi.URLParam(r, constvars.URLParamResultID)

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.AssessmentUsecase.DeleteResultByID(ctx, session.UserID, resultID); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AssessmentController.DeleteResult", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAssessmentResultSuccessMessage, nil)
}

func (ctrl *AssessmentController) ExportResults(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "AssessmentController.ExportResults")
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r, requestID, "AssessmentController.ExportResults")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.ExportResults(ctx, session.UserID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AssessmentController.ExportResults", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExportAssessmentResultsSuccessMessage, response)
}
