package controllers

import (
	"context"
	"net/http"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/dto/requests"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DiaryController struct {
	Log          *zap.Logger
	DiaryUsecase contracts.DiaryUsecase
}

var (
	diaryControllerInstance *DiaryController
	onceDiaryController     sync.Once
)

func NewDiaryController(logger *zap.Logger, diaryUsecase contracts.DiaryUsecase) *DiaryController {
	onceDiaryController.Do(func() {
		diaryControllerInstance = &DiaryController{
			Log:          logger,
			DiaryUsecase: diaryUsecase,
		}
	})
	return diaryControllerInstance
}

func (ctrl *DiaryController) CreateEntry(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "DiaryController.CreateEntry")
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r, requestID, "DiaryController.CreateEntry")
	if !ok {
		return
	}

	request := new(requests.CreateDiaryEntry)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("DiaryController.CreateEntry error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	response, err := ctrl.DiaryUsecase.CreateEntry(ctx, session.UserID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "DiaryController.CreateEntry", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDiaryEntrySuccessMessage, response)
}

func (ctrl *DiaryController) FindEntries(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "DiaryController.FindEntries")
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r, requestID, "DiaryController.FindEntries")
	if !ok {
		return
	}

	var limit int
	if raw := r.URL.Query().Get(constvars.URLQueryParamLimit); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLQueryParamLimit))
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	response, err := ctrl.DiaryUsecase.FindEntries(ctx, session.UserID, limit)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "DiaryController.FindEntries", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindDiaryEntriesSuccessMessage, response)
}

func (ctrl *DiaryController) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "DiaryController.DeleteEntry")
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r, requestID, "DiaryController.DeleteEntry")
	if !ok {
		return
	}
	entryID := chi.URLParam(r, constvars.URLParamEntryID)

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.DiaryUsecase.DeleteEntry(ctx, session.UserID, entryID); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "DiaryController.DeleteEntry", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDiaryEntrySuccessMessage, nil)
}
