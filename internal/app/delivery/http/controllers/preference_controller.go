package controllers

import (
	"context"
	"net/http"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/dto/requests"
	"sensus-service/internal/pkg/dto/responses"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PreferenceController struct {
	Log               *zap.Logger
	PreferenceUsecase contracts.PreferenceUsecase
}

var (
	preferenceControllerInstance *PreferenceController
	oncePreferenceController     sync.Once
)

func NewPreferenceController(logger *zap.Logger, preferenceUsecase contracts.PreferenceUsecase) *PreferenceController {
	oncePreferenceController.Do(func() {
		preferenceControllerInstance = &PreferenceController{
			Log:               logger,
			PreferenceUsecase: preferenceUsecase,
		}
	})
	return preferenceControllerInstance
}

func (ctrl *PreferenceController) GetTheme(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "PreferenceController.GetTheme")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	theme, err := ctrl.PreferenceUsecase.GetTheme(ctx, utils.GetViewerID(r.Context()))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "PreferenceController.GetTheme", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindThemeSuccessMessage, responses.Theme{Theme: theme})
}

func (ctrl *PreferenceController) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "PreferenceController.UpdateTheme")
	if !ok {
		return
	}

	request := new(requests.UpdateTheme)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("PreferenceController.UpdateTheme error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("PreferenceController.UpdateTheme validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	theme, err := ctrl.PreferenceUsecase.SetTheme(ctx, utils.GetViewerID(r.Context()), request.Theme)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "PreferenceController.UpdateTheme", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateThemeSuccessMessage, responses.Theme{Theme: theme})
}

func (ctrl *PreferenceController) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "PreferenceController.ToggleTheme")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	theme, err := ctrl.PreferenceUsecase.ToggleTheme(ctx, utils.GetViewerID(r.Context()))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "PreferenceController.ToggleTheme", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateThemeSuccessMessage, responses.Theme{Theme: theme})
}
