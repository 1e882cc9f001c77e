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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log              *zap.Logger
	IdentityProvider contracts.IdentityProvider
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, identityProvider contracts.IdentityProvider) *AuthController {
	onceAuthController.Do(func() {
		authControllerInstance = &AuthController{
			Log:              logger,
			IdentityProvider: identityProvider,
		}
	})
	return authControllerInstance
}

func (ctrl *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "AuthController.SignUp")
	if !ok {
		return
	}

	request := new(requests.SignUp)
	if !ctrl.decode(w, r, requestID, "AuthController.SignUp", request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	response, err := ctrl.IdentityProvider.SignUp(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AuthController.SignUp", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignUpSuccessMessage, response)
}

func (ctrl *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "AuthController.SignIn")
	if !ok {
		return
	}

	request := new(requests.SignIn)
	if !ctrl.decode(w, r, requestID, "AuthController.SignIn", request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	response, err := ctrl.IdentityProvider.SignIn(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AuthController.SignIn", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SignInSuccessMessage, response)
}

func (ctrl *AuthController) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "AuthController.RequestPasswordReset")
	if !ok {
		return
	}

	request := new(requests.RequestPasswordReset)
	if !ctrl.decode(w, r, requestID, "AuthController.RequestPasswordReset", request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.IdentityProvider.RequestPasswordReset(ctx, request); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AuthController.RequestPasswordReset", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RequestPasswordResetSuccessMessage, nil)
}

func (ctrl *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "AuthController.ResetPassword")
	if !ok {
		return
	}

	request := new(requests.ResetPassword)
	if !ctrl.decode(w, r, requestID, "AuthController.ResetPassword", request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.IdentityProvider.ResetPassword(ctx, request); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AuthController.ResetPassword", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetPasswordSuccessMessage, nil)
}

func (ctrl *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, "AuthController.SignOut")
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r, requestID, "AuthController.SignOut")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.IdentityProvider.SignOut(ctx, session.SessionID); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "AuthController.SignOut", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SignOutSuccessMessage, nil)
}

func (ctrl *AuthController) decode(w http.ResponseWriter, r *http.Request, requestID, handler string, request interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error(handler+" error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}
	return true
}
