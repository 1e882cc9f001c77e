package controllers

import (
	"context"
	"errors"
	"net/http"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const controllerTimeout = constvars.AppControllerTimeoutInSeconds * time.Second

// requestIDFromContext reads the id set by the request id middleware and
// writes the error response itself when it is missing.
func requestIDFromContext(log *zap.Logger, w http.ResponseWriter, r *http.Request, handler string) (string, bool) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		log.Error(handler + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	log.Info(handler+" called", zap.String(constvars.LoggingRequestIDKey, requestID))
	return requestID, true
}

func sessionFromContext(log *zap.Logger, w http.ResponseWriter, r *http.Request, requestID, handler string) (*models.Session, bool) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		log.Error(handler+" session not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingSession(nil))
		return nil, false
	}
	return session, true
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, requestID, handler string, err error) {
	log.Error(handler+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
