package middlewares

import (
	"sensus-service/internal/app/config"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/app/services/shared/jwtmanager"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	JWTManager     *jwtmanager.JWTManager
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	jwtManager *jwtmanager.JWTManager,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		JWTManager:     jwtManager,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}
