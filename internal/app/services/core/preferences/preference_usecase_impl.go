package preferences

import (
	"context"
	"sensus-service/internal/app/config"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type preferenceUsecase struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	preferenceUsecaseInstance contracts.PreferenceUsecase
	oncePreferenceUsecase     sync.Once
)

func NewPreferenceUsecase(
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PreferenceUsecase {
	oncePreferenceUsecase.Do(func() {
		preferenceUsecaseInstance = &preferenceUsecase{
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return preferenceUsecaseInstance
}

// GetTheme returns the stored theme for the viewer, light when none is set.
func (uc *preferenceUsecase) GetTheme(ctx context.Context, viewerID string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("preferenceUsecase.GetTheme called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewerIDKey, viewerID),
	)

	if viewerID == "" {
		return "", exceptions.ErrMissingViewerID(nil)
	}

	var theme string
	found, err := uc.RedisRepository.Scan(ctx, themeKey(viewerID), &theme)
	if err != nil {
		return "", err
	}
	if !found || !constvars.IsValidTheme(theme) {
		return constvars.ThemeLight, nil
	}
	return theme, nil
}

func (uc *preferenceUsecase) SetTheme(ctx context.Context, viewerID, theme string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("preferenceUsecase.SetTheme called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewerIDKey, viewerID),
		zap.String(constvars.LoggingThemeKey, theme),
	)

	if viewerID == "" {
		return "", exceptions.ErrMissingViewerID(nil)
	}
	if !constvars.IsValidTheme(theme) {
		return "", exceptions.ErrInvalidTheme(nil)
	}

	if err := uc.RedisRepository.Set(ctx, themeKey(viewerID), theme, uc.expiration()); err != nil {
		uc.Log.Error("preferenceUsecase.SetTheme error storing theme",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}
	return theme, nil
}

func (uc *preferenceUsecase) ToggleTheme(ctx context.Context, viewerID string) (string, error) {
	current, err := uc.GetTheme(ctx, viewerID)
	if err != nil {
		return "", err
	}

	next := constvars.ThemeDark
	if current == constvars.ThemeDark {
		next = constvars.ThemeLight
	}
	return uc.SetTheme(ctx, viewerID, next)
}

func (uc *preferenceUsecase) expiration() time.Duration {
	return time.Duration(uc.InternalConfig.App.ThemeExpiredTimeInDays) * 24 * time.Hour
}

func themeKey(viewerID string) string {
	return constvars.RedisKeyThemePrefix + viewerID
}
