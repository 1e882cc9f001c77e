package auth

import (
	"context"
	"fmt"
	"sensus-service/internal/app/config"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/app/models"
	"sensus-service/internal/app/services/shared/jwtmanager"
	"sensus-service/internal/app/services/shared/ratelimiter"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/dto/requests"
	"sensus-service/internal/pkg/dto/responses"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	signUpLockExpiration = 10 * time.Second

	passwordResetLimiterGroup  = "PASSWORD_RESET"
	passwordResetMaxQuota      = 3
	passwordResetWindowSeconds = 3600
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	LockerService   contracts.LockerService
	MailerService   contracts.MailerService
	JWTManager      *jwtmanager.JWTManager
	ResetLimiter    *ratelimiter.ResourceLimiter
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

var (
	authUsecaseInstance contracts.IdentityProvider
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	mailerService contracts.MailerService,
	jwtManager *jwtmanager.JWTManager,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.IdentityProvider {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:  userRepository,
			RedisRepository: redisRepository,
			SessionService:  sessionService,
			LockerService:   lockerService,
			MailerService:   mailerService,
			JWTManager:      jwtManager,
			ResetLimiter:    ratelimiter.NewResourceLimiter(redisRepository, logger),
			InternalConfig:  internalConfig,
			Log:             logger,
			now:             time.Now,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) SignUp(ctx context.Context, request *requests.SignUp) (*responses.SignUp, error) {
	requestID := utils.GetRequestID(ctx)
	email := normalizeEmail(request.Email)
	uc.Log.Info("authUsecase.SignUp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	if isBlank(request.Name, email, request.Password, request.ConfirmPassword) {
		return nil, uc.reject(ctx, "SignUp", identityError(ErrMissingFields, nil))
	}
	if request.Password != request.ConfirmPassword {
		return nil, uc.reject(ctx, "SignUp", identityError(ErrPasswordsMismatch, nil))
	}
	if utf8.RuneCountInString(request.Password) < minPasswordLength {
		return nil, uc.reject(ctx, "SignUp", identityError(ErrWeakPassword, nil))
	}
	if !utils.IsValidEmail(email) {
		return nil, uc.reject(ctx, "SignUp", identityError(ErrInvalidEmail, nil))
	}

	lockKey := constvars.RedisKeyLockPrefix + "signup:" + email
	locked, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, signUpLockExpiration)
	if err != nil {
		return nil, uc.reject(ctx, "SignUp", identityError(ErrNetwork, err))
	}
	if !locked {
		return nil, uc.reject(ctx, "SignUp", identityError(ErrEmailAlreadyInUse, nil))
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("authUsecase.SignUp error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	existing, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, uc.reject(ctx, "SignUp", identityError(ErrNetwork, err))
	}
	if existing != nil {
		return nil, uc.reject(ctx, "SignUp", identityError(ErrEmailAlreadyInUse, nil))
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: passwordHash,
	}
	user.SetCreatedAt(uc.now().UTC())

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, uc.reject(ctx, "SignUp", identityError(ErrEmailAlreadyInUse, err))
		}
		return nil, uc.reject(ctx, "SignUp", identityError(ErrNetwork, err))
	}

	uc.Log.Info("authUsecase.SignUp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.SignUp{UserID: userID, Name: user.Name, Email: user.Email}, nil
}

func (uc *authUsecase) SignIn(ctx context.Context, request *requests.SignIn) (*responses.SignIn, error) {
	requestID := utils.GetRequestID(ctx)
	email := normalizeEmail(request.Email)
	uc.Log.Info("authUsecase.SignIn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	if isBlank(email, request.Password) {
		return nil, uc.reject(ctx, "SignIn", identityError(ErrMissingFields, nil))
	}
	if !utils.IsValidEmail(email) {
		return nil, uc.reject(ctx, "SignIn", identityError(ErrInvalidEmail, nil))
	}

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, uc.reject(ctx, "SignIn", identityError(ErrNetwork, err))
	}
	if user == nil {
		return nil, uc.reject(ctx, "SignIn", identityError(ErrUserNotFound, nil))
	}
	if !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		return nil, uc.reject(ctx, "SignIn", identityError(ErrInvalidCredentials, nil))
	}

	session, err := uc.SessionService.CreateSession(ctx, user, uc.JWTManager.TTL())
	if err != nil {
		return nil, uc.reject(ctx, "SignIn", identityError(ErrNetwork, err))
	}

	token, err := uc.JWTManager.CreateToken(ctx, &jwtmanager.CreateTokenInput{
		Subject:   user.ID,
		SessionID: session.SessionID,
	})
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.SignIn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return &responses.SignIn{
		Token:     token.Token,
		UserID:    user.ID,
		Name:      user.Name,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

func (uc *authUsecase) RequestPasswordReset(ctx context.Context, request *requests.RequestPasswordReset) error {
	requestID := utils.GetRequestID(ctx)
	email := normalizeEmail(request.Email)
	uc.Log.Info("authUsecase.RequestPasswordReset called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	if email == "" {
		return uc.reject(ctx, "RequestPasswordReset",
			identityErrorWithMessage(ErrMissingFields, nil, constvars.ErrClientResetEmailRequired))
	}
	if !utils.IsValidEmail(email) {
		return uc.reject(ctx, "RequestPasswordReset", identityError(ErrInvalidEmail, nil))
	}

	limit, err := uc.ResetLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      email,
		LimiterGroupName:  passwordResetLimiterGroup,
		WindowDurationSec: passwordResetWindowSeconds,
		MaxQuota:          passwordResetMaxQuota,
		NowUTC:            uc.now().UTC(),
	})
	if err != nil {
		return uc.reject(ctx, "RequestPasswordReset", identityError(ErrNetwork, err))
	}
	if !limit.Allowed {
		return uc.reject(ctx, "RequestPasswordReset",
			identityError(ErrTooManyRequests, fmt.Errorf("retry after %ds", limit.RetryAfterSecs)))
	}

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return uc.reject(ctx, "RequestPasswordReset", identityError(ErrNetwork, err))
	}
	if user == nil {
		return uc.reject(ctx, "RequestPasswordReset", identityError(ErrUserNotFound, nil))
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return exceptions.ErrTokenGenerate(err)
	}

	expiryMinutes := uc.InternalConfig.JWT.ResetPasswordExpiredTimeInMinute
	expiry := time.Duration(expiryMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyResetPasswordPrefix+token, user.ID, expiry); err != nil {
		return uc.reject(ctx, "RequestPasswordReset", identityError(ErrNetwork, err))
	}

	message := &models.MailMessage{
		Type:    constvars.EventTypePasswordReset,
		To:      user.Email,
		Subject: constvars.MailSubjectPasswordReset,
		Body:    fmt.Sprintf(constvars.MailBodyPasswordResetFormat, user.Name, uc.InternalConfig.App.ResetPasswordUrl, token, expiryMinutes),
	}
	if err := uc.MailerService.SendEmail(ctx, message); err != nil {
		return uc.reject(ctx, "RequestPasswordReset", identityError(ErrNetwork, err))
	}

	uc.Log.Info("authUsecase.RequestPasswordReset succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if isBlank(request.Token, request.Password, request.ConfirmPassword) {
		return uc.reject(ctx, "ResetPassword", identityError(ErrMissingFields, nil))
	}
	if request.Password != request.ConfirmPassword {
		return uc.reject(ctx, "ResetPassword", identityError(ErrPasswordsMismatch, nil))
	}
	if utf8.RuneCountInString(request.Password) < minPasswordLength {
		return uc.reject(ctx, "ResetPassword", identityError(ErrWeakPassword, nil))
	}

	// The token is consumed before the password changes, so a failed update
	// needs a fresh reset request.
	tokenKey := constvars.RedisKeyResetPasswordPrefix + request.Token
	var userID string
	found, err := uc.RedisRepository.ScanAndDelete(ctx, tokenKey, &userID)
	if err != nil {
		return uc.reject(ctx, "ResetPassword", identityError(ErrNetwork, err))
	}
	if !found {
		return uc.reject(ctx, "ResetPassword", identityError(ErrInvalidResetToken, nil))
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return uc.reject(ctx, "ResetPassword", identityError(ErrNetwork, err))
	}
	if user == nil {
		return uc.reject(ctx, "ResetPassword", identityError(ErrInvalidResetToken, nil))
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	user.PasswordHash = passwordHash
	user.SetUpdatedAt(uc.now().UTC())

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return uc.reject(ctx, "ResetPassword", identityError(ErrNetwork, err))
	}

	uc.Log.Info("authUsecase.ResetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *authUsecase) SignOut(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.SignOut called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	if err := uc.SessionService.DeleteSession(ctx, sessionID); err != nil {
		return uc.reject(ctx, "SignOut", identityError(ErrNetwork, err))
	}
	return nil
}

func (uc *authUsecase) reject(ctx context.Context, operation string, err error) error {
	uc.Log.Info("authUsecase."+operation+" rejected",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingIdentityOutcome, string(OutcomeOf(err))),
		zap.Error(err),
	)
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isBlank(values ...string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return true
		}
	}
	return false
}
