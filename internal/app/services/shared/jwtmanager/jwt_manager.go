package jwtmanager

import (
	"context"
	"errors"
	"fmt"
	"sensus-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const claimSessionID = "sid"

// JWTManager signs and verifies the HS256 bearer tokens that point at a
// Redis session. The token carries only the session id; revocation is done
// by deleting the session.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type CreateTokenInput struct {
	Subject   string
	SessionID string
}

type CreateTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

type VerifyTokenInput struct {
	Token string
}

type VerifyTokenOutput struct {
	Valid     bool
	Subject   string
	SessionID string
}

func NewJWTManager(secret string, ttl time.Duration, log *zap.Logger) (*JWTManager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid token ttl %s", ttl)
	}
	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (j *JWTManager) TTL() time.Duration {
	return j.ttl
}

func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.SessionID) == "" {
		return nil, errors.New("subject and session id are required")
	}

	now := j.now().UTC()
	expiresAt := now.Add(j.ttl)
	claims := jwt.MapClaims{
		"sub":          in.Subject,
		claimSessionID: in.SessionID,
		"iat":          now.Unix(),
		"nbf":          now.Unix(),
		"exp":          expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, err
	}
	return &CreateTokenOutput{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifyToken reports Valid=false, without an error, for any token that is
// malformed, expired or signed with another key.
func (j *JWTManager) VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Debug("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Token) == "" {
		return &VerifyTokenOutput{Valid: false}, errors.New("token is required")
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	}

	parser := jwt.Parser{}
	parser.ValidMethods = []string{jwt.SigningMethodHS256.Alg()}
	parsed, err := parser.Parse(in.Token, keyFunc)
	if err != nil || !parsed.Valid {
		return &VerifyTokenOutput{Valid: false}, nil
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return &VerifyTokenOutput{Valid: false}, nil
	}
	subject, _ := claims["sub"].(string)
	sessionID, _ := claims[claimSessionID].(string)
	if subject == "" || sessionID == "" {
		return &VerifyTokenOutput{Valid: false}, nil
	}

	return &VerifyTokenOutput{Valid: true, Subject: subject, SessionID: sessionID}, nil
}
