package middlewares

import (
	"context"
	"net/http"
	"sensus-service/internal/app/models"
	"sensus-service/internal/app/services/shared/jwtmanager"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

const maxViewerIDLength = 128

// Authenticate requires a bearer token that points at a live session.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.ExtractBearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.resolveSession(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
	})
}

// OptionalAuthenticate attaches the session when a valid token is sent and
// otherwise lets the request through anonymously.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.ExtractBearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.resolveSession(r.Context(), token)
		if err != nil {
			m.Log.Info("Middlewares.OptionalAuthenticate continuing anonymously",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
	})
}

// ViewerIdentity resolves who owns per-viewer state: the signed in user, or
// else the X-Viewer-ID header sent by anonymous clients.
func (m *Middlewares) ViewerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSession(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		viewerID := strings.TrimSpace(r.Header.Get(constvars.HeaderXViewerID))
		if viewerID == "" || len(viewerID) > maxViewerIDLength {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingViewerID(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_VIEWER_ID_KEY, "anon:"+viewerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) resolveSession(ctx context.Context, token string) (*models.Session, error) {
	verified, err := m.JWTManager.VerifyToken(ctx, &jwtmanager.VerifyTokenInput{Token: token})
	if err != nil || !verified.Valid {
		return nil, exceptions.ErrTokenInvalid(err)
	}

	session, err := m.SessionService.GetSession(ctx, verified.SessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != verified.Subject {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return session, nil
}

func withSession(ctx context.Context, session *models.Session) context.Context {
	ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
	return context.WithValue(ctx, constvars.CONTEXT_VIEWER_ID_KEY, session.UserID)
}
