package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
	"sensus-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic in any handler into a 500 response.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("%v", x)
				}

				m.Log.Error("recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.Any(constvars.LoggingPanicKey, rec),
					zap.ByteString(constvars.LoggingStackTraceKey, debug.Stack()),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
