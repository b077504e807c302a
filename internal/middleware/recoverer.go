package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/logging"
)

// RecovererMiddleware turns a handler panic into a logged 500 envelope
// instead of a dropped connection. http.ErrAbortHandler is re-raised so
// deliberate aborts keep their net/http semantics.
func RecovererMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logging.Error("panic recovered",
					"request_id", RequestIDFromContext(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"panic", fmt.Sprintf("%v", rec),
					"stack", string(debug.Stack()),
				)
				common.RespondError(w, initTime, fmt.Errorf("panic: %v", rec), constants.MsgGenericFailure, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
