package middleware

import (
	"context"
	"net/http"
	"time"

	"summit-insurance/portal/internal/auth"
	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/constants"
)

// AdminVerifier is the privileged check behind the admin surface.
type AdminVerifier interface {
	VerifyAdmin(ctx context.Context, userID string) bool
}

// RequireAdminMiddleware gates a route on the verified admin decision.
// It runs after AuthMiddleware and denies unless the verifier
// affirmatively says yes: a missing identity or an erroring role store
// resolves to 401, never to partial admin content.
func RequireAdminMiddleware(verifier AdminVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			claims := auth.GetUserClaims(r.Context())
			if claims == nil || !verifier.VerifyAdmin(r.Context(), claims.UserID()) {
				common.RespondError(w, initTime, nil, constants.MsgAccessDenied, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
