package middleware

import (
	"net/http"
	"strings"
	"time"

	"summit-insurance/portal/internal/auth"
	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/constants"
)

// AuthMiddleware parses the bearer session token and stores its claims
// in the request context. The claims are an unverified identity only:
// admin gating happens in RequireAdminMiddleware against the privileged
// verification service.
func AuthMiddleware(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			token := BearerToken(r)
			if token == "" {
				common.RespondError(w, initTime, nil, constants.MsgAccessDenied, http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				common.RespondError(w, initTime, err, constants.MsgAccessDenied, http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from the Authorization header, or ""
// when absent. The scheme is matched case-insensitively per RFC 7235.
func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
