package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"summit-insurance/portal/internal/auth"
	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/metrics"
	"summit-insurance/portal/internal/middleware"
	"summit-insurance/portal/internal/models/dtos"
	"summit-insurance/portal/internal/services"
	"summit-insurance/portal/internal/validation"
)

// Authenticator is the slice of the auth service the handlers need.
type Authenticator interface {
	SignUp(ctx context.Context, req dtos.SignUpReq) (*dtos.SessionResp, error)
	SignIn(ctx context.Context, req dtos.SignInReq) (*dtos.SessionResp, error)
	ResetPassword(ctx context.Context, userID, newPassword string) error
}

// AdminVerifier answers whether a user holds the admin role.
type AdminVerifier interface {
	VerifyAdmin(ctx context.Context, userID string) bool
}

// SignUpHandler handles POST /api/v1/auth/signup
//
// Registration is gated on the allowlist. A non-allowlisted email gets
// the same generic copy whether or not an account exists, so the
// endpoint cannot be used to enumerate members.
func SignUpHandler(authSvc Authenticator, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SignUpReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		session, err := authSvc.SignUp(r.Context(), req)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				metricsReg.AuthAttemptsTotal.WithLabelValues("signup", "invalid").Inc()
				common.RespondError(w, initTime, err, vErr.Message, http.StatusBadRequest)
			case errors.Is(err, services.ErrNotAuthorized), errors.Is(err, services.ErrAccountExists):
				// Same copy for both so signup cannot reveal which emails exist
				metricsReg.AuthAttemptsTotal.WithLabelValues("signup", "denied").Inc()
				common.RespondError(w, initTime, err, constants.MsgSignupFailed, http.StatusForbidden)
			default:
				metricsReg.AuthAttemptsTotal.WithLabelValues("signup", "error").Inc()
				common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			}
			return
		}

		metricsReg.AuthAttemptsTotal.WithLabelValues("signup", "ok").Inc()
		common.RespondSuccess(w, initTime, "Account created", session, http.StatusCreated)
	}
}

// SignInHandler handles POST /api/v1/auth/login
func SignInHandler(authSvc Authenticator, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SignInReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		session, err := authSvc.SignIn(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				metricsReg.AuthAttemptsTotal.WithLabelValues("login", "denied").Inc()
				common.RespondError(w, initTime, err, constants.MsgInvalidCredentials, http.StatusUnauthorized)
				return
			}
			metricsReg.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
			common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			return
		}

		metricsReg.AuthAttemptsTotal.WithLabelValues("login", "ok").Inc()
		common.RespondSuccess(w, initTime, "Signed in", session)
	}
}

// SessionHandler handles GET /api/v1/auth/session
//
// Runs behind the auth middleware, so claims are always present here.
func SessionHandler(members MemberDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgAccessDenied, http.StatusUnauthorized)
			return
		}

		profile, err := members.GetProfile(r.Context(), claims.UserID())
		if err != nil {
			if errors.Is(err, services.ErrMemberNotFound) {
				common.RespondError(w, initTime, err, constants.MsgAccessDenied, http.StatusUnauthorized)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Session active", profile)
	}
}

// VerifyAdminHandler handles POST /api/v1/auth/verify-admin
//
// Not behind the auth middleware: a missing or invalid token is a valid
// question with the answer false, never a 401. Always responds 200 with
// the verdict.
func VerifyAdminHandler(tokens *auth.TokenManager, verifier AdminVerifier, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		isAdmin := false
		if token := middleware.BearerToken(r); token != "" {
			if claims, err := tokens.Parse(token); err == nil {
				isAdmin = verifier.VerifyAdmin(r.Context(), claims.UserID())
			}
		}

		verdict := "denied"
		if isAdmin {
			verdict = "granted"
		}
		metricsReg.AdminVerificationsTotal.WithLabelValues(verdict).Inc()

		common.RespondSuccess(w, initTime, "Verification complete", dtos.VerifyAdminResp{IsAdmin: isAdmin})
	}
}

// ResetPasswordHandler handles POST /api/v1/admin/members/{id}/reset-password
func ResetPasswordHandler(authSvc Authenticator, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		memberID := chi.URLParam(r, "id")

		var req dtos.ResetPasswordReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := authSvc.ResetPassword(r.Context(), memberID, req.NewPassword); err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				common.RespondError(w, initTime, err, vErr.Message, http.StatusBadRequest)
			case errors.Is(err, services.ErrMemberNotFound):
				common.RespondError(w, initTime, err, "Member not found.", http.StatusNotFound)
			default:
				metricsReg.AuthAttemptsTotal.WithLabelValues("reset_password", "error").Inc()
				common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			}
			return
		}

		metricsReg.AuthAttemptsTotal.WithLabelValues("reset_password", "ok").Inc()
		common.RespondSuccess(w, initTime, "Password reset", nil)
	}
}
