package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"summit-insurance/portal/internal/auth"
	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/metrics"
	"summit-insurance/portal/internal/models/dtos"
	models "summit-insurance/portal/internal/models/gorm"
	"summit-insurance/portal/internal/services"
)

// ListSignupRequestsHandler handles GET /api/v1/admin/signup-requests
func ListSignupRequestsHandler(workflow SignupWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		records, err := workflow.List(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			return
		}

		resp := make([]dtos.SignupRequestResp, 0, len(records))
		for i := range records {
			resp = append(resp, toSignupRequestResp(&records[i]))
		}

		common.RespondSuccess(w, initTime, "Signup requests retrieved", resp)
	}
}

// ApproveSignupRequestHandler handles POST /api/v1/admin/signup-requests/{id}/approve
//
// Approval allowlists the email and marks the request approved in one
// transaction. Requests already decided come back as 409.
func ApproveSignupRequestHandler(workflow SignupWorkflow, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return decideSignupRequestHandler(workflow.Approve, "approve", metricsReg)
}

// RejectSignupRequestHandler handles POST /api/v1/admin/signup-requests/{id}/reject
func RejectSignupRequestHandler(workflow SignupWorkflow, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return decideSignupRequestHandler(workflow.Reject, "reject", metricsReg)
}

func decideSignupRequestHandler(
	decide func(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error),
	transition string,
	metricsReg *metrics.MetricsRegistry,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgAccessDenied, http.StatusUnauthorized)
			return
		}

		requestID := chi.URLParam(r, "id")

		record, err := decide(r.Context(), requestID, claims.UserID())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRequestNotFound):
				metricsReg.WorkflowTransitionsTotal.WithLabelValues(transition, "not_found").Inc()
				common.RespondError(w, initTime, err, constants.MsgRequestNotFound, http.StatusNotFound)
			case errors.Is(err, services.ErrRequestNotPending):
				metricsReg.WorkflowTransitionsTotal.WithLabelValues(transition, "already_processed").Inc()
				common.RespondError(w, initTime, err, constants.MsgRequestProcessed, http.StatusConflict)
			default:
				metricsReg.WorkflowTransitionsTotal.WithLabelValues(transition, "error").Inc()
				common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			}
			return
		}

		metricsReg.WorkflowTransitionsTotal.WithLabelValues(transition, "ok").Inc()
		common.RespondSuccess(w, initTime, "Signup request "+string(record.Status), toSignupRequestResp(record))
	}
}
