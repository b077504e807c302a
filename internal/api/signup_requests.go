package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/metrics"
	"summit-insurance/portal/internal/models/dtos"
	models "summit-insurance/portal/internal/models/gorm"
	"summit-insurance/portal/internal/services"
	"summit-insurance/portal/internal/validation"
)

// SignupWorkflow is the slice of the workflow service the request
// handlers need.
type SignupWorkflow interface {
	Submit(ctx context.Context, req dtos.SignupRequestReq) (*models.SignupRequest, error)
	List(ctx context.Context) ([]models.SignupRequest, error)
	Approve(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error)
	Reject(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error)
	AddAllowlistEntry(ctx context.Context, req dtos.AllowlistAddReq, adminID string) (*models.AllowlistEntry, error)
	ListAllowlist(ctx context.Context) ([]models.AllowlistEntry, error)
}

// SubmitSignupRequestHandler handles POST /api/v1/signup-requests
//
// Public endpoint: anyone can ask for access. Duplicate emails come
// back as 409 so the caller knows a request is already on file.
func SubmitSignupRequestHandler(workflow SignupWorkflow, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SignupRequestReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		record, err := workflow.Submit(r.Context(), req)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				metricsReg.SignupRequestsTotal.WithLabelValues("invalid").Inc()
				common.RespondError(w, initTime, err, vErr.Message, http.StatusBadRequest)
			case errors.Is(err, services.ErrDuplicateRequest):
				metricsReg.SignupRequestsTotal.WithLabelValues("duplicate").Inc()
				common.RespondError(w, initTime, err, constants.MsgDuplicateRequest, http.StatusConflict)
			default:
				common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			}
			return
		}

		metricsReg.SignupRequestsTotal.WithLabelValues("created").Inc()
		common.RespondSuccess(w, initTime, constants.MsgRequestSubmitted, toSignupRequestResp(record), http.StatusCreated)
	}
}

func toSignupRequestResp(record *models.SignupRequest) dtos.SignupRequestResp {
	return dtos.SignupRequestResp{
		ID:         record.ID,
		Email:      record.Email,
		FullName:   record.FullName,
		Phone:      record.Phone,
		Message:    record.Message,
		Status:     string(record.Status),
		CreatedAt:  record.CreatedAt,
		ApprovedAt: record.ApprovedAt,
		ApprovedBy: record.ApprovedBy,
	}
}
