package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"summit-insurance/portal/internal/auth"
	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/models/dtos"
	models "summit-insurance/portal/internal/models/gorm"
	"summit-insurance/portal/internal/services"
	"summit-insurance/portal/internal/validation"
)

// ListAllowlistHandler handles GET /api/v1/admin/allowlist
func ListAllowlistHandler(workflow SignupWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		entries, err := workflow.ListAllowlist(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			return
		}

		resp := make([]dtos.AllowlistEntryResp, 0, len(entries))
		for i := range entries {
			resp = append(resp, toAllowlistEntryResp(&entries[i]))
		}

		common.RespondSuccess(w, initTime, "Allowlist retrieved", resp)
	}
}

// AddAllowlistEntryHandler handles POST /api/v1/admin/allowlist
//
// Manual allowlisting for emails that never filed a signup request.
func AddAllowlistEntryHandler(workflow SignupWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgAccessDenied, http.StatusUnauthorized)
			return
		}

		var req dtos.AllowlistAddReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		entry, err := workflow.AddAllowlistEntry(r.Context(), req, claims.UserID())
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				common.RespondError(w, initTime, err, vErr.Message, http.StatusBadRequest)
			case errors.Is(err, services.ErrAlreadyAllowlisted):
				common.RespondError(w, initTime, err, "This email is already on the allowlist.", http.StatusConflict)
			default:
				common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			}
			return
		}

		common.RespondSuccess(w, initTime, "Email added to allowlist", toAllowlistEntryResp(entry), http.StatusCreated)
	}
}

func toAllowlistEntryResp(entry *models.AllowlistEntry) dtos.AllowlistEntryResp {
	return dtos.AllowlistEntryResp{
		ID:         entry.ID,
		Email:      entry.Email,
		ApprovedBy: entry.ApprovedBy,
		Notes:      entry.Notes,
		CreatedAt:  entry.CreatedAt,
	}
}
