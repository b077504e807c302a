package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/models/dtos"
	"summit-insurance/portal/internal/models/entities"
	"summit-insurance/portal/internal/validation"
)

// ContactInbox is the slice of the contact service the handlers need.
type ContactInbox interface {
	Submit(ctx context.Context, req dtos.ContactReq) (*entities.ContactRow, error)
	List(ctx context.Context) ([]entities.ContactRow, error)
}

// SubmitContactHandler handles POST /api/v1/contact
func SubmitContactHandler(inbox ContactInbox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ContactReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		row, err := inbox.Submit(r.Context(), req)
		if err != nil {
			var vErr *validation.Error
			if errors.As(err, &vErr) {
				common.RespondError(w, initTime, err, vErr.Message, http.StatusBadRequest)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Message received. We will get back to you shortly.", toContactResp(row), http.StatusCreated)
	}
}

// ListContactSubmissionsHandler handles GET /api/v1/admin/contact-submissions
func ListContactSubmissionsHandler(inbox ContactInbox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		rows, err := inbox.List(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			return
		}

		resp := make([]dtos.ContactSubmissionResp, 0, len(rows))
		for i := range rows {
			resp = append(resp, toContactResp(&rows[i]))
		}

		common.RespondSuccess(w, initTime, "Contact submissions retrieved", resp)
	}
}

func toContactResp(row *entities.ContactRow) dtos.ContactSubmissionResp {
	return dtos.ContactSubmissionResp{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Message:   row.Message,
		CreatedAt: row.CreatedAt,
	}
}
