package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/models/dtos"
	"summit-insurance/portal/internal/models/entities"
	"summit-insurance/portal/internal/services"
	"summit-insurance/portal/internal/validation"
)

// CareersDesk is the slice of the job application service the handlers
// need.
type CareersDesk interface {
	Submit(ctx context.Context, req dtos.JobApplicationReq, resume *services.ResumeUpload) (*entities.JobApplicationRow, error)
	List(ctx context.Context) ([]entities.JobApplicationRow, error)
	OpenResume(ctx context.Context, id string) (io.ReadCloser, string, error)
	UpdateStatus(ctx context.Context, id string, status constants.ApplicationStatus) error
}

// SubmitJobApplicationHandler handles POST /api/v1/jobs/applications
//
// Multipart form: text fields plus an optional "resume" file part. The
// whole body is capped a little above the resume limit to leave room
// for the form fields.
func SubmitJobApplicationHandler(desk CareersDesk, maxResumeSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		r.Body = http.MaxBytesReader(w, r.Body, maxResumeSize+512*1024)
		if err := r.ParseMultipartForm(maxResumeSize); err != nil {
			common.RespondError(w, initTime, err, "Invalid or oversized form submission", http.StatusBadRequest)
			return
		}

		req := dtos.JobApplicationReq{
			JobTitle:    r.FormValue("job_title"),
			FullName:    r.FormValue("full_name"),
			Email:       r.FormValue("email"),
			Phone:       r.FormValue("phone"),
			CoverLetter: r.FormValue("cover_letter"),
		}

		var resume *services.ResumeUpload
		if file, header, err := r.FormFile("resume"); err == nil {
			defer file.Close()
			resume = &services.ResumeUpload{
				Filename: header.Filename,
				Size:     header.Size,
				Reader:   file,
			}
		}

		row, err := desk.Submit(r.Context(), req, resume)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				common.RespondError(w, initTime, err, vErr.Message, http.StatusBadRequest)
			case errors.Is(err, services.ErrResumeTooLarge):
				common.RespondError(w, initTime, err, "Resume must be 5MB or smaller.", http.StatusRequestEntityTooLarge)
			case errors.Is(err, services.ErrResumeBadType):
				common.RespondError(w, initTime, err, "Resume must be a PDF, DOC, or DOCX file.", http.StatusBadRequest)
			default:
				common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			}
			return
		}

		common.RespondSuccess(w, initTime, "Application received", toJobApplicationResp(row), http.StatusCreated)
	}
}

// ListJobApplicationsHandler handles GET /api/v1/admin/jobs/applications
func ListJobApplicationsHandler(desk CareersDesk) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		rows, err := desk.List(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			return
		}

		resp := make([]dtos.JobApplicationResp, 0, len(rows))
		for i := range rows {
			resp = append(resp, toJobApplicationResp(&rows[i]))
		}

		common.RespondSuccess(w, initTime, "Job applications retrieved", resp)
	}
}

// DownloadResumeHandler handles GET /api/v1/admin/jobs/applications/{id}/resume
//
// Streams the stored file instead of the JSON envelope.
func DownloadResumeHandler(desk CareersDesk) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "id")

		rc, filename, err := desk.OpenResume(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrApplicationNotFound), errors.Is(err, services.ErrNoResume):
				common.RespondError(w, initTime, err, "Resume not found.", http.StatusNotFound)
			default:
				common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			}
			return
		}
		defer rc.Close()

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		if _, err := io.Copy(w, rc); err != nil {
			// Headers are gone at this point, nothing left to send
			return
		}
	}
}

// UpdateJobApplicationStatusHandler handles PUT /api/v1/admin/jobs/applications/{id}/status
func UpdateJobApplicationStatusHandler(desk CareersDesk) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "id")

		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		err := desk.UpdateStatus(r.Context(), id, constants.ApplicationStatus(req.Status))
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				common.RespondError(w, initTime, err, vErr.Message, http.StatusBadRequest)
			case errors.Is(err, services.ErrApplicationNotFound):
				common.RespondError(w, initTime, err, "Job application not found.", http.StatusNotFound)
			default:
				common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			}
			return
		}

		common.RespondSuccess(w, initTime, "Application status updated", nil)
	}
}

func toJobApplicationResp(row *entities.JobApplicationRow) dtos.JobApplicationResp {
	var cover *string
	if row.CoverLetter != nil && *row.CoverLetter != "" {
		cover = row.CoverLetter
	}
	return dtos.JobApplicationResp{
		ID:          row.ID,
		JobTitle:    row.JobTitle,
		FullName:    row.FullName,
		Email:       row.Email,
		Phone:       row.Phone,
		CoverLetter: cover,
		HasResume:   row.ResumeKey != nil && *row.ResumeKey != "",
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
	}
}
