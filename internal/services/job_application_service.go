package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/models/dtos"
	"summit-insurance/portal/internal/models/entities"
	"summit-insurance/portal/internal/storage"
	"summit-insurance/portal/internal/validation"
)

// ApplicationStore persists job applications, backed by sqlx.
type ApplicationStore interface {
	Insert(ctx context.Context, row *entities.JobApplicationRow) error
	List(ctx context.Context) ([]entities.JobApplicationRow, error)
	GetByID(ctx context.Context, id string) (*entities.JobApplicationRow, error)
	UpdateStatus(ctx context.Context, id string, status constants.ApplicationStatus) error
}

// ResumeUpload is the resume file part of a multipart application.
type ResumeUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

var allowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// JobApplicationService handles candidate applications and their
// resumes.
type JobApplicationService struct {
	apps          ApplicationStore
	storage       storage.Storage
	maxResumeSize int64
}

func NewJobApplicationService(apps ApplicationStore, store storage.Storage, maxResumeSize int64) *JobApplicationService {
	return &JobApplicationService{
		apps:          apps,
		storage:       store,
		maxResumeSize: maxResumeSize,
	}
}

// Submit validates and stores one application. The resume, when
// present, is written to storage first; if the database insert then
// fails the stored file is removed so no orphan remains.
func (svc *JobApplicationService) Submit(ctx context.Context, req dtos.JobApplicationReq, resume *ResumeUpload) (*entities.JobApplicationRow, error) {
	if err := validation.RequiredText("job_title", req.JobTitle, validation.MaxJobTitleLen); err != nil {
		return nil, err
	}
	if err := validation.RequiredText("name", req.FullName, validation.MaxNameLen); err != nil {
		return nil, err
	}
	if err := validation.Email("email", req.Email); err != nil {
		return nil, err
	}
	if err := validation.RequiredText("phone", req.Phone, validation.MaxPhoneLen); err != nil {
		return nil, err
	}
	if err := validation.OptionalText("cover_letter", req.CoverLetter, validation.MaxCoverLetterLen); err != nil {
		return nil, err
	}

	row := entities.JobApplicationRow{
		ID:       uuid.New().String(),
		JobTitle: strings.TrimSpace(req.JobTitle),
		FullName: strings.TrimSpace(req.FullName),
		Email:    normalizeEmail(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Status:   string(constants.ApplicationPending),
	}
	if cover := validation.SanitizeText(req.CoverLetter); cover != "" {
		row.CoverLetter = &cover
	}

	if resume != nil {
		key, err := svc.storeResume(ctx, row.ID, resume)
		if err != nil {
			return nil, err
		}
		row.ResumeKey = &key
	}

	if err := svc.apps.Insert(ctx, &row); err != nil {
		if row.ResumeKey != nil {
			_ = svc.storage.Delete(ctx, *row.ResumeKey)
		}
		return nil, fmt.Errorf("failed to store job application: %w", err)
	}

	return &row, nil
}

func (svc *JobApplicationService) storeResume(ctx context.Context, applicationID string, resume *ResumeUpload) (string, error) {
	if resume.Size > svc.maxResumeSize {
		return "", ErrResumeTooLarge
	}

	ext := strings.ToLower(filepath.Ext(resume.Filename))
	if !allowedResumeExts[ext] {
		return "", ErrResumeBadType
	}

	key := "resumes/" + applicationID + ext
	if _, err := svc.storage.Save(ctx, key, io.LimitReader(resume.Reader, svc.maxResumeSize+1)); err != nil {
		return "", fmt.Errorf("failed to store resume: %w", err)
	}

	// The declared size is client-supplied; re-check what actually
	// landed on disk.
	_, size, err := svc.storage.Exists(ctx, key)
	if err == nil && size > svc.maxResumeSize {
		_ = svc.storage.Delete(ctx, key)
		return "", ErrResumeTooLarge
	}

	return key, nil
}

// List returns every application, newest first.
func (svc *JobApplicationService) List(ctx context.Context) ([]entities.JobApplicationRow, error) {
	return svc.apps.List(ctx)
}

// OpenResume returns the stored resume of one application together with
// a download filename.
func (svc *JobApplicationService) OpenResume(ctx context.Context, id string) (io.ReadCloser, string, error) {
	row, err := svc.apps.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if row == nil {
		return nil, "", ErrApplicationNotFound
	}
	if row.ResumeKey == nil {
		return nil, "", ErrNoResume
	}

	rc, err := svc.storage.Open(ctx, *row.ResumeKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open resume: %w", err)
	}

	ext := filepath.Ext(*row.ResumeKey)
	name := strings.ReplaceAll(row.FullName, " ", "_") + "_resume" + ext
	return rc, name, nil
}

// UpdateStatus moves an application through review
// (pending/reviewed/accepted/rejected).
func (svc *JobApplicationService) UpdateStatus(ctx context.Context, id string, status constants.ApplicationStatus) error {
	switch status {
	case constants.ApplicationPending, constants.ApplicationReviewed,
		constants.ApplicationAccepted, constants.ApplicationRejected:
	default:
		return &validation.Error{Field: "status", Message: "Invalid application status"}
	}

	if err := svc.apps.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrApplicationNotFound
		}
		return fmt.Errorf("failed to update application status: %w", err)
	}
	return nil
}
