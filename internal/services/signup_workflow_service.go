package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/db"
	"summit-insurance/portal/internal/models/dtos"
	models "summit-insurance/portal/internal/models/gorm"
	"summit-insurance/portal/internal/validation"
)

// SignupWorkflowService owns the signup-request lifecycle and the
// allow-list it feeds. Transitions are pending -> approved or
// pending -> rejected, enforced by a conditional update at the store so
// two admins racing on the same request cannot both win.
type SignupWorkflowService struct {
	db *gorm.DB
}

func NewSignupWorkflowService(db *gorm.DB) *SignupWorkflowService {
	return &SignupWorkflowService{db: db}
}

// Submit records a new access request in pending state. A request for an
// email that was ever requested before, regardless of its status, is a
// distinct duplicate conflict rather than an overwrite.
func (svc *SignupWorkflowService) Submit(ctx context.Context, req dtos.SignupRequestReq) (*models.SignupRequest, error) {
	if err := validation.Email("email", req.Email); err != nil {
		return nil, err
	}
	if err := validation.RequiredText("full_name", req.FullName, validation.MaxNameLen); err != nil {
		return nil, err
	}
	if err := validation.OptionalText("phone", req.Phone, validation.MaxPhoneLen); err != nil {
		return nil, err
	}
	if err := validation.OptionalText("message", req.Message, validation.MaxRequestMsgLen); err != nil {
		return nil, err
	}

	record := models.SignupRequest{
		ID:       uuid.New().String(),
		Email:    normalizeEmail(req.Email),
		FullName: strings.TrimSpace(req.FullName),
		Status:   constants.RequestPending,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		record.Phone = &phone
	}
	if msg := validation.SanitizeText(req.Message); msg != "" {
		record.Message = &msg
	}

	if err := svc.db.WithContext(ctx).Create(&record).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateRequest
		}
		return nil, fmt.Errorf("failed to create signup request: %w", err)
	}

	return &record, nil
}

// List returns every signup request, newest first. The admin console
// splits pending from processed client-side.
func (svc *SignupWorkflowService) List(ctx context.Context) ([]models.SignupRequest, error) {
	var requests []models.SignupRequest
	err := svc.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list signup requests: %w", err)
	}
	return requests, nil
}

// CountPending returns the number of requests awaiting review.
func (svc *SignupWorkflowService) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := svc.db.WithContext(ctx).
		Model(&models.SignupRequest{}).
		Where("status = ?", constants.RequestPending).
		Count(&count).Error
	return count, err
}

// Approve transitions a pending request to approved and publishes its
// email to the allow-list. Both writes commit or roll back as one
// transaction: a request is never marked approved without its
// allow-list entry existing. An email already allow-listed (for
// example, added manually) is tolerated as success.
func (svc *SignupWorkflowService) Approve(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error) {
	var approved models.SignupRequest

	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req models.SignupRequest
		if err := tx.First(&req, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("failed to load signup request: %w", err)
		}
		if req.Status != constants.RequestPending {
			return ErrRequestNotPending
		}

		notes := "approved from signup request - " + req.FullName
		entry := models.AllowlistEntry{
			ID:         uuid.New().String(),
			Email:      req.Email,
			ApprovedBy: &adminID,
			Notes:      &notes,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&entry).Error
		if err != nil && !db.IsUniqueViolation(err) {
			return fmt.Errorf("failed to insert allow-list entry: %w", err)
		}

		// Conditional transition: the status precondition is enforced
		// here, at the store, so a concurrent approve/reject loses
		// cleanly instead of double-applying.
		now := time.Now()
		res := tx.Model(&models.SignupRequest{}).
			Where("id = ? AND status = ?", requestID, constants.RequestPending).
			Updates(map[string]interface{}{
				"status":      constants.RequestApproved,
				"approved_at": now,
				"approved_by": adminID,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update signup request: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRequestNotPending
		}

		return tx.First(&approved, "id = ?", requestID).Error
	})
	if err != nil {
		return nil, err
	}

	return &approved, nil
}

// Reject transitions a pending request to rejected. No allow-list entry
// is created and nothing is deleted.
func (svc *SignupWorkflowService) Reject(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error) {
	var rejected models.SignupRequest

	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req models.SignupRequest
		if err := tx.First(&req, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("failed to load signup request: %w", err)
		}
		if req.Status != constants.RequestPending {
			return ErrRequestNotPending
		}

		res := tx.Model(&models.SignupRequest{}).
			Where("id = ? AND status = ?", requestID, constants.RequestPending).
			Update("status", constants.RequestRejected)
		if res.Error != nil {
			return fmt.Errorf("failed to update signup request: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRequestNotPending
		}

		return tx.First(&rejected, "id = ?", requestID).Error
	})
	if err != nil {
		return nil, err
	}

	return &rejected, nil
}

// AddAllowlistEntry authorizes an email by hand, outside the request
// workflow. A later approval for the same email still succeeds.
func (svc *SignupWorkflowService) AddAllowlistEntry(ctx context.Context, req dtos.AllowlistAddReq, adminID string) (*models.AllowlistEntry, error) {
	if err := validation.Email("email", req.Email); err != nil {
		return nil, err
	}
	if err := validation.OptionalText("notes", req.Notes, validation.MaxRequestMsgLen); err != nil {
		return nil, err
	}

	entry := models.AllowlistEntry{
		ID:         uuid.New().String(),
		Email:      normalizeEmail(req.Email),
		ApprovedBy: &adminID,
	}
	if notes := validation.SanitizeText(req.Notes); notes != "" {
		entry.Notes = &notes
	}

	if err := svc.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrAlreadyAllowlisted
		}
		return nil, fmt.Errorf("failed to insert allow-list entry: %w", err)
	}

	return &entry, nil
}

// ListAllowlist returns every allow-list entry, newest first.
func (svc *SignupWorkflowService) ListAllowlist(ctx context.Context) ([]models.AllowlistEntry, error) {
	var entries []models.AllowlistEntry
	err := svc.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list allow-list entries: %w", err)
	}
	return entries, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
