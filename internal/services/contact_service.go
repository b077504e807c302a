package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"summit-insurance/portal/internal/models/dtos"
	"summit-insurance/portal/internal/models/entities"
	"summit-insurance/portal/internal/validation"
)

// ContactStore persists contact-form submissions, backed by sqlx.
type ContactStore interface {
	Insert(ctx context.Context, row *entities.ContactRow) error
	List(ctx context.Context) ([]entities.ContactRow, error)
}

// ContactService handles the public contact form and its admin listing.
type ContactService struct {
	store ContactStore
}

func NewContactService(store ContactStore) *ContactService {
	return &ContactService{store: store}
}

// Submit validates, sanitizes and stores one contact message.
func (svc *ContactService) Submit(ctx context.Context, req dtos.ContactReq) (*entities.ContactRow, error) {
	if err := validation.RequiredText("name", req.Name, validation.MaxNameLen); err != nil {
		return nil, err
	}
	if err := validation.Email("email", req.Email); err != nil {
		return nil, err
	}
	if err := validation.OptionalText("phone", req.Phone, validation.MaxPhoneLen); err != nil {
		return nil, err
	}
	// Validate what will actually be stored: an all-markup message
	// sanitizes down to nothing and must be rejected, not stored empty.
	message := validation.SanitizeText(req.Message)
	if err := validation.RequiredText("message", message, validation.MaxContactMsgLen); err != nil {
		return nil, err
	}

	row := entities.ContactRow{
		ID:      uuid.New().String(),
		Name:    strings.TrimSpace(req.Name),
		Email:   normalizeEmail(req.Email),
		Message: message,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		row.Phone = &phone
	}

	if err := svc.store.Insert(ctx, &row); err != nil {
		return nil, fmt.Errorf("failed to store contact submission: %w", err)
	}

	return &row, nil
}

// List returns every contact submission, newest first.
func (svc *ContactService) List(ctx context.Context) ([]entities.ContactRow, error) {
	return svc.store.List(ctx)
}
