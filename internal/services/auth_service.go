package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"summit-insurance/portal/internal/auth"
	"summit-insurance/portal/internal/db"
	"summit-insurance/portal/internal/models/dtos"
	models "summit-insurance/portal/internal/models/gorm"
	"summit-insurance/portal/internal/validation"
)

// AuthService implements the credential surface: gated self-registration,
// sign-in, and the admin-invoked password reset. Registration is refused
// unless the email is present in the allow-list; that check lives here,
// server-side, and cannot be bypassed by a client.
type AuthService struct {
	db     *gorm.DB
	tokens *auth.TokenManager
}

func NewAuthService(db *gorm.DB, tokens *auth.TokenManager) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// SignUp creates an account and its profile for an allow-listed email
// and issues a session token. Callers must translate ErrNotAuthorized
// and ErrAccountExists into generic, non-enumerating copy.
func (svc *AuthService) SignUp(ctx context.Context, req dtos.SignUpReq) (*dtos.SessionResp, error) {
	if err := validation.Email("email", req.Email); err != nil {
		return nil, err
	}
	if err := validation.Password(req.Password); err != nil {
		return nil, err
	}
	if err := validation.RequiredText("full_name", req.FullName, validation.MaxNameLen); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)

	var entry models.AllowlistEntry
	err := svc.db.WithContext(ctx).First(&entry, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAuthorized
		}
		return nil, fmt.Errorf("failed to check allow-list: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	fullName := strings.TrimSpace(req.FullName)
	account := models.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}
	profile := models.Profile{
		ID:       account.ID,
		Email:    email,
		FullName: &fullName,
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := svc.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	return &dtos.SessionResp{
		Token:   token,
		Profile: profileResp(&profile),
	}, nil
}

// SignIn verifies credentials and issues a session token. Every failure
// is ErrInvalidCredentials so responses reveal nothing about whether
// the email is registered.
func (svc *AuthService) SignIn(ctx context.Context, req dtos.SignInReq) (*dtos.SessionResp, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	var account models.Account
	err := svc.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := svc.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	resp := &dtos.SessionResp{Token: token}

	var profile models.Profile
	if err := svc.db.WithContext(ctx).First(&profile, "id = ?", account.ID).Error; err == nil {
		resp.Profile = profileResp(&profile)
	}

	return resp, nil
}

// ResetPassword replaces a member's password. Privileged: the caller
// must already have passed admin verification before this runs.
func (svc *AuthService) ResetPassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < validation.MinPasswordLen || len(newPassword) > validation.MaxPasswordLen {
		return &validation.Error{
			Field:   "new_password",
			Message: fmt.Sprintf("Password must be %d-%d characters", validation.MinPasswordLen, validation.MaxPasswordLen),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	res := svc.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", userID).
		Update("password_hash", string(hash))
	if res.Error != nil {
		return fmt.Errorf("failed to update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func profileResp(p *models.Profile) *dtos.ProfileResp {
	return &dtos.ProfileResp{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
	}
}
