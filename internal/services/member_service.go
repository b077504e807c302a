package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"summit-insurance/portal/internal/models/dtos"
	"summit-insurance/portal/internal/models/entities"
	models "summit-insurance/portal/internal/models/gorm"
	"summit-insurance/portal/internal/validation"
)

// MemberStore is the read-side listing of profiles joined with roles,
// backed by sqlx against Postgres.
type MemberStore interface {
	ListMembers(ctx context.Context) ([]entities.MemberRow, error)
}

// MemberService serves the members area and the admin members listing.
type MemberService struct {
	db      *gorm.DB
	members MemberStore
}

func NewMemberService(db *gorm.DB, members MemberStore) *MemberService {
	return &MemberService{db: db, members: members}
}

// GetProfile returns the caller's own profile.
func (svc *MemberService) GetProfile(ctx context.Context, userID string) (*dtos.ProfileResp, error) {
	var profile models.Profile
	err := svc.db.WithContext(ctx).First(&profile, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profileResp(&profile), nil
}

// UpdateProfile edits the caller's own full name and phone. Email is
// fixed: it is the allow-list key the account was admitted under.
func (svc *MemberService) UpdateProfile(ctx context.Context, userID string, req dtos.UpdateProfileReq) (*dtos.ProfileResp, error) {
	if err := validation.RequiredText("full_name", req.FullName, validation.MaxNameLen); err != nil {
		return nil, err
	}
	if err := validation.OptionalText("phone", req.Phone, validation.MaxPhoneLen); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"full_name": strings.TrimSpace(req.FullName),
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		updates["phone"] = phone
	} else {
		updates["phone"] = nil
	}

	res := svc.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrMemberNotFound
	}

	return svc.GetProfile(ctx, userID)
}

// ListMembers returns every profile with its roles, newest first, for
// the admin console.
func (svc *MemberService) ListMembers(ctx context.Context) ([]dtos.MemberResp, error) {
	rows, err := svc.members.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]dtos.MemberResp, 0, len(rows))
	for _, row := range rows {
		roles := []string{}
		if row.Roles != "" {
			roles = strings.Split(row.Roles, ",")
		}
		members = append(members, dtos.MemberResp{
			ID:        row.ID,
			Email:     row.Email,
			FullName:  row.FullName,
			Phone:     row.Phone,
			CreatedAt: row.CreatedAt,
			Roles:     roles,
		})
	}
	return members, nil
}
