package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"summit-insurance/portal/internal/models/dtos"
	"summit-insurance/portal/internal/models/entities"
	models "summit-insurance/portal/internal/models/gorm"
)

// Mock MemberStore
type mockMemberStore struct {
	listFunc func(ctx context.Context) ([]entities.MemberRow, error)
}

func (m *mockMemberStore) ListMembers(ctx context.Context) ([]entities.MemberRow, error) {
	return m.listFunc(ctx)
}

func seedProfile(t *testing.T, svc *MemberService, id string) {
	t.Helper()

	name := "Jane Doe"
	profile := models.Profile{ID: id, Email: "jane@example.com", FullName: &name}
	if err := svc.db.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to seed profile: %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	svc := NewMemberService(newTestDB(t), &mockMemberStore{})
	seedProfile(t, svc, "member-1")

	profile, err := svc.GetProfile(context.Background(), "member-1")
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if profile.Email != "jane@example.com" {
		t.Errorf("Unexpected email %s", profile.Email)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := NewMemberService(newTestDB(t), &mockMemberStore{})

	_, err := svc.GetProfile(context.Background(), "missing")
	if !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("Expected ErrMemberNotFound, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := NewMemberService(newTestDB(t), &mockMemberStore{})
	seedProfile(t, svc, "member-1")

	profile, err := svc.UpdateProfile(context.Background(), "member-1", dtos.UpdateProfileReq{
		FullName: "Jane A. Doe",
		Phone:    "555-0100",
	})
	if err != nil {
		t.Fatalf("Failed to update profile: %v", err)
	}
	if profile.FullName == nil || *profile.FullName != "Jane A. Doe" {
		t.Error("Expected the new full name")
	}
	if profile.Phone == nil || *profile.Phone != "555-0100" {
		t.Error("Expected the new phone")
	}

	// Clearing the phone nulls it out
	profile, err = svc.UpdateProfile(context.Background(), "member-1", dtos.UpdateProfileReq{
		FullName: "Jane A. Doe",
	})
	if err != nil {
		t.Fatalf("Failed to update profile: %v", err)
	}
	if profile.Phone != nil {
		t.Errorf("Expected phone cleared, got %v", *profile.Phone)
	}
}

func TestUpdateProfile_MissingName(t *testing.T) {
	svc := NewMemberService(newTestDB(t), &mockMemberStore{})
	seedProfile(t, svc, "member-1")

	_, err := svc.UpdateProfile(context.Background(), "member-1", dtos.UpdateProfileReq{})
	if err == nil {
		t.Fatal("Expected a validation error for a missing full name")
	}
}

func TestListMembers_SplitsRoles(t *testing.T) {
	store := &mockMemberStore{
		listFunc: func(ctx context.Context) ([]entities.MemberRow, error) {
			return []entities.MemberRow{
				{ID: "admin-1", Email: "admin@example.com", Roles: "member,admin", CreatedAt: time.Now()},
				{ID: "member-1", Email: "jane@example.com", Roles: "member", CreatedAt: time.Now()},
				{ID: "member-2", Email: "new@example.com", Roles: "", CreatedAt: time.Now()},
			}, nil
		},
	}
	svc := NewMemberService(newTestDB(t), store)

	members, err := svc.ListMembers(context.Background())
	if err != nil {
		t.Fatalf("Failed to list members: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("Expected 3 members, got %d", len(members))
	}
	if len(members[0].Roles) != 2 || members[0].Roles[1] != "admin" {
		t.Errorf("Expected split roles, got %v", members[0].Roles)
	}
	if len(members[2].Roles) != 0 {
		t.Errorf("Expected no roles, got %v", members[2].Roles)
	}
}
