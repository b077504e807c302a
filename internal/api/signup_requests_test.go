package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"summit-insurance/portal/internal/metrics"
	"summit-insurance/portal/internal/models/dtos"
	models "summit-insurance/portal/internal/models/gorm"
	"summit-insurance/portal/internal/services"
)

// Prometheus collectors register globally, so one registry is shared
// across the package tests.
var testMetrics = metrics.NewMetricsRegistry()

// Mock SignupWorkflow
type mockSignupWorkflow struct {
	submitFunc        func(ctx context.Context, req dtos.SignupRequestReq) (*models.SignupRequest, error)
	listFunc          func(ctx context.Context) ([]models.SignupRequest, error)
	approveFunc       func(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error)
	rejectFunc        func(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error)
	addAllowlistFunc  func(ctx context.Context, req dtos.AllowlistAddReq, adminID string) (*models.AllowlistEntry, error)
	listAllowlistFunc func(ctx context.Context) ([]models.AllowlistEntry, error)
}

func (m *mockSignupWorkflow) Submit(ctx context.Context, req dtos.SignupRequestReq) (*models.SignupRequest, error) {
	return m.submitFunc(ctx, req)
}

func (m *mockSignupWorkflow) List(ctx context.Context) ([]models.SignupRequest, error) {
	return m.listFunc(ctx)
}

func (m *mockSignupWorkflow) Approve(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error) {
	return m.approveFunc(ctx, requestID, adminID)
}

func (m *mockSignupWorkflow) Reject(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error) {
	return m.rejectFunc(ctx, requestID, adminID)
}

func (m *mockSignupWorkflow) AddAllowlistEntry(ctx context.Context, req dtos.AllowlistAddReq, adminID string) (*models.AllowlistEntry, error) {
	return m.addAllowlistFunc(ctx, req, adminID)
}

func (m *mockSignupWorkflow) ListAllowlist(ctx context.Context) ([]models.AllowlistEntry, error) {
	return m.listAllowlistFunc(ctx)
}

func TestSubmitSignupRequestHandler_Success(t *testing.T) {
	mockWorkflow := &mockSignupWorkflow{
		submitFunc: func(ctx context.Context, req dtos.SignupRequestReq) (*models.SignupRequest, error) {
			return &models.SignupRequest{
				ID:        "req-1",
				Email:     req.Email,
				FullName:  req.FullName,
				Status:    "pending",
				CreatedAt: time.Now(),
			}, nil
		},
	}

	handler := SubmitSignupRequestHandler(mockWorkflow, testMetrics)

	reqBody := dtos.SignupRequestReq{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
	}
	bodyBytes, _ := json.Marshal(reqBody)

	req := httptest.NewRequest("POST", "/api/v1/signup-requests", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("Expected status ok, got %s", response.Status)
	}
}

func TestSubmitSignupRequestHandler_Duplicate(t *testing.T) {
	mockWorkflow := &mockSignupWorkflow{
		submitFunc: func(ctx context.Context, req dtos.SignupRequestReq) (*models.SignupRequest, error) {
			return nil, services.ErrDuplicateRequest
		},
	}

	handler := SubmitSignupRequestHandler(mockWorkflow, testMetrics)

	reqBody := dtos.SignupRequestReq{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
	}
	bodyBytes, _ := json.Marshal(reqBody)

	req := httptest.NewRequest("POST", "/api/v1/signup-requests", bytes.NewReader(bodyBytes))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Status != "error" {
		t.Errorf("Expected status error, got %s", response.Status)
	}
}

func TestSubmitSignupRequestHandler_InvalidJSON(t *testing.T) {
	mockWorkflow := &mockSignupWorkflow{}
	handler := SubmitSignupRequestHandler(mockWorkflow, testMetrics)

	req := httptest.NewRequest("POST", "/api/v1/signup-requests", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}
