package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"summit-insurance/portal/internal/auth"
	models "summit-insurance/portal/internal/models/gorm"
	"summit-insurance/portal/internal/services"
)

func newAdminRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	claims := &auth.JWTClaims{
		UserUUID:   "admin-1",
		EmailValue: "admin@example.com",
		JTI:        "token-1",
	}
	return req.WithContext(auth.SetUserClaims(req.Context(), claims))
}

func TestApproveSignupRequestHandler_Success(t *testing.T) {
	approvedBy := "admin-1"
	approvedAt := time.Now()
	mockWorkflow := &mockSignupWorkflow{
		approveFunc: func(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error) {
			if requestID != "req-1" {
				t.Errorf("Expected request ID req-1, got %s", requestID)
			}
			if adminID != "admin-1" {
				t.Errorf("Expected admin ID admin-1, got %s", adminID)
			}
			return &models.SignupRequest{
				ID:         requestID,
				Email:      "jane@example.com",
				FullName:   "Jane Doe",
				Status:     "approved",
				ApprovedAt: &approvedAt,
				ApprovedBy: &approvedBy,
			}, nil
		},
	}

	router := chi.NewRouter()
	router.Post("/api/v1/admin/signup-requests/{id}/approve", ApproveSignupRequestHandler(mockWorkflow, testMetrics))

	req := newAdminRequest("POST", "/api/v1/admin/signup-requests/req-1/approve")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}

func TestApproveSignupRequestHandler_AlreadyProcessed(t *testing.T) {
	mockWorkflow := &mockSignupWorkflow{
		approveFunc: func(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error) {
			return nil, services.ErrRequestNotPending
		},
	}

	router := chi.NewRouter()
	router.Post("/api/v1/admin/signup-requests/{id}/approve", ApproveSignupRequestHandler(mockWorkflow, testMetrics))

	req := newAdminRequest("POST", "/api/v1/admin/signup-requests/req-1/approve")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", rr.Code)
	}
}

func TestRejectSignupRequestHandler_NotFound(t *testing.T) {
	mockWorkflow := &mockSignupWorkflow{
		rejectFunc: func(ctx context.Context, requestID, adminID string) (*models.SignupRequest, error) {
			return nil, services.ErrRequestNotFound
		},
	}

	router := chi.NewRouter()
	router.Post("/api/v1/admin/signup-requests/{id}/reject", RejectSignupRequestHandler(mockWorkflow, testMetrics))

	req := newAdminRequest("POST", "/api/v1/admin/signup-requests/missing/reject")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestApproveSignupRequestHandler_MissingClaims(t *testing.T) {
	mockWorkflow := &mockSignupWorkflow{}

	router := chi.NewRouter()
	router.Post("/api/v1/admin/signup-requests/{id}/approve", ApproveSignupRequestHandler(mockWorkflow, testMetrics))

	req := httptest.NewRequest("POST", "/api/v1/admin/signup-requests/req-1/approve", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rr.Code)
	}
}

func TestListSignupRequestsHandler(t *testing.T) {
	mockWorkflow := &mockSignupWorkflow{
		listFunc: func(ctx context.Context) ([]models.SignupRequest, error) {
			return []models.SignupRequest{
				{ID: "req-2", Email: "b@example.com", Status: "pending"},
				{ID: "req-1", Email: "a@example.com", Status: "approved"},
			}, nil
		},
	}

	handler := ListSignupRequestsHandler(mockWorkflow)

	req := newAdminRequest("GET", "/api/v1/admin/signup-requests")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}
