package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/models/dtos"
	"summit-insurance/portal/internal/models/entities"
	"summit-insurance/portal/internal/services"
)

// Mock CareersDesk
type mockCareersDesk struct {
	submitFunc       func(ctx context.Context, req dtos.JobApplicationReq, resume *services.ResumeUpload) (*entities.JobApplicationRow, error)
	listFunc         func(ctx context.Context) ([]entities.JobApplicationRow, error)
	openResumeFunc   func(ctx context.Context, id string) (io.ReadCloser, string, error)
	updateStatusFunc func(ctx context.Context, id string, status constants.ApplicationStatus) error
}

func (m *mockCareersDesk) Submit(ctx context.Context, req dtos.JobApplicationReq, resume *services.ResumeUpload) (*entities.JobApplicationRow, error) {
	return m.submitFunc(ctx, req, resume)
}

func (m *mockCareersDesk) List(ctx context.Context) ([]entities.JobApplicationRow, error) {
	return m.listFunc(ctx)
}

func (m *mockCareersDesk) OpenResume(ctx context.Context, id string) (io.ReadCloser, string, error) {
	return m.openResumeFunc(ctx, id)
}

func (m *mockCareersDesk) UpdateStatus(ctx context.Context, id string, status constants.ApplicationStatus) error {
	return m.updateStatusFunc(ctx, id, status)
}

func buildApplicationForm(t *testing.T, resumeName string, resumeBody []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"job_title":    "Claims Adjuster",
		"full_name":    "Jane Doe",
		"email":        "jane@example.com",
		"phone":        "555-0100",
		"cover_letter": "I have ten years of experience.",
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("Failed to write field %s: %v", name, err)
		}
	}

	if resumeName != "" {
		part, err := writer.CreateFormFile("resume", resumeName)
		if err != nil {
			t.Fatalf("Failed to create file part: %v", err)
		}
		if _, err := part.Write(resumeBody); err != nil {
			t.Fatalf("Failed to write file part: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestSubmitJobApplicationHandler_Success(t *testing.T) {
	mockDesk := &mockCareersDesk{
		submitFunc: func(ctx context.Context, req dtos.JobApplicationReq, resume *services.ResumeUpload) (*entities.JobApplicationRow, error) {
			if req.JobTitle != "Claims Adjuster" {
				t.Errorf("Expected job title Claims Adjuster, got %s", req.JobTitle)
			}
			if resume == nil {
				t.Fatal("Expected a resume upload")
			}
			if resume.Filename != "resume.pdf" {
				t.Errorf("Expected filename resume.pdf, got %s", resume.Filename)
			}
			key := "resumes/app-1.pdf"
			return &entities.JobApplicationRow{
				ID:        "app-1",
				JobTitle:  req.JobTitle,
				FullName:  req.FullName,
				Email:     req.Email,
				Phone:     req.Phone,
				ResumeKey: &key,
				Status:    "pending",
			}, nil
		},
	}

	handler := SubmitJobApplicationHandler(mockDesk, 5*1024*1024)

	body, contentType := buildApplicationForm(t, "resume.pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest("POST", "/api/v1/jobs/applications", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}
}

func TestSubmitJobApplicationHandler_NoResume(t *testing.T) {
	mockDesk := &mockCareersDesk{
		submitFunc: func(ctx context.Context, req dtos.JobApplicationReq, resume *services.ResumeUpload) (*entities.JobApplicationRow, error) {
			if resume != nil {
				t.Error("Expected no resume upload")
			}
			return &entities.JobApplicationRow{ID: "app-2", Status: "pending"}, nil
		},
	}

	handler := SubmitJobApplicationHandler(mockDesk, 5*1024*1024)

	body, contentType := buildApplicationForm(t, "", nil)
	req := httptest.NewRequest("POST", "/api/v1/jobs/applications", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}
}

func TestSubmitJobApplicationHandler_BadFileType(t *testing.T) {
	mockDesk := &mockCareersDesk{
		submitFunc: func(ctx context.Context, req dtos.JobApplicationReq, resume *services.ResumeUpload) (*entities.JobApplicationRow, error) {
			return nil, services.ErrResumeBadType
		},
	}

	handler := SubmitJobApplicationHandler(mockDesk, 5*1024*1024)

	body, contentType := buildApplicationForm(t, "resume.exe", []byte("MZ"))
	req := httptest.NewRequest("POST", "/api/v1/jobs/applications", body)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestDownloadResumeHandler(t *testing.T) {
	mockDesk := &mockCareersDesk{
		openResumeFunc: func(ctx context.Context, id string) (io.ReadCloser, string, error) {
			return io.NopCloser(strings.NewReader("fake pdf bytes")), "Jane_Doe_resume.pdf", nil
		},
	}

	router := chi.NewRouter()
	router.Get("/api/v1/admin/jobs/applications/{id}/resume", DownloadResumeHandler(mockDesk))

	req := httptest.NewRequest("GET", "/api/v1/admin/jobs/applications/app-1/resume", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Disposition"); !strings.Contains(got, "Jane_Doe_resume.pdf") {
		t.Errorf("Expected download filename in Content-Disposition, got %q", got)
	}
	if rr.Body.String() != "fake pdf bytes" {
		t.Errorf("Unexpected body: %q", rr.Body.String())
	}
}

func TestDownloadResumeHandler_NoResume(t *testing.T) {
	mockDesk := &mockCareersDesk{
		openResumeFunc: func(ctx context.Context, id string) (io.ReadCloser, string, error) {
			return nil, "", services.ErrNoResume
		},
	}

	router := chi.NewRouter()
	router.Get("/api/v1/admin/jobs/applications/{id}/resume", DownloadResumeHandler(mockDesk))

	req := httptest.NewRequest("GET", "/api/v1/admin/jobs/applications/app-1/resume", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestUpdateJobApplicationStatusHandler_InvalidStatus(t *testing.T) {
	// The real service rejects unknown statuses with a validation error
	desk := &mockCareersDesk{
		updateStatusFunc: func(ctx context.Context, id string, status constants.ApplicationStatus) error {
			svc := services.NewJobApplicationService(nil, nil, 0)
			return svc.UpdateStatus(ctx, id, status)
		},
	}

	router := chi.NewRouter()
	router.Put("/api/v1/admin/jobs/applications/{id}/status", UpdateJobApplicationStatusHandler(desk))

	req := httptest.NewRequest("PUT", "/api/v1/admin/jobs/applications/app-1/status", strings.NewReader(`{"status":"bogus"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestUpdateJobApplicationStatusHandler_Success(t *testing.T) {
	desk := &mockCareersDesk{
		updateStatusFunc: func(ctx context.Context, id string, status constants.ApplicationStatus) error {
			if status != constants.ApplicationReviewed {
				t.Errorf("Expected status reviewed, got %s", status)
			}
			return nil
		},
	}

	router := chi.NewRouter()
	router.Put("/api/v1/admin/jobs/applications/{id}/status", UpdateJobApplicationStatusHandler(desk))

	req := httptest.NewRequest("PUT", "/api/v1/admin/jobs/applications/app-1/status", strings.NewReader(`{"status":"reviewed"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}
