package routes

import (
	"github.com/go-chi/chi/v5"

	"summit-insurance/portal/internal/api"
	"summit-insurance/portal/internal/config"
	"summit-insurance/portal/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, cfg *config.Config, deps *api.Dependencies) {

	formLimiter := middleware.NewRateLimiter(cfg.FormRatePerSec, cfg.FormRateBurst)

	r.Route("/api/v1", func(v1 chi.Router) {

		// Public routes: the marketing site forms plus the auth surface
		v1.Group(func(public chi.Router) {
			public.Use(formLimiter.Middleware)

			public.Post("/signup-requests", api.SubmitSignupRequestHandler(deps.Services.Workflow, deps.Metrics))
			public.Post("/contact", api.SubmitContactHandler(deps.Services.Contact))
			public.Post("/jobs/applications", api.SubmitJobApplicationHandler(deps.Services.Jobs, cfg.MaxResumeSize))

			public.Post("/auth/signup", api.SignUpHandler(deps.Services.Auth, deps.Metrics))
			public.Post("/auth/login", api.SignInHandler(deps.Services.Auth, deps.Metrics))
		})

		// Verify-admin answers with a verdict, never a 401, so it stays
		// outside the auth middleware and parses the token itself.
		v1.Post("/auth/verify-admin", api.VerifyAdminHandler(deps.Services.Tokens, deps.Services.AdminCheck, deps.Metrics))

		// Authenticated members
		v1.Group(func(member chi.Router) {
			member.Use(middleware.AuthMiddleware(deps.Services.Tokens))

			member.Get("/auth/session", api.SessionHandler(deps.Services.Members))
			member.Get("/members/me", api.GetOwnProfileHandler(deps.Services.Members))
			member.Put("/members/me", api.UpdateOwnProfileHandler(deps.Services.Members))

			// Admin console
			member.Group(func(admin chi.Router) {
				admin.Use(middleware.RequireAdminMiddleware(deps.Services.AdminCheck))

				admin.Get("/admin/signup-requests", api.ListSignupRequestsHandler(deps.Services.Workflow))
				admin.Post("/admin/signup-requests/{id}/approve", api.ApproveSignupRequestHandler(deps.Services.Workflow, deps.Metrics))
				admin.Post("/admin/signup-requests/{id}/reject", api.RejectSignupRequestHandler(deps.Services.Workflow, deps.Metrics))

				admin.Get("/admin/allowlist", api.ListAllowlistHandler(deps.Services.Workflow))
				admin.Post("/admin/allowlist", api.AddAllowlistEntryHandler(deps.Services.Workflow))

				admin.Get("/admin/members", api.ListMembersHandler(deps.Services.Members))
				admin.Post("/admin/members/{id}/reset-password", api.ResetPasswordHandler(deps.Services.Auth, deps.Metrics))

				admin.Get("/admin/contact-submissions", api.ListContactSubmissionsHandler(deps.Services.Contact))

				admin.Get("/admin/jobs/applications", api.ListJobApplicationsHandler(deps.Services.Jobs))
				admin.Get("/admin/jobs/applications/{id}/resume", api.DownloadResumeHandler(deps.Services.Jobs))
				admin.Put("/admin/jobs/applications/{id}/status", api.UpdateJobApplicationStatusHandler(deps.Services.Jobs))
			})
		})
	})
}
