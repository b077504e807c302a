package api

import (
	"summit-insurance/portal/internal/auth"
	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/config"
	"summit-insurance/portal/internal/db"
	"summit-insurance/portal/internal/db/repositories"
	"summit-insurance/portal/internal/logging"
	"summit-insurance/portal/internal/metrics"
	"summit-insurance/portal/internal/services"
	"summit-insurance/portal/internal/storage"
)

type Repositories struct {
	Roles    *repositories.RoleRepository
	Members  *repositories.MemberRepository
	Contacts *repositories.ContactRepository
	Apps     *repositories.JobApplicationRepository
	Stats    *repositories.StatsRepository
}

type Services struct {
	Cache      common.CacheInterface
	Tokens     *auth.TokenManager
	Workflow   *services.SignupWorkflowService
	AdminCheck *services.AdminVerificationService
	Auth       *services.AuthService
	Members    *services.MemberService
	Contact    *services.ContactService
	Jobs       *services.JobApplicationService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(cfg *config.Config) (*Dependencies, error) {

	repos := &Repositories{
		Roles:    repositories.NewRoleRepository(db.DB),
		Members:  repositories.NewMemberRepository(db.DB),
		Contacts: repositories.NewContactRepository(db.DB),
		Apps:     repositories.NewJobApplicationRepository(db.DB),
		Stats:    repositories.NewStatsRepository(db.DB),
	}

	var cache common.CacheInterface
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		cache = redisCache
	} else {
		cache = common.NewCacheService(cfg.AdminCacheTTL, 10*cfg.AdminCacheTTL)
	}

	resumeStore, err := storage.NewDiskStorage(cfg.UploadsDir)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	metricsReg := metrics.NewMetricsRegistry()

	svcs := &Services{
		Cache:      cache,
		Tokens:     tokens,
		Workflow:   services.NewSignupWorkflowService(db.PgDB),
		AdminCheck: services.NewAdminVerificationService(repos.Roles, cache, cfg.AdminCacheTTL),
		Auth:       services.NewAuthService(db.PgDB, tokens),
		Members:    services.NewMemberService(db.PgDB, repos.Members),
		Contact:    services.NewContactService(repos.Contacts),
		Jobs:       services.NewJobApplicationService(repos.Apps, resumeStore, cfg.MaxResumeSize),
	}

	logging.Info("Dependencies initialized", "cache_backend", cfg.CacheBackend, "uploads_dir", cfg.UploadsDir)

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
