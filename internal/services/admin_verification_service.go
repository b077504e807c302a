package services

import (
	"context"
	"time"

	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/logging"
)

// RoleStore reads role assignments. Only the verification service may
// consult it; ordinary request handling never touches roles directly.
type RoleStore interface {
	GetRolesByUserID(ctx context.Context, userID string) ([]constants.Role, error)
}

// AdminVerificationService is the single trusted source for "is this
// caller an admin?". Every failure mode resolves to false: no caller
// identity, a role-store error, or a missing role all deny. Verdicts
// are cached briefly to keep the role store off the hot path.
type AdminVerificationService struct {
	roles RoleStore
	cache common.CacheInterface
	ttl   time.Duration
}

func NewAdminVerificationService(roles RoleStore, cache common.CacheInterface, ttl time.Duration) *AdminVerificationService {
	return &AdminVerificationService{roles: roles, cache: cache, ttl: ttl}
}

// VerifyAdmin answers whether the user holds the admin role. It never
// returns an error: anything short of a confirmed admin role is false.
func (svc *AdminVerificationService) VerifyAdmin(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}

	key := "admin_verify:" + userID
	verdict, err := svc.cache.GetOrSet(key, svc.ttl, func() (any, error) {
		roles, err := svc.roles.GetRolesByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, role := range roles {
			if role == constants.RoleAdmin {
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		// Fail closed. GetOrSet does not cache loader errors, so a
		// transient store outage does not pin a false verdict for
		// the TTL.
		logging.Warn("admin verification failed, denying",
			"user_id", userID,
			"error", err.Error(),
		)
		return false
	}

	isAdmin, ok := verdict.(bool)
	return ok && isAdmin
}
