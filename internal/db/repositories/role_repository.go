package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"summit-insurance/portal/internal/constants"
)

// RoleRepository reads role assignments. It is consumed only by the
// admin-verification service; nothing else in the codebase queries
// user_roles.
type RoleRepository struct {
	db *sqlx.DB
}

func NewRoleRepository(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db}
}

func (r *RoleRepository) GetRolesByUserID(ctx context.Context, userID string) ([]constants.Role, error) {
	var roles []constants.Role
	if err := r.db.SelectContext(ctx, &roles, constants.GetRolesByUserID, userID); err != nil {
		return nil, err
	}
	return roles, nil
}
