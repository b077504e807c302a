package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/models/entities"
)

// MemberRepository serves the admin members listing: profiles joined
// with their roles in one query.
type MemberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) *MemberRepository {
	return &MemberRepository{db}
}

func (r *MemberRepository) ListMembers(ctx context.Context) ([]entities.MemberRow, error) {
	var rows []entities.MemberRow
	if err := r.db.SelectContext(ctx, &rows, constants.ListMembersWithRoles); err != nil {
		return nil, err
	}
	return rows, nil
}
