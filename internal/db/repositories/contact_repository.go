package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/models/entities"
)

// ContactRepository persists contact-form submissions.
type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db}
}

func (r *ContactRepository) Insert(ctx context.Context, row *entities.ContactRow) error {
	return r.db.QueryRowxContext(ctx, constants.InsertContactSubmission,
		row.ID,
		row.Name,
		row.Email,
		row.Phone,
		row.Message,
	).Scan(&row.CreatedAt)
}

func (r *ContactRepository) List(ctx context.Context) ([]entities.ContactRow, error) {
	var rows []entities.ContactRow
	if err := r.db.SelectContext(ctx, &rows, constants.ListContactSubmissions); err != nil {
		return nil, err
	}
	return rows, nil
}
