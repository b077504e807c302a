package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/models/entities"
)

// JobApplicationRepository persists job applications.
type JobApplicationRepository struct {
	db *sqlx.DB
}

func NewJobApplicationRepository(db *sqlx.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db}
}

func (r *JobApplicationRepository) Insert(ctx context.Context, row *entities.JobApplicationRow) error {
	return r.db.QueryRowxContext(ctx, constants.InsertJobApplication,
		row.ID,
		row.JobTitle,
		row.FullName,
		row.Email,
		row.Phone,
		row.CoverLetter,
		row.ResumeKey,
		row.Status,
	).Scan(&row.CreatedAt)
}

func (r *JobApplicationRepository) List(ctx context.Context) ([]entities.JobApplicationRow, error) {
	var rows []entities.JobApplicationRow
	if err := r.db.SelectContext(ctx, &rows, constants.ListJobApplications); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *JobApplicationRepository) GetByID(ctx context.Context, id string) (*entities.JobApplicationRow, error) {
	var row entities.JobApplicationRow
	err := r.db.GetContext(ctx, &row, constants.GetJobApplicationByID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *JobApplicationRepository) UpdateStatus(ctx context.Context, id string, status constants.ApplicationStatus) error {
	res, err := r.db.ExecContext(ctx, constants.UpdateJobApplicationStatus, id, status)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
