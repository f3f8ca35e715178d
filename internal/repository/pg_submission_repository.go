package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pathsdata/contact-backend/internal/model"
)

// PgSubmissionRepository is the PostgreSQL implementation of
// SubmissionRepository, used when no DynamoDB table is configured.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the
// given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

// Ensure PgSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Save inserts a new contact_submissions row. created_at is stored in its
// fixed textual form so both backends persist the identical record shape.
func (r *PgSubmissionRepository) Save(ctx context.Context, sub *model.Submission) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_submissions
		   (contact_id, name, email, company, interest, interest_label, message, created_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		sub.ID, sub.Name, sub.Email, sub.Company, sub.Interest,
		sub.InterestLabel, sub.Message, sub.CreatedAt, sub.Status,
	)
	return err
}

// List returns submissions ordered newest first, paginated by limit/offset.
func (r *PgSubmissionRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT contact_id, name, email, company, interest, interest_label, message, created_at, status
		 FROM contact_submissions
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.Submission
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Company, &s.Interest,
			&s.InterestLabel, &s.Message, &s.CreatedAt, &s.Status); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
