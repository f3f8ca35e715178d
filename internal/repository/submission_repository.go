package repository

import (
	"context"

	"github.com/pathsdata/contact-backend/internal/model"
)

// SubmissionRepository defines the persistence interface for contact
// submissions. Records are write-once; no update or delete path exists.
type SubmissionRepository interface {
	// Save stores a fully populated submission keyed by its ID.
	Save(ctx context.Context, sub *model.Submission) error

	// List returns stored submissions, newest first.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error)
}
