package service

import (
	"context"
	"errors"

	"github.com/pathsdata/contact-backend/internal/model"
)

// ErrPersistenceDisabled is returned by List when no submission store is
// configured. Submit never returns it: an unconfigured store silently
// disables the persist step.
var ErrPersistenceDisabled = errors.New("submission store not configured")

// SubmissionInput carries the already-trimmed form fields from the handler.
type SubmissionInput struct {
	Name     string
	Email    string
	Company  string
	Interest string
	Message  string
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit builds the full record from the input (id, sentinels, interest
	// label, timestamp, status), persists it if a store is configured, and
	// sends the admin notification if a mailer is configured. Persist and
	// notify run in that order and are not transactional: a failed send
	// does not roll back the stored record.
	Submit(ctx context.Context, in SubmissionInput) (*model.Submission, error)

	// List returns stored submissions, newest first.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error)
}
