package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pathsdata/contact-backend/internal/mailer"
	"github.com/pathsdata/contact-backend/internal/model"
	"github.com/pathsdata/contact-backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
// Persistence and notification are capabilities resolved once at
// construction: a nil repo or mailer disables the step.
type contactServiceImpl struct {
	repo    repository.SubmissionRepository
	mailer  mailer.Mailer
	persist bool
	notify  bool
}

// NewContactService creates a ContactService. Pass a nil repo to disable
// persistence and a nil mailer to disable notifications; both steps are
// best-effort optional per the deployment configuration.
func NewContactService(repo repository.SubmissionRepository, m mailer.Mailer) ContactService {
	return &contactServiceImpl{
		repo:    repo,
		mailer:  m,
		persist: repo != nil,
		notify:  m != nil,
	}
}

// Submit populates the record and runs the persist and notify steps in
// sequence. The first failing step aborts and its error propagates to the
// handler's single failure path.
func (s *contactServiceImpl) Submit(ctx context.Context, in SubmissionInput) (*model.Submission, error) {
	sub := &model.Submission{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         in.Email,
		Company:       in.Company,
		Interest:      in.Interest,
		InterestLabel: model.InterestLabel(in.Interest),
		Message:       in.Message,
		CreatedAt:     time.Now().UTC().Format(model.TimestampLayout),
		Status:        model.StatusNew,
	}
	if sub.Company == "" {
		sub.Company = model.CompanyNotProvided
	}
	if sub.Interest == "" {
		sub.Interest = model.InterestNotSpecified
	}

	if s.persist {
		if err := s.repo.Save(ctx, sub); err != nil {
			return nil, fmt.Errorf("saving submission: %w", err)
		}
		slog.Info("submission stored", "contact_id", sub.ID)
	}

	if s.notify {
		email, err := mailer.Render(sub)
		if err != nil {
			return nil, err
		}
		if err := s.mailer.Send(ctx, email); err != nil {
			return nil, fmt.Errorf("notifying admin: %w", err)
		}
		slog.Info("notification sent", "contact_id", sub.ID)
	}

	return sub, nil
}

// List returns stored submissions, newest first. Fails with
// ErrPersistenceDisabled when no store is configured.
func (s *contactServiceImpl) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error) {
	if !s.persist {
		return nil, ErrPersistenceDisabled
	}
	return s.repo.List(ctx, opts)
}
