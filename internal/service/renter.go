package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rajharit77/rental-catalog/internal/domain"
	"github.com/rajharit77/rental-catalog/internal/errs"
	"github.com/rajharit77/rental-catalog/internal/lib/job"
	"github.com/rajharit77/rental-catalog/internal/repository"
	"github.com/rajharit77/rental-catalog/internal/server"
)

// RenterService implements renter business rules.
//
// The email-uniqueness fast path lives here: a read-before-write check that
// produces a friendly conflict early. The unique index on renters.email is
// still the authoritative guard; when two creates race, the loser's insert
// fails on the index and is translated at the edge into the same conflict.
type RenterService struct {
	renterRepo repository.RenterRepository
	jobs       *job.JobService
	log        zerolog.Logger
}

// NewRenterService constructs the renter service with its repository
// and the background job client for welcome emails.
func NewRenterService(s *server.Server, repos *repository.Repositories) *RenterService {
	return &RenterService{
		renterRepo: repos.Renter,
		jobs:       s.Job,
		log:        s.Logger.With().Str("service", "renter").Logger(),
	}
}

// Create registers a new renter.
//
// Rejects the email if another renter already has it (exact match, as
// stored), then inserts and enqueues a welcome email. The email is
// best-effort: enqueue failures are logged and never fail the request.
func (s *RenterService) Create(ctx context.Context, in domain.NewRenter) (*domain.Renter, error) {
	existing, err := s.renterRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewEmailConflictError()
	}

	created, err := s.renterRepo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("renter_id", created.ID).
		Str("type", string(created.Type)).
		Msg("renter created")

	s.enqueueWelcomeEmail(created)

	return created, nil
}

// FindAll returns every renter with their listings.
func (s *RenterService) FindAll(ctx context.Context) ([]domain.Renter, error) {
	return s.renterRepo.FindAll(ctx)
}

// FindByID returns the renter or a not-found error.
func (s *RenterService) FindByID(ctx context.Context, id int64) (*domain.Renter, error) {
	renter, err := s.renterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if renter == nil {
		return nil, errs.NewEntityNotFoundError("renter", id)
	}
	return renter, nil
}

// FindByType returns all renters of the given type. An unknown type is not
// an error; it simply matches nothing, since the column can never hold it.
func (s *RenterService) FindByType(ctx context.Context, t domain.RenterType) ([]domain.Renter, error) {
	return s.renterRepo.FindByType(ctx, t)
}

// Update applies a partial update.
//
// The renter must exist, and a changed email must not belong to anyone
// else. Keeping the current email is always allowed, so the conflict check
// only runs when the patched value differs from the stored one.
func (s *RenterService) Update(ctx context.Context, id int64, patch domain.RenterPatch) (*domain.Renter, error) {
	current, err := s.renterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errs.NewEntityNotFoundError("renter", id)
	}

	if patch.Email != nil && *patch.Email != current.Email {
		other, err := s.renterRepo.FindByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, errs.NewEmailConflictError()
		}
	}

	updated, err := s.renterRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Deleted between the existence check and the write.
		return nil, errs.NewEntityNotFoundError("renter", id)
	}

	s.log.Info().Int64("renter_id", id).Msg("renter updated")

	return updated, nil
}

// Delete removes a renter.
//
// No pre-check on listings: the delete goes straight to the database, and
// the RESTRICT foreign key rejects it when locations still reference the
// renter. That violation is translated into a conflict at the edge.
func (s *RenterService) Delete(ctx context.Context, id int64) error {
	existing, err := s.renterRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.NewEntityNotFoundError("renter", id)
	}

	deleted, err := s.renterRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewEntityNotFoundError("renter", id)
	}

	s.log.Info().Int64("renter_id", id).Msg("renter deleted")

	return nil
}

func (s *RenterService) enqueueWelcomeEmail(renter *domain.Renter) {
	if s.jobs == nil || s.jobs.Client == nil {
		return
	}

	task, err := job.NewWelcomeEmailTask(renter.Email, renter.Name)
	if err != nil {
		s.log.Error().Err(err).Int64("renter_id", renter.ID).Msg("failed to build welcome email task")
		return
	}

	if _, err := s.jobs.Client.Enqueue(task); err != nil {
		s.log.Error().Err(err).Int64("renter_id", renter.ID).Msg("failed to enqueue welcome email")
	}
}
