package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rajharit77/rental-catalog/internal/domain"
	"github.com/rajharit77/rental-catalog/internal/errs"
	"github.com/rajharit77/rental-catalog/internal/repository"
	"github.com/rajharit77/rental-catalog/internal/server"
)

// LocationService implements location business rules.
//
// Ownership is not re-checked here: creating a location with an unknown
// renter goes straight to the insert, and the foreign key rejects it. The
// violation is translated at the edge into a bad-request naming the renter.
type LocationService struct {
	locationRepo repository.LocationRepository
	log          zerolog.Logger
}

// NewLocationService constructs the location service.
func NewLocationService(s *server.Server, repos *repository.Repositories) *LocationService {
	return &LocationService{
		locationRepo: repos.Location,
		log:          s.Logger.With().Str("service", "location").Logger(),
	}
}

// Create adds a new listing under an existing renter.
func (s *LocationService) Create(ctx context.Context, in domain.NewLocation) (*domain.Location, error) {
	created, err := s.locationRepo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("location_id", created.ID).
		Int64("renter_id", created.RenterID).
		Str("type", string(created.Type)).
		Msg("location created")

	return created, nil
}

// FindAll returns every location with its owner resolved.
func (s *LocationService) FindAll(ctx context.Context) ([]domain.Location, error) {
	return s.locationRepo.FindAll(ctx)
}

// FindByID returns the location or a not-found error.
func (s *LocationService) FindByID(ctx context.Context, id int64) (*domain.Location, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, errs.NewEntityNotFoundError("location", id)
	}
	return location, nil
}

// FindByRenterID returns all listings owned by the given renter.
// An unknown renter simply yields an empty list.
func (s *LocationService) FindByRenterID(ctx context.Context, renterID int64) ([]domain.Location, error) {
	return s.locationRepo.FindByRenterID(ctx, renterID)
}

// FindByType returns all locations of the given type.
//
// Unlike the renter-type filter, the value is validated here: the set of
// location types is expected to grow, and an unknown value is more likely a
// client bug than an empty category.
func (s *LocationService) FindByType(ctx context.Context, t domain.LocationType) ([]domain.Location, error) {
	if !t.Valid() {
		return nil, errs.NewInvalidLocationTypeError(string(t))
	}
	return s.locationRepo.FindByType(ctx, t)
}

// Update applies a partial update. The owner cannot be changed; the patch
// type carries no renter field at all.
func (s *LocationService) Update(ctx context.Context, id int64, patch domain.LocationPatch) (*domain.Location, error) {
	current, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errs.NewEntityNotFoundError("location", id)
	}

	updated, err := s.locationRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Deleted between the existence check and the write.
		return nil, errs.NewEntityNotFoundError("location", id)
	}

	s.log.Info().Int64("location_id", id).Msg("location updated")

	return updated, nil
}

// Delete removes a location. Deleting a location never cascades anywhere.
func (s *LocationService) Delete(ctx context.Context, id int64) error {
	existing, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.NewEntityNotFoundError("location", id)
	}

	deleted, err := s.locationRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewEntityNotFoundError("location", id)
	}

	s.log.Info().Int64("location_id", id).Msg("location deleted")

	return nil
}
