package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rajharit77/rental-catalog/internal/domain"
	"github.com/rajharit77/rental-catalog/internal/errs"
)

type fakeLocationRepo struct {
	create         func(ctx context.Context, in domain.NewLocation) (*domain.Location, error)
	findAll        func(ctx context.Context) ([]domain.Location, error)
	findByID       func(ctx context.Context, id int64) (*domain.Location, error)
	update         func(ctx context.Context, id int64, patch domain.LocationPatch) (*domain.Location, error)
	delete         func(ctx context.Context, id int64) (bool, error)
	findByRenterID func(ctx context.Context, renterID int64) ([]domain.Location, error)
	findByType     func(ctx context.Context, t domain.LocationType) ([]domain.Location, error)
}

func (f *fakeLocationRepo) Create(ctx context.Context, in domain.NewLocation) (*domain.Location, error) {
	return f.create(ctx, in)
}

func (f *fakeLocationRepo) FindAll(ctx context.Context) ([]domain.Location, error) {
	return f.findAll(ctx)
}

func (f *fakeLocationRepo) FindByID(ctx context.Context, id int64) (*domain.Location, error) {
	return f.findByID(ctx, id)
}

func (f *fakeLocationRepo) Update(ctx context.Context, id int64, patch domain.LocationPatch) (*domain.Location, error) {
	return f.update(ctx, id, patch)
}

func (f *fakeLocationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return f.delete(ctx, id)
}

func (f *fakeLocationRepo) FindByRenterID(ctx context.Context, renterID int64) ([]domain.Location, error) {
	return f.findByRenterID(ctx, renterID)
}

func (f *fakeLocationRepo) FindByType(ctx context.Context, t domain.LocationType) ([]domain.Location, error) {
	return f.findByType(ctx, t)
}

func newLocationService(repo *fakeLocationRepo) *LocationService {
	return &LocationService{locationRepo: repo, log: zerolog.Nop()}
}

func TestLocationServiceCreate(t *testing.T) {
	ctx := context.Background()

	repo := &fakeLocationRepo{
		create: func(ctx context.Context, in domain.NewLocation) (*domain.Location, error) {
			return &domain.Location{
				ID:          10,
				Name:        in.Name,
				Price:       in.Price,
				Type:        in.Type,
				IsAvailable: true,
				RenterID:    in.RenterID,
			}, nil
		},
	}
	svc := newLocationService(repo)

	created, err := svc.Create(ctx, domain.NewLocation{
		Name:     "Beach House",
		Price:    decimal.NewFromInt(250),
		Type:     domain.LocationTypeHouse,
		RenterID: 1,
	})

	require.NoError(t, err)
	require.Equal(t, int64(10), created.ID)
	require.Equal(t, int64(1), created.RenterID)
	require.True(t, created.IsAvailable)
}

func TestLocationServiceFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		repo := &fakeLocationRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Location, error) {
				return nil, nil
			},
		}
		svc := newLocationService(repo)

		_, err := svc.FindByID(ctx, 123)
		requireHTTPError(t, err, 404, errs.CodeLocationNotFound)
	})

	t.Run("returns the location when it exists", func(t *testing.T) {
		repo := &fakeLocationRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Location, error) {
				return &domain.Location{ID: id, Name: "City Car"}, nil
			},
		}
		svc := newLocationService(repo)

		location, err := svc.FindByID(ctx, 4)
		require.NoError(t, err)
		require.Equal(t, "City Car", location.Name)
	})
}

func TestLocationServiceFindByType(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an unknown type without touching the repository", func(t *testing.T) {
		queried := false
		repo := &fakeLocationRepo{
			findByType: func(ctx context.Context, lt domain.LocationType) ([]domain.Location, error) {
				queried = true
				return nil, nil
			},
		}
		svc := newLocationService(repo)

		_, err := svc.FindByType(ctx, domain.LocationType("boat"))
		requireHTTPError(t, err, 400, errs.CodeInvalidLocationType)
		require.False(t, queried)
	})

	t.Run("queries for a known type", func(t *testing.T) {
		repo := &fakeLocationRepo{
			findByType: func(ctx context.Context, lt domain.LocationType) ([]domain.Location, error) {
				return []domain.Location{{ID: 1, Type: lt}}, nil
			},
		}
		svc := newLocationService(repo)

		locations, err := svc.FindByType(ctx, domain.LocationTypeCar)
		require.NoError(t, err)
		require.Len(t, locations, 1)
		require.Equal(t, domain.LocationTypeCar, locations[0].Type)
	})
}

func TestLocationServiceFindByRenterID(t *testing.T) {
	// An unknown renter is not an error here; the filter just matches nothing.
	repo := &fakeLocationRepo{
		findByRenterID: func(ctx context.Context, renterID int64) ([]domain.Location, error) {
			return []domain.Location{}, nil
		},
	}
	svc := newLocationService(repo)

	locations, err := svc.FindByRenterID(context.Background(), 9999)
	require.NoError(t, err)
	require.Empty(t, locations)
}

func TestLocationServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		repo := &fakeLocationRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Location, error) {
				return nil, nil
			},
		}
		svc := newLocationService(repo)

		name := "Renamed"
		_, err := svc.Update(ctx, 77, domain.LocationPatch{Name: &name})
		requireHTTPError(t, err, 404, errs.CodeLocationNotFound)
	})

	t.Run("applies the patch to an existing location", func(t *testing.T) {
		repo := &fakeLocationRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Location, error) {
				return &domain.Location{ID: id, Name: "Old"}, nil
			},
			update: func(ctx context.Context, id int64, patch domain.LocationPatch) (*domain.Location, error) {
				return &domain.Location{ID: id, Name: *patch.Name}, nil
			},
		}
		svc := newLocationService(repo)

		name := "New"
		updated, err := svc.Update(ctx, 2, domain.LocationPatch{Name: &name})
		require.NoError(t, err)
		require.Equal(t, "New", updated.Name)
	})
}

func TestLocationServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		repo := &fakeLocationRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Location, error) {
				return nil, nil
			},
		}
		svc := newLocationService(repo)

		err := svc.Delete(ctx, 55)
		requireHTTPError(t, err, 404, errs.CodeLocationNotFound)
	})

	t.Run("deletes an existing location", func(t *testing.T) {
		repo := &fakeLocationRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Location, error) {
				return &domain.Location{ID: id}, nil
			},
			delete: func(ctx context.Context, id int64) (bool, error) {
				return true, nil
			},
		}
		svc := newLocationService(repo)

		require.NoError(t, svc.Delete(ctx, 3))
	})
}
