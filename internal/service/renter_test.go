package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rajharit77/rental-catalog/internal/domain"
	"github.com/rajharit77/rental-catalog/internal/errs"
)

// fakeRenterRepo implements repository.RenterRepository with function fields.
// Methods a test does not expect to be hit stay nil and panic loudly.
type fakeRenterRepo struct {
	create      func(ctx context.Context, in domain.NewRenter) (*domain.Renter, error)
	findAll     func(ctx context.Context) ([]domain.Renter, error)
	findByID    func(ctx context.Context, id int64) (*domain.Renter, error)
	update      func(ctx context.Context, id int64, patch domain.RenterPatch) (*domain.Renter, error)
	delete      func(ctx context.Context, id int64) (bool, error)
	findByEmail func(ctx context.Context, email string) (*domain.Renter, error)
	findByType  func(ctx context.Context, t domain.RenterType) ([]domain.Renter, error)
}

func (f *fakeRenterRepo) Create(ctx context.Context, in domain.NewRenter) (*domain.Renter, error) {
	return f.create(ctx, in)
}

func (f *fakeRenterRepo) FindAll(ctx context.Context) ([]domain.Renter, error) {
	return f.findAll(ctx)
}

func (f *fakeRenterRepo) FindByID(ctx context.Context, id int64) (*domain.Renter, error) {
	return f.findByID(ctx, id)
}

func (f *fakeRenterRepo) Update(ctx context.Context, id int64, patch domain.RenterPatch) (*domain.Renter, error) {
	return f.update(ctx, id, patch)
}

func (f *fakeRenterRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return f.delete(ctx, id)
}

func (f *fakeRenterRepo) FindByEmail(ctx context.Context, email string) (*domain.Renter, error) {
	return f.findByEmail(ctx, email)
}

func (f *fakeRenterRepo) FindByType(ctx context.Context, t domain.RenterType) ([]domain.Renter, error) {
	return f.findByType(ctx, t)
}

func newRenterService(repo *fakeRenterRepo) *RenterService {
	return &RenterService{renterRepo: repo, log: zerolog.Nop()}
}

func requireHTTPError(t *testing.T, err error, status int, code string) *errs.HTTPError {
	t.Helper()
	require.Error(t, err)
	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok, "expected *errs.HTTPError, got %T", err)
	require.Equal(t, status, httpErr.Status)
	require.Equal(t, code, httpErr.Code)
	return httpErr
}

func TestRenterServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects duplicate email before inserting", func(t *testing.T) {
		createCalled := false
		repo := &fakeRenterRepo{
			findByEmail: func(ctx context.Context, email string) (*domain.Renter, error) {
				return &domain.Renter{ID: 7, Email: email}, nil
			},
			create: func(ctx context.Context, in domain.NewRenter) (*domain.Renter, error) {
				createCalled = true
				return nil, nil
			},
		}
		svc := newRenterService(repo)

		_, err := svc.Create(ctx, domain.NewRenter{
			Name:  "Jane Moors",
			Email: "jane@example.com",
			Type:  domain.RenterTypeIndividual,
		})

		requireHTTPError(t, err, 409, errs.CodeRenterEmailConflict)
		require.False(t, createCalled, "create must not run after the conflict check fails")
	})

	t.Run("inserts when the email is free", func(t *testing.T) {
		repo := &fakeRenterRepo{
			findByEmail: func(ctx context.Context, email string) (*domain.Renter, error) {
				return nil, nil
			},
			create: func(ctx context.Context, in domain.NewRenter) (*domain.Renter, error) {
				return &domain.Renter{
					ID:        42,
					Name:      in.Name,
					Email:     in.Email,
					Type:      in.Type,
					Locations: []domain.Location{},
				}, nil
			},
		}
		svc := newRenterService(repo)

		created, err := svc.Create(ctx, domain.NewRenter{
			Name:  "Acme Rentals",
			Email: "contact@acme.test",
			Type:  domain.RenterTypeCompany,
		})

		require.NoError(t, err)
		require.Equal(t, int64(42), created.ID)
		require.Equal(t, "contact@acme.test", created.Email)
		require.NotNil(t, created.Locations)
	})
}

func TestRenterServiceFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		repo := &fakeRenterRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Renter, error) {
				return nil, nil
			},
		}
		svc := newRenterService(repo)

		_, err := svc.FindByID(ctx, 999)
		requireHTTPError(t, err, 404, errs.CodeRenterNotFound)
	})

	t.Run("returns the renter when it exists", func(t *testing.T) {
		repo := &fakeRenterRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Renter, error) {
				return &domain.Renter{ID: id, Name: "Jane"}, nil
			},
		}
		svc := newRenterService(repo)

		renter, err := svc.FindByID(ctx, 3)
		require.NoError(t, err)
		require.Equal(t, int64(3), renter.ID)
	})
}

func TestRenterServiceUpdate(t *testing.T) {
	ctx := context.Background()
	email := func(s string) *string { return &s }

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		repo := &fakeRenterRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Renter, error) {
				return nil, nil
			},
		}
		svc := newRenterService(repo)

		_, err := svc.Update(ctx, 5, domain.RenterPatch{Email: email("new@example.com")})
		requireHTTPError(t, err, 404, errs.CodeRenterNotFound)
	})

	t.Run("allows keeping the current email", func(t *testing.T) {
		emailChecked := false
		repo := &fakeRenterRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Renter, error) {
				return &domain.Renter{ID: id, Email: "same@example.com"}, nil
			},
			findByEmail: func(ctx context.Context, email string) (*domain.Renter, error) {
				emailChecked = true
				return &domain.Renter{ID: 1, Email: email}, nil
			},
			update: func(ctx context.Context, id int64, patch domain.RenterPatch) (*domain.Renter, error) {
				return &domain.Renter{ID: id, Email: "same@example.com"}, nil
			},
		}
		svc := newRenterService(repo)

		updated, err := svc.Update(ctx, 1, domain.RenterPatch{Email: email("same@example.com")})
		require.NoError(t, err)
		require.Equal(t, "same@example.com", updated.Email)
		require.False(t, emailChecked, "unchanged email must skip the conflict check")
	})

	t.Run("rejects an email that belongs to another renter", func(t *testing.T) {
		repo := &fakeRenterRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Renter, error) {
				return &domain.Renter{ID: id, Email: "old@example.com"}, nil
			},
			findByEmail: func(ctx context.Context, email string) (*domain.Renter, error) {
				return &domain.Renter{ID: 99, Email: email}, nil
			},
		}
		svc := newRenterService(repo)

		_, err := svc.Update(ctx, 1, domain.RenterPatch{Email: email("taken@example.com")})
		requireHTTPError(t, err, 409, errs.CodeRenterEmailConflict)
	})

	t.Run("maps a write that finds no row to not found", func(t *testing.T) {
		repo := &fakeRenterRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Renter, error) {
				return &domain.Renter{ID: id, Email: "old@example.com"}, nil
			},
			update: func(ctx context.Context, id int64, patch domain.RenterPatch) (*domain.Renter, error) {
				return nil, nil
			},
		}
		svc := newRenterService(repo)

		name := "Renamed"
		_, err := svc.Update(ctx, 1, domain.RenterPatch{Name: &name})
		requireHTTPError(t, err, 404, errs.CodeRenterNotFound)
	})
}

func TestRenterServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		repo := &fakeRenterRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Renter, error) {
				return nil, nil
			},
		}
		svc := newRenterService(repo)

		err := svc.Delete(ctx, 404)
		requireHTTPError(t, err, 404, errs.CodeRenterNotFound)
	})

	t.Run("deletes an existing renter", func(t *testing.T) {
		repo := &fakeRenterRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Renter, error) {
				return &domain.Renter{ID: id}, nil
			},
			delete: func(ctx context.Context, id int64) (bool, error) {
				return true, nil
			},
		}
		svc := newRenterService(repo)

		require.NoError(t, svc.Delete(ctx, 1))
	})

	t.Run("maps a delete that finds no row to not found", func(t *testing.T) {
		repo := &fakeRenterRepo{
			findByID: func(ctx context.Context, id int64) (*domain.Renter, error) {
				return &domain.Renter{ID: id}, nil
			},
			delete: func(ctx context.Context, id int64) (bool, error) {
				return false, nil
			},
		}
		svc := newRenterService(repo)

		err := svc.Delete(ctx, 1)
		requireHTTPError(t, err, 404, errs.CodeRenterNotFound)
	})
}
