package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajharit77/rental-catalog/internal/domain"
)

// LocationRepository exposes persistence for locations.
//
// Reads resolve the owning renter eagerly via a join. Ownership is enforced
// by the schema: inserts with an unknown renter_id fail on the foreign key,
// and there is no way to move a location to another renter.
type LocationRepository interface {
	Crud[domain.Location, domain.NewLocation, domain.LocationPatch]

	// FindByRenterID returns all locations owned by the given renter.
	FindByRenterID(ctx context.Context, renterID int64) ([]domain.Location, error)

	// FindByType returns all locations of the given type.
	FindByType(ctx context.Context, t domain.LocationType) ([]domain.Location, error)
}

type locationRepo struct {
	db *pgxpool.Pool
}

// NewLocationRepository constructs a LocationRepository backed by the pgx pool.
func NewLocationRepository(db *pgxpool.Pool) LocationRepository {
	return &locationRepo{db: db}
}

// baseSelectLocation reads locations without the renter relation.
// Used where the owner is already known (batch-loading a renter's listings).
func baseSelectLocation() string {
	return `
        SELECT
            id, name, COALESCE(description, ''), price, type, is_available,
            renter_id, created_at, updated_at
        FROM locations
    `
}

// baseSelectLocationWithRenter joins the owning renter so location reads
// come back with the relation resolved in one round trip.
func baseSelectLocationWithRenter() string {
	return `
        SELECT
            l.id, l.name, COALESCE(l.description, ''), l.price, l.type,
            l.is_available, l.renter_id, l.created_at, l.updated_at,
            r.id, r.name, r.email, COALESCE(r.phone, ''), r.type,
            COALESCE(r.address, ''), r.created_at, r.updated_at
        FROM locations l
        JOIN renters r ON r.id = l.renter_id
    `
}

func scanLocation(row pgx.Row) (*domain.Location, error) {
	var l domain.Location
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Description,
		&l.Price,
		&l.Type,
		&l.IsAvailable,
		&l.RenterID,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func scanLocationWithRenter(row pgx.Row) (*domain.Location, error) {
	var l domain.Location
	var r domain.Renter
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Description,
		&l.Price,
		&l.Type,
		&l.IsAvailable,
		&l.RenterID,
		&l.CreatedAt,
		&l.UpdatedAt,
		&r.ID,
		&r.Name,
		&r.Email,
		&r.Phone,
		&r.Type,
		&r.Address,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	r.Locations = []domain.Location{}
	l.Renter = &r
	return &l, nil
}

func (r *locationRepo) Create(ctx context.Context, in domain.NewLocation) (*domain.Location, error) {
	// COALESCE lets an absent availability flag fall back to the column
	// default instead of Go's zero value.
	row := r.db.QueryRow(ctx, `
        INSERT INTO locations (name, description, price, type, is_available, renter_id)
        VALUES ($1, NULLIF($2, ''), $3, $4, COALESCE($5::boolean, TRUE), $6)
        RETURNING id
    `,
		in.Name,
		in.Description,
		in.Price,
		in.Type,
		in.IsAvailable,
		in.RenterID,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *locationRepo) FindAll(ctx context.Context) ([]domain.Location, error) {
	return r.queryLocations(ctx, baseSelectLocationWithRenter()+" ORDER BY l.created_at")
}

func (r *locationRepo) FindByID(ctx context.Context, id int64) (*domain.Location, error) {
	return scanLocationWithRenter(r.db.QueryRow(ctx, baseSelectLocationWithRenter()+" WHERE l.id=$1", id))
}

func (r *locationRepo) FindByRenterID(ctx context.Context, renterID int64) ([]domain.Location, error) {
	return r.queryLocations(ctx, baseSelectLocationWithRenter()+" WHERE l.renter_id=$1 ORDER BY l.created_at", renterID)
}

func (r *locationRepo) FindByType(ctx context.Context, t domain.LocationType) ([]domain.Location, error) {
	return r.queryLocations(ctx, baseSelectLocationWithRenter()+" WHERE l.type=$1 ORDER BY l.created_at", t)
}

// Update writes only the non-nil patch fields, building the SET clause
// dynamically. An empty patch degenerates to a plain read.
func (r *locationRepo) Update(ctx context.Context, id int64, patch domain.LocationPatch) (*domain.Location, error) {
	if patch.IsZero() {
		return r.FindByID(ctx, id)
	}

	var b setBuilder
	if patch.Name != nil {
		b.add("name=$%d", *patch.Name)
	}
	if patch.Description != nil {
		b.add("description=NULLIF($%d, '')", *patch.Description)
	}
	if patch.Price != nil {
		b.add("price=$%d", *patch.Price)
	}
	if patch.Type != nil {
		b.add("type=$%d", *patch.Type)
	}
	if patch.IsAvailable != nil {
		b.add("is_available=$%d", *patch.IsAvailable)
	}

	sql, args := b.query("locations", id)

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

func (r *locationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *locationRepo) queryLocations(ctx context.Context, sql string, args ...any) ([]domain.Location, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Location{}
	for rows.Next() {
		loc, err := scanLocationWithRenter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *loc)
	}
	return out, rows.Err()
}
