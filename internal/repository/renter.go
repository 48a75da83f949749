package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajharit77/rental-catalog/internal/domain"
)

// RenterRepository exposes persistence for renters.
//
// Reads resolve the locations relation eagerly, so callers always get a
// renter with its listings attached.
type RenterRepository interface {
	Crud[domain.Renter, domain.NewRenter, domain.RenterPatch]

	// FindByEmail returns the renter with the exact stored email,
	// or nil when none exists.
	FindByEmail(ctx context.Context, email string) (*domain.Renter, error)

	// FindByType returns all renters of the given type.
	FindByType(ctx context.Context, t domain.RenterType) ([]domain.Renter, error)
}

type renterRepo struct {
	db *pgxpool.Pool
}

// NewRenterRepository constructs a RenterRepository backed by the pgx pool.
func NewRenterRepository(db *pgxpool.Pool) RenterRepository {
	return &renterRepo{db: db}
}

func baseSelectRenter() string {
	return `
        SELECT
            id, name, email, COALESCE(phone, ''), type, COALESCE(address, ''),
            created_at, updated_at
        FROM renters
    `
}

func scanRenter(row pgx.Row) (*domain.Renter, error) {
	var r domain.Renter
	err := row.Scan(
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
	return &r, nil
}

func (r *renterRepo) Create(ctx context.Context, in domain.NewRenter) (*domain.Renter, error) {
	row := r.db.QueryRow(ctx, `
        INSERT INTO renters (name, email, phone, type, address)
        VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''))
        RETURNING id, name, email, COALESCE(phone, ''), type, COALESCE(address, ''),
                  created_at, updated_at
    `,
		in.Name,
		in.Email,
		in.Phone,
		in.Type,
		in.Address,
	)

	created, err := scanRenter(row)
	if err != nil {
		return nil, err
	}
	created.Locations = []domain.Location{}
	return created, nil
}

func (r *renterRepo) FindAll(ctx context.Context) ([]domain.Renter, error) {
	return r.queryRenters(ctx, baseSelectRenter()+" ORDER BY created_at")
}

func (r *renterRepo) FindByID(ctx context.Context, id int64) (*domain.Renter, error) {
	renter, err := scanRenter(r.db.QueryRow(ctx, baseSelectRenter()+" WHERE id=$1", id))
	if err != nil || renter == nil {
		return nil, err
	}
	if err := r.loadLocations(ctx, []*domain.Renter{renter}); err != nil {
		return nil, err
	}
	return renter, nil
}

func (r *renterRepo) FindByEmail(ctx context.Context, email string) (*domain.Renter, error) {
	renter, err := scanRenter(r.db.QueryRow(ctx, baseSelectRenter()+" WHERE email=$1", email))
	if err != nil || renter == nil {
		return nil, err
	}
	if err := r.loadLocations(ctx, []*domain.Renter{renter}); err != nil {
		return nil, err
	}
	return renter, nil
}

func (r *renterRepo) FindByType(ctx context.Context, t domain.RenterType) ([]domain.Renter, error) {
	return r.queryRenters(ctx, baseSelectRenter()+" WHERE type=$1 ORDER BY created_at", t)
}

// Update writes only the non-nil patch fields, building the SET clause
// dynamically. An empty patch degenerates to a plain read.
func (r *renterRepo) Update(ctx context.Context, id int64, patch domain.RenterPatch) (*domain.Renter, error) {
	if patch.IsZero() {
		return r.FindByID(ctx, id)
	}

	var b setBuilder
	if patch.Name != nil {
		b.add("name=$%d", *patch.Name)
	}
	if patch.Email != nil {
		b.add("email=$%d", *patch.Email)
	}
	if patch.Phone != nil {
		b.add("phone=NULLIF($%d, '')", *patch.Phone)
	}
	if patch.Type != nil {
		b.add("type=$%d", *patch.Type)
	}
	if patch.Address != nil {
		b.add("address=NULLIF($%d, '')", *patch.Address)
	}

	sql, args := b.query("renters", id)

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

func (r *renterRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM renters WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *renterRepo) queryRenters(ctx context.Context, sql string, args ...any) ([]domain.Renter, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Renter{}
	for rows.Next() {
		renter, err := scanRenter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *renter)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Renter, len(out))
	for i := range out {
		refs[i] = &out[i]
	}
	if err := r.loadLocations(ctx, refs); err != nil {
		return nil, err
	}
	return out, nil
}

// loadLocations batch-resolves the locations relation for a set of renters,
// one query regardless of how many renters were read.
func (r *renterRepo) loadLocations(ctx context.Context, renters []*domain.Renter) error {
	if len(renters) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(renters))
	byID := make(map[int64]*domain.Renter, len(renters))
	for _, renter := range renters {
		renter.Locations = []domain.Location{}
		ids = append(ids, renter.ID)
		byID[renter.ID] = renter
	}

	rows, err := r.db.Query(ctx, baseSelectLocation()+" WHERE renter_id = ANY($1) ORDER BY created_at", ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return err
		}
		if owner, ok := byID[loc.RenterID]; ok {
			owner.Locations = append(owner.Locations, *loc)
		}
	}
	return rows.Err()
}
