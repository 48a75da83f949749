// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or update data,
// abstracting SQL logic away from the service layer.
//
// Conventions:
//   - Absence is not an error here: FindByID and Update return (nil, nil)
//     when the row does not exist, and Delete returns false. The service
//     layer decides what absence means for the caller.
//   - Constraint violations (unique email, foreign keys, checks) are NOT
//     translated here; the raw pgconn error travels up and is converted at
//     the edge by the sqlerr package.
package repository

import (
	"context"
	"fmt"
	"strings"
)

// Crud is the contract shared by every entity repository.
//
// T is the entity, C the creation payload, and P the partial-update payload.
// Entity-specific lookups (by email, by owner, by type) live on the concrete
// repository interfaces that embed this one.
type Crud[T any, C any, P any] interface {
	// Create inserts a new row and returns the stored entity,
	// including database-assigned fields (ID, timestamps, defaults).
	Create(ctx context.Context, in C) (*T, error)

	// FindAll returns every entity with its relations resolved.
	FindAll(ctx context.Context) ([]T, error)

	// FindByID returns the entity, or nil when no row matches.
	FindByID(ctx context.Context, id int64) (*T, error)

	// Update applies the non-nil fields of the patch and returns the
	// refreshed entity, or nil when no row matches.
	Update(ctx context.Context, id int64, patch P) (*T, error)

	// Delete removes the row and reports whether anything was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}

// setBuilder accumulates SET expressions with positional placeholders for a
// dynamic UPDATE. Each expr must contain a single %d for the placeholder
// number, e.g. "phone=NULLIF($%d, '')".
type setBuilder struct {
	set  []string
	args []any
}

func (b *setBuilder) add(expr string, v any) {
	b.args = append(b.args, v)
	b.set = append(b.set, fmt.Sprintf(expr, len(b.args)))
}

// query assembles the full UPDATE statement, stamping updated_at and
// appending the id as the final argument.
func (b *setBuilder) query(table string, id int64) (string, []any) {
	set := append(b.set, "updated_at=now()")
	args := append(b.args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id=$%d", table, strings.Join(set, ", "), len(args))
	return sql, args
}
