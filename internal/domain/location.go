package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LocationType is the closed set of rentable item kinds.
// The set is expected to grow; Valid() is the single place to extend.
type LocationType string

const (
	LocationTypeCar   LocationType = "car"
	LocationTypeHouse LocationType = "house"
)

// Valid reports whether t is one of the known location types.
func (t LocationType) Valid() bool {
	switch t {
	case LocationTypeCar, LocationTypeHouse:
		return true
	}
	return false
}

// Location is a rentable item owned by exactly one Renter.
//
// RenterID is set at creation and immutable afterwards; there is no
// move-to-new-owner operation, and LocationPatch deliberately has no RenterID
// field so the repository cannot be asked to change it.
type Location struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Type        LocationType    `json:"type"`
	IsAvailable bool            `json:"is_available"`
	RenterID    int64           `json:"renter_id"`

	// Renter is the resolved owner, populated on reads that load the
	// relation. Nil inside Renter.Locations to avoid a cycle.
	Renter *Renter `json:"renter,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewLocation carries the caller-supplied fields for a location insert.
// IsAvailable is a pointer so an absent value falls back to the column
// default (true) instead of Go's zero value.
type NewLocation struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Type        LocationType
	IsAvailable *bool
	RenterID    int64
}

// LocationPatch is a partial update: only non-nil fields are written.
// The owner cannot be patched.
type LocationPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Type        *LocationType
	IsAvailable *bool
}

// IsZero reports whether the patch carries no fields at all.
func (p LocationPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Type == nil && p.IsAvailable == nil
}
