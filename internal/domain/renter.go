package domain

import (
	"time"
)

// RenterType is the closed set of renter kinds.
type RenterType string

const (
	RenterTypeIndividual RenterType = "individual"
	RenterTypeCompany    RenterType = "company"
)

// Valid reports whether t is one of the known renter types.
func (t RenterType) Valid() bool {
	switch t {
	case RenterTypeIndividual, RenterTypeCompany:
		return true
	}
	return false
}

// Renter is someone (or some company) that lists Locations for rent.
//
// ID and the timestamps are assigned by the database. Email is unique across
// all renters (exact match, as stored); the unique index on renters.email is
// the authoritative guard, the service-layer check only exists to produce a
// friendlier error before the insert is attempted.
type Renter struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Phone   string     `json:"phone,omitempty"`
	Type    RenterType `json:"type"`
	Address string     `json:"address,omitempty"`

	// Locations are the renter's current listings, resolved eagerly on reads.
	// Never stored directly.
	Locations []Location `json:"locations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRenter carries the caller-supplied fields for a renter insert.
// Phone and Address may be empty; they are stored as NULL then.
type NewRenter struct {
	Name    string
	Email   string
	Phone   string
	Type    RenterType
	Address string
}

// RenterPatch is a partial update: only non-nil fields are written.
type RenterPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Type    *RenterType
	Address *string
}

// IsZero reports whether the patch carries no fields at all.
func (p RenterPatch) IsZero() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Type == nil && p.Address == nil
}
