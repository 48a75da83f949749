package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRenterTypeValid(t *testing.T) {
	require.True(t, RenterTypeIndividual.Valid())
	require.True(t, RenterTypeCompany.Valid())
	require.False(t, RenterType("llc").Valid())
	require.False(t, RenterType("").Valid())
}

func TestLocationTypeValid(t *testing.T) {
	require.True(t, LocationTypeCar.Valid())
	require.True(t, LocationTypeHouse.Valid())
	require.False(t, LocationType("boat").Valid())
	require.False(t, LocationType("").Valid())
}

func TestRenterPatchIsZero(t *testing.T) {
	require.True(t, RenterPatch{}.IsZero())

	name := "Jane"
	require.False(t, RenterPatch{Name: &name}.IsZero())
}

func TestLocationPatchIsZero(t *testing.T) {
	require.True(t, LocationPatch{}.IsZero())

	available := false
	require.False(t, LocationPatch{IsAvailable: &available}.IsZero())
}

func TestLocationJSONOmitsNilRenter(t *testing.T) {
	// Locations nested under a renter carry no back-reference; the renter
	// key must disappear entirely rather than serialize as null.
	loc := Location{ID: 1, Name: "City Car", Price: decimal.NewFromInt(30), Type: LocationTypeCar}

	raw, err := json.Marshal(loc)
	require.NoError(t, err)
	require.NotContains(t, string(raw), `"renter"`)

	withOwner := loc
	withOwner.Renter = &Renter{ID: 2, Name: "Jane"}
	raw, err = json.Marshal(withOwner)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"renter"`)
}
