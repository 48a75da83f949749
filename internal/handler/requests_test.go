package handler

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rajharit77/rental-catalog/internal/validation"
)

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)

	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok, "expected validator.ValidationErrors, got %T", err)

	for _, fe := range verrs {
		if fe.Field() == field {
			return
		}
	}
	t.Fatalf("no validation error for field %q in %v", field, err)
}

func TestCreateRenterRequestValidate(t *testing.T) {
	valid := CreateRenterRequest{
		Name:  "Jane Moors",
		Email: "jane@example.com",
		Phone: "+33612345678",
		Type:  "individual",
	}
	require.NoError(t, valid.Validate())

	t.Run("rejects a missing name", func(t *testing.T) {
		r := valid
		r.Name = ""
		requireFieldError(t, r.Validate(), "Name")
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		r := valid
		r.Email = "not-an-email"
		requireFieldError(t, r.Validate(), "Email")
	})

	t.Run("rejects a phone without country code", func(t *testing.T) {
		r := valid
		r.Phone = "0612345678"
		requireFieldError(t, r.Validate(), "Phone")
	})

	t.Run("rejects an unknown renter type", func(t *testing.T) {
		r := valid
		r.Type = "llc"
		requireFieldError(t, r.Validate(), "Type")
	})

	t.Run("allows empty phone and address", func(t *testing.T) {
		r := valid
		r.Phone = ""
		r.Address = ""
		require.NoError(t, r.Validate())
	})
}

func TestUpdateRenterRequestValidate(t *testing.T) {
	t.Run("allows a patch with no fields", func(t *testing.T) {
		r := UpdateRenterRequest{ID: 1}
		require.NoError(t, r.Validate())
	})

	t.Run("rejects a present but invalid email", func(t *testing.T) {
		email := "nope"
		r := UpdateRenterRequest{ID: 1, Email: &email}
		requireFieldError(t, r.Validate(), "Email")
	})

	t.Run("rejects a missing id", func(t *testing.T) {
		r := UpdateRenterRequest{}
		requireFieldError(t, r.Validate(), "ID")
	})
}

func TestListRentersByTypeRequestValidate(t *testing.T) {
	require.NoError(t, (&ListRentersByTypeRequest{Type: "company"}).Validate())
	requireFieldError(t, (&ListRentersByTypeRequest{Type: "robot"}).Validate(), "Type")
}

func TestCreateLocationRequestValidate(t *testing.T) {
	valid := CreateLocationRequest{
		Name:     "Beach House",
		Price:    decimal.NewFromInt(100),
		Type:     "house",
		RenterID: 1,
	}
	require.NoError(t, valid.Validate())

	t.Run("rejects a negative price", func(t *testing.T) {
		r := valid
		r.Price = decimal.NewFromInt(-1)

		err := r.Validate()
		cerrs, ok := err.(validation.CustomValidationErrors)
		require.True(t, ok, "expected CustomValidationErrors, got %T", err)
		require.Len(t, cerrs, 1)
		require.Equal(t, "price", cerrs[0].Field)
	})

	t.Run("allows a zero price", func(t *testing.T) {
		r := valid
		r.Price = decimal.Zero
		require.NoError(t, r.Validate())
	})

	t.Run("rejects an unknown location type", func(t *testing.T) {
		r := valid
		r.Type = "boat"
		requireFieldError(t, r.Validate(), "Type")
	})

	t.Run("rejects a missing renter id", func(t *testing.T) {
		r := valid
		r.RenterID = 0
		requireFieldError(t, r.Validate(), "RenterID")
	})
}

func TestUpdateLocationRequestValidate(t *testing.T) {
	t.Run("rejects a present but negative price", func(t *testing.T) {
		price := decimal.NewFromInt(-10)
		r := UpdateLocationRequest{ID: 1, Price: &price}

		err := r.Validate()
		var cerrs validation.CustomValidationErrors
		require.ErrorAs(t, err, &cerrs)
		require.Equal(t, "price", cerrs[0].Field)
	})

	t.Run("allows a patch with no fields", func(t *testing.T) {
		r := UpdateLocationRequest{ID: 1}
		require.NoError(t, r.Validate())
	})
}

func TestListLocationsByTypeRequestValidate(t *testing.T) {
	// Unknown values pass the boundary; the service owns the type set.
	require.NoError(t, (&ListLocationsByTypeRequest{Type: "boat"}).Validate())
	requireFieldError(t, (&ListLocationsByTypeRequest{}).Validate(), "Type")
}
