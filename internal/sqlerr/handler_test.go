package sqlerr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/rajharit77/rental-catalog/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "unique_renters_email"`,
		Detail:         `Key (email)=(jane@example.com) already exists.`,
		TableName:      "renters",
		ConstraintName: "unique_renters_email",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	require.Equal(t, http.StatusConflict, httpErr.Status)
	require.Equal(t, errs.CodeRenterEmailConflict, httpErr.Code)
	require.Equal(t, "A Renter with this email already exists", httpErr.Message)
}

func TestHandleErrorForeignKeyInsert(t *testing.T) {
	// Inserting a location whose renter_id points at no renter. Postgres
	// reports this on the referencing table with an "is not present" detail.
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        `insert or update on table "locations" violates foreign key constraint "locations_renter_id_fkey"`,
		Detail:         `Key (renter_id)=(9) is not present in table "renters".`,
		TableName:      "locations",
		ConstraintName: "locations_renter_id_fkey",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, errs.CodeRenterNotFound, httpErr.Code)
	require.Equal(t, "The referenced renter does not exist", httpErr.Message)
}

func TestHandleErrorForeignKeyRestrictedDelete(t *testing.T) {
	// Deleting a renter that still owns locations. The RESTRICT rule reports
	// this on the referenced table with a "still referenced" detail.
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        `update or delete on table "renters" violates foreign key constraint "locations_renter_id_fkey" on table "locations"`,
		Detail:         `Key (id)=(1) is still referenced from table "locations".`,
		TableName:      "renters",
		ConstraintName: "locations_renter_id_fkey",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	require.Equal(t, http.StatusConflict, httpErr.Status)
	require.Equal(t, errs.CodeRenterHasLocations, httpErr.Code)
	require.Equal(t, "Renter still has locations and cannot be deleted", httpErr.Message)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		Message:    `null value in column "name" of relation "renters" violates not-null constraint`,
		TableName:  "renters",
		ColumnName: "name",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "RENTER_REQUIRED", httpErr.Code)
	require.Equal(t, "The Name is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	require.Equal(t, "name", httpErr.Errors[0].Field)
}

func TestHandleErrorCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23514",
		Message:        `new row for relation "locations" violates check constraint "locations_price_check"`,
		TableName:      "locations",
		ConstraintName: "locations_price_check",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "LOCATION_INVALID", httpErr.Code)
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	require.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleErrorPassesThroughHTTPErrors(t *testing.T) {
	original := errs.NewEmailConflictError()
	require.Same(t, original, HandleError(original).(*errs.HTTPError))
}

func TestHandleErrorUnknownErrorBecomes500(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	require.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Message)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"unique_renters_email", "email"},
		{"renters_email_key", "email"},
		{"renters_email_ukey", "email"},
		{"", ""},
		{"something_else", ""},
	}

	for _, tt := range tests {
		got := extractColumnForUniqueViolation(tt.constraint)
		if got != tt.want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", tt.constraint, got, tt.want)
		}
	}
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	require.Equal(t, UniqueViolation, ErrCode(ConvertPgError(pgErr)))
	require.Equal(t, Other, ErrCode(errors.New("nope")))
}
