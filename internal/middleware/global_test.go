package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rajharit77/rental-catalog/internal/errs"
)

func runErrorHandler(t *testing.T, err error) (int, errs.HTTPError) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/renters/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	global := &GlobalMiddlewares{}
	global.GlobalErrorHandler(err, c)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestGlobalErrorHandlerHTTPError(t *testing.T) {
	status, body := runErrorHandler(t, errs.NewEmailConflictError())

	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, errs.CodeRenterEmailConflict, body.Code)
	require.Equal(t, "Renter with this email already exists", body.Message)
}

func TestGlobalErrorHandlerTranslatesDriverErrors(t *testing.T) {
	// A raw constraint violation that escaped the service fast path must
	// come out as the same conflict the fast path produces.
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		TableName:      "renters",
		ConstraintName: "unique_renters_email",
	}

	status, body := runErrorHandler(t, pgErr)

	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, errs.CodeRenterEmailConflict, body.Code)
}

func TestGlobalErrorHandlerUnknownRoute(t *testing.T) {
	status, body := runErrorHandler(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Route not found", body.Message)
}

func TestGlobalErrorHandlerUnknownError(t *testing.T) {
	status, body := runErrorHandler(t, errors.New("dial tcp: connection refused"))

	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
	require.Equal(t, http.StatusText(http.StatusInternalServerError), body.Message)
}
