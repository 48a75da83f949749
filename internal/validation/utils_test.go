package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rajharit77/rental-catalog/internal/errs"
)

type signupPayload struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,e164"`
	Kind  string `json:"kind" validate:"required,oneof=individual company"`
}

func (p *signupPayload) Validate() error {
	return Struct(p)
}

type flaggedPayload struct {
	Score int `json:"score"`
}

func (p *flaggedPayload) Validate() error {
	if p.Score < 0 {
		return CustomValidationErrors{{Field: "score", Message: "must be at least 0"}}
	}
	return nil
}

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newJSONContext(t, `{"name":"Jane","email":"jane@example.com","kind":"individual"}`)

	var payload signupPayload
	require.NoError(t, BindAndValidate(c, &payload))
	require.Equal(t, "Jane", payload.Name)
	require.Equal(t, "individual", payload.Kind)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newJSONContext(t, `{"name":"J","email":"not-an-email","kind":"llc"}`)

	var payload signupPayload
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "Validation failed", httpErr.Message)

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}
	require.Equal(t, "must be at least 2 characters", byField["name"])
	require.Equal(t, "must be a valid email address", byField["email"])
	require.Equal(t, "must be one of: individual company", byField["kind"])
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newJSONContext(t, `{"name":`)

	var payload signupPayload
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Empty(t, httpErr.Errors)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newJSONContext(t, `{"score":-5}`)

	var payload flaggedPayload
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Len(t, httpErr.Errors, 1)
	require.Equal(t, "score", httpErr.Errors[0].Field)
	require.Equal(t, "must be at least 0", httpErr.Errors[0].Error)
}

func TestBindErrorMessage(t *testing.T) {
	echoErr := echo.NewHTTPError(http.StatusBadRequest, "unmarshal type error")
	require.Equal(t, "unmarshal type error", bindErrorMessage(echoErr))

	require.Equal(t, "invalid request payload", bindErrorMessage(errStatic("boom")))
}

type errStatic string

func (e errStatic) Error() string { return string(e) }
