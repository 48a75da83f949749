package errs

import "fmt"

// Stable error codes for the catalog resources. sqlerr generates matching
// codes from table names when a constraint violation reaches the database,
// so the client sees the same code whether the domain layer or the schema
// caught the problem.
const (
	CodeRenterNotFound      = "RENTER_NOT_FOUND"
	CodeLocationNotFound    = "LOCATION_NOT_FOUND"
	CodeRenterEmailConflict = "RENTER_ALREADY_EXISTS"
	CodeRenterHasLocations  = "RENTER_STILL_REFERENCED"
	CodeInvalidLocationType = "INVALID_LOCATION_TYPE"
)

// NewEntityNotFoundError creates the standard "no such Renter/Location"
// error: 404 with a `<KIND>_NOT_FOUND` code.
func NewEntityNotFoundError(kind string, id int64) *HTTPError {
	code := MakeUpperCaseWithUnderscores(kind) + "_NOT_FOUND"
	return NewNotFoundError(fmt.Sprintf("%s with ID %d not found", kind, id), true, &code)
}

// NewEmailConflictError creates the duplicate-renter-email conflict error.
func NewEmailConflictError() *HTTPError {
	code := CodeRenterEmailConflict
	return NewConflictError("Renter with this email already exists", true, &code)
}

// NewInvalidLocationTypeError creates the invalid-enum error for the
// location type filter.
func NewInvalidLocationTypeError(value string) *HTTPError {
	code := CodeInvalidLocationType
	return NewBadRequestError(fmt.Sprintf("Invalid location type: %s", value), true, &code, nil, nil)
}
