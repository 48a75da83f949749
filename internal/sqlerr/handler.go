package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rajharit77/rental-catalog/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// If err can be unwrapped into *sqlerr.Error, its Code is returned;
// otherwise Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our
// custom sqlerr.Error, mapping SQLSTATE and severity into enums.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		Detail:         src.Detail,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates consistent application error codes from DB errors.
//
// Output format:
//
//	<DOMAIN>_<ACTION>
//
// Example:
//
//	renters + UniqueViolation => RENTER_ALREADY_EXISTS
//
// DOMAIN comes from the table name (uppercased, trailing 'S' stripped);
// ACTION depends on the violation type. These codes are meant for machines
// (frontend logic, analytics), not humans.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Naive singularization: "RENTERS" -> "RENTER". Good enough for this
	// schema; revisit if a table ever ends in "IES".
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing error message.
//
// This message is intended for clients / UI, not for logs. It uses
// table/column info to phrase messages in a more human way.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		if isRestrictedDelete(sqlErr) {
			// Example: "Renter still has locations and cannot be deleted"
			referencing := referencingTable(sqlErr.Detail)
			if referencing != "" {
				return fmt.Sprintf("%s still has %s and cannot be deleted",
					humanizeText(singularize(sqlErr.TableName)), referencing)
			}
			return fmt.Sprintf("%s is still referenced and cannot be deleted",
				humanizeText(singularize(sqlErr.TableName)))
		}
		// Example: "The referenced renter does not exist"
		return fmt.Sprintf("The referenced %s does not exist", fkEntityName(sqlErr))

	case UniqueViolation:
		// The placeholder "identifier" is replaced by HandleError when the
		// constraint name reveals the column.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// isRestrictedDelete reports whether a foreign-key violation came from
// deleting a row that other rows still reference (ON DELETE RESTRICT), as
// opposed to inserting/updating a reference to a missing row.
//
// Postgres makes the distinction in the error detail:
//
//	insert: `Key (renter_id)=(9) is not present in table "renters".`
//	delete: `Key (id)=(1) is still referenced from table "locations".`
func isRestrictedDelete(sqlErr *Error) bool {
	return strings.Contains(sqlErr.Detail, "still referenced")
}

// referencingTable extracts the referencing table name from a restricted
// delete detail message. Returns "" when the detail is not in the expected
// shape.
var referencingTableRe = regexp.MustCompile(`referenced from table "([^"]+)"`)

func referencingTable(detail string) string {
	matches := referencingTableRe.FindStringSubmatch(detail)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// fkEntityName names the entity a failed reference points at.
//
// An insert violation is reported on the referencing table (locations), so
// the interesting name comes from the FK column ("renter_id" -> "renter")
// rather than the table itself.
func fkEntityName(sqlErr *Error) string {
	if col := fkColumn(sqlErr); col != "" && strings.HasSuffix(col, "_id") {
		return strings.ToLower(humanizeText(strings.TrimSuffix(col, "_id")))
	}
	return strings.ToLower(getEntityName(sqlErr.TableName, sqlErr.ColumnName))
}

// fkColumn extracts the violating column from the error detail or, failing
// that, from the constraint name ("locations_renter_id_fkey" -> "renter_id").
var fkDetailKeyRe = regexp.MustCompile(`Key \(([^)]+)\)=`)

func fkColumn(sqlErr *Error) string {
	if matches := fkDetailKeyRe.FindStringSubmatch(sqlErr.Detail); len(matches) > 1 {
		return matches[1]
	}
	name := strings.TrimSuffix(sqlErr.ConstraintName, "_fkey")
	if sqlErr.TableName != "" {
		name = strings.TrimPrefix(name, sqlErr.TableName+"_")
	}
	return name
}

// getEntityName tries to infer an entity name from table/column data.
//
// Priority rules:
//  1. If the column ends with "_id", use that base name ("renter_id" -> "Renter").
//  2. Otherwise use the table name, singularized if it ends with "s".
//  3. Otherwise fall back to "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		return humanizeText(singularize(tableName))
	}

	return "record"
}

func singularize(name string) string {
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		return name[:len(name)-1]
	}
	return name
}

// humanizeText converts snake_case identifiers into Title Case.
//
// Example:
//
//	"is_available" -> "Is Available"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation tries to infer the column name from a
// unique constraint name.
//
// It supports two conventions:
//
//  1. "unique_<table>_<column>"
//     Example: unique_renters_email -> "email"
//
//  2. "<table>_<column>_(key|ukey)"
//     Example: renters_email_key -> "email"
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	re := regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	matches := re.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an application-level
// error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - If pgconn.PgError: mapped by violation type
//     unique    -> 409 Conflict (duplicate email and friends)
//     fk insert -> 404-coded Bad Request (the referenced renter is missing)
//     fk delete -> 409 Conflict (the renter still owns locations)
//     not null / check -> 400 Bad Request
//   - If ErrNoRows: mapped to a generic not-found
//   - Otherwise: errs.NewInternalServerError
//
// This function is called from the global error handler after a DB call
// fails, so repositories and services can return driver errors untouched.
func HandleError(err error) error {
	// If it's already an HTTPError, don't re-wrap it.
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			if isRestrictedDelete(sqlErr) {
				// Deleting a renter that still owns locations.
				code := errs.CodeRenterHasLocations
				return errs.NewConflictError(userMessage, true, &code)
			}
			// Inserting a location whose renter_id points nowhere. The
			// referenced entity is what's missing, so derive the code from
			// the FK column rather than the violating table.
			if col := fkColumn(sqlErr); strings.HasSuffix(col, "_id") {
				errorCode = strings.ToUpper(strings.TrimSuffix(col, "_id")) + "_NOT_FOUND"
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case UniqueViolation:
			// Try to infer which column caused it and inject into the message.
			columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName)
			if columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", strings.ToLower(humanizeText(columnName)))
			}
			return errs.NewConflictError(userMessage, true, &errorCode)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		case CheckViolation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		default:
			// Unknown/other DB errors should not leak details to clients.
			return errs.NewInternalServerError()
		}
	}

	// "No rows" from a bare QueryRow scan. The repositories translate
	// missing rows into nil results themselves, so reaching this branch
	// means a query skipped that convention.
	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	// Default fallback: treat unknown error as 500.
	return errs.NewInternalServerError()
}
