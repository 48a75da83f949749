package sqlerr

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is the application-side category of a database error.
//
// It is mapped from the SQLSTATE code so the rest of the codebase can switch
// on meaningful names instead of five-character strings.
type Code int

const (
	// Other is any database error we do not specifically classify.
	Other Code = iota

	// UniqueViolation: a row would duplicate a UNIQUE/PRIMARY KEY value. SQLSTATE 23505.
	UniqueViolation

	// ForeignKeyViolation: an insert/update references a missing row, or a
	// delete would orphan referencing rows. SQLSTATE 23503.
	ForeignKeyViolation

	// NotNullViolation: a NOT NULL column received NULL. SQLSTATE 23502.
	NotNullViolation

	// CheckViolation: a CHECK constraint rejected a value. SQLSTATE 23514.
	CheckViolation
)

// Severity mirrors the Postgres error severity field.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// MapCode converts a SQLSTATE string into a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// MapSeverity converts the Postgres severity string into a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityUnknown
	}
}

// Error is the normalized form of a Postgres server error.
//
// It keeps the original driver error (for Unwrap and debugging) next to the
// mapped enums and the schema metadata needed to build friendly messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	Detail         string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr *pgconn.PgError
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e.TableName != "" {
		return fmt.Sprintf("database error on table %s: %s", e.TableName, e.Message)
	}
	return fmt.Sprintf("database error: %s", e.Message)
}

// Unwrap exposes the underlying driver error to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.driverErr
}
