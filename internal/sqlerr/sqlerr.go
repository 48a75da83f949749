// Package sqlerr specifically handles database driver errors.
//
// It parses error codes from the Postgres driver and converts them into
// user-friendly application errors (e.g. converting a unique violation on
// renters.email into a 409 Conflict, or a foreign-key violation on
// locations.renter_id into a "referenced renter does not exist" error).
//
// The schema constraints are the authoritative guard for the catalog's
// invariants; this package is what turns their violations into the same
// error kinds the domain services produce on their fast-path checks.
package sqlerr
