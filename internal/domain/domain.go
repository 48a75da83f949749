// Package domain defines the catalog's core entities and the partial-update
// types the repository layer accepts.
//
// The catalog has two resources:
//   - Renter: a person or company that lists items for rent.
//   - Location: a rentable item (a car, a house) owned by exactly one Renter.
//
// These structs are plain data. Business rules (email uniqueness, existence
// checks, enum validation on filters) live in the service layer; relational
// integrity (a Location always references a live Renter) is enforced by the
// database schema.
package domain
