// Package store wraps all database access: filtered and paginated
// listing, single-entity lookups, owner-scoped mutations and the
// aggregate statistics queries.
package store

import "errors"

// ErrNotFound is returned when a record does not exist, or when an
// owner-scoped mutation matched zero rows.
var ErrNotFound = errors.New("record not found")
