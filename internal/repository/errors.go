package repository

import "errors"

// ErrNotFound is returned when a natural-key lookup matches no row. Handlers
// translate it into the documented response for the operation instead of
// letting a nil row reach the store.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique constraint, such
// as creating a second user with an existing email or username.
var ErrDuplicate = errors.New("duplicate")
