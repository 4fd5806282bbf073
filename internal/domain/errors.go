package domain

import "errors"

// ErrNotFound is returned when a team or player id does not resolve.
// Repositories translate sql.ErrNoRows into this so callers never depend
// on database/sql directly.
var ErrNotFound = errors.New("not found")
