package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// meal is not in the list, including a stale id from an already removed row.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (blank form field, reorder that is not a permutation).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
