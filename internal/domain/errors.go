package domain

import "errors"

// ErrNotFound indicates the requested record does not exist. Repositories
// return it for missing products, categories and orders; callers translate it
// into an empty/404 state rather than a failure.
var ErrNotFound = errors.New("not found")
