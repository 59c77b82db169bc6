package repository

import "errors"

// ErrStaleStatus is returned by conditional writes when the row was not in
// the expected status anymore. Callers translate it into their conflict
// error; they must re-read before retrying.
var ErrStaleStatus = errors.New("entity status changed concurrently")
