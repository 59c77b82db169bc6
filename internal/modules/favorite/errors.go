package favorite

import "errors"

var ErrNotFound = errors.New("listing not found")
