// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates an internal store or infrastructure error.
var ErrInternal = errors.New("internal")
