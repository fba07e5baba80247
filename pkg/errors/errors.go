package errors

import "errors"

// ErrEmptyUpdate is returned when an update request carries no fields.
var ErrEmptyUpdate = errors.New("no fields provided for update")
