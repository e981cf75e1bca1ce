package service

import "errors"

// ErrMissingOwner is returned when a task operation is called without a
// resolved owner ID. The API layer maps it to 401.
var ErrMissingOwner = errors.New("task owner is required")
