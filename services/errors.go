package services

import "errors"

// ErrForbidden is returned when an account acts on a record it does not own.
var ErrForbidden = errors.New("record belongs to another account")
