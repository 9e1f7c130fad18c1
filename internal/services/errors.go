package services

import (
	"errors"
	"fmt"
)

// Error families: handlers branch on these with errors.Is and map them to
// HTTP statuses (400, 404, 401).
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrEmptyTitle           = fmt.Errorf("%w: title is required", ErrValidation)
	ErrMissingScheduledDate = fmt.Errorf("%w: one-time task needs a date", ErrValidation)
	ErrInvalidDate          = fmt.Errorf("%w: invalid date", ErrValidation)
	ErrEmptyReorder         = fmt.Errorf("%w: no task ids provided", ErrValidation)
	ErrPasswordTooShort     = fmt.Errorf("%w: password too short", ErrValidation)

	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	ErrAccountExists      = fmt.Errorf("%w: account already exists", ErrValidation)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
)
