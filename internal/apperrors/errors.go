package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates that a withdrawal would take an account balance below zero.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrConflict indicates a uniqueness race that persisted after the engine's
// own retries were exhausted.
var ErrConflict = errors.New("conflicting update")

// ErrInternal indicates an unanticipated failure in the service or storage layer.
var ErrInternal = errors.New("internal error")
