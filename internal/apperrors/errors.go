package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// It is also returned when a resource exists but is owned by another user,
// so callers cannot probe for existence.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed a domain invariant check.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPrecondition indicates that an operation was invoked without the data
// its branch requires (e.g. a balance computation missing its price or pockets).
var ErrPrecondition = errors.New("precondition failed")

// ErrAccountType indicates that a type-specific operation was called on an
// account of the wrong type.
var ErrAccountType = errors.New("operation not supported for account type")

// ErrPriceProvider indicates that the remote price provider failed
// (bad symbol, rate limiting, or transport failure).
var ErrPriceProvider = errors.New("price provider error")
