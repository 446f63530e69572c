package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a zero or negative amount on a ledger operation.
var ErrInvalidAmount = errors.New("amount must be a positive number of credits")

// ErrInsufficientFunds indicates the account balance cannot cover the requested debit.
// Terminal business rule: never retried, surfaced so clients can distinguish
// "top up" from "try again".
var ErrInsufficientFunds = errors.New("insufficient credits")

// ErrConflict indicates a conditional write lost against a concurrent writer.
// Ledger and boost write loops retry on this; it is not surfaced directly.
var ErrConflict = errors.New("concurrent modification detected")

// ErrContention indicates the bounded retry budget for optimistic writes was
// exhausted. Surfaced to callers, safe to retry from the client side.
var ErrContention = errors.New("operation aborted after repeated write conflicts")

// ErrUnauthorized indicates the caller identity header is missing or empty.
var ErrUnauthorized = errors.New("caller identity missing")

// ErrUnavailable indicates the underlying store is unreachable.
var ErrUnavailable = errors.New("storage unavailable")
