package apperrors

import "errors"

// ErrInvalidAmount indicates that an operation amount is not strictly positive.
var ErrInvalidAmount = errors.New("operation amount must be positive")

// ErrInvalidHolder indicates that an account holder name is empty or whitespace-only.
var ErrInvalidHolder = errors.New("account holder must be a non-empty string")

// ErrInvalidBalance indicates that an opening balance violates the account's lower bound.
var ErrInvalidBalance = errors.New("opening balance below account lower bound")

// ErrInvalidCreditLimit indicates that a credit limit is negative.
var ErrInvalidCreditLimit = errors.New("credit limit must not be negative")

// ErrAccountNotFound indicates that no account is registered under the given ID.
var ErrAccountNotFound = errors.New("account not found")

// ErrNoCreditFacility indicates that a credit-only operation was
// requested on a standard account.
var ErrNoCreditFacility = errors.New("account has no credit facility")
