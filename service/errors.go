package service

import "errors"

// Validation errors are detected before any write and returned as plain
// sentinel values so controllers can map them to responses with errors.Is.
var (
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrSelfReference          = errors.New("counterparty must be a different user")
	ErrNoParticipants         = errors.New("at least one participant is required")
	ErrReconciliationMismatch = errors.New("entered shares do not match the declared total")
	ErrNegativeShare          = errors.New("member share must not be negative")
	ErrCreatorShare           = errors.New("group creator cannot owe into their own pool")
)
