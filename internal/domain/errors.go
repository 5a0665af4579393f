package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Pack errors
	ErrMsgPackNotFound    = "pack not found"
	ErrMsgInvalidPackSpec = "invalid pack specification"

	// Card errors
	ErrMsgCardNotFound   = "card not found"
	ErrMsgInvalidCatalog = "invalid card catalog"
	ErrMsgUnknownRarity  = "unknown rarity"

	// User errors
	ErrMsgInvalidUserID = "invalid user id"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Pack errors
	ErrPackNotFound    = errors.New(ErrMsgPackNotFound)
	ErrInvalidPackSpec = errors.New(ErrMsgInvalidPackSpec)

	// Card errors
	ErrCardNotFound   = errors.New(ErrMsgCardNotFound)
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)
	ErrUnknownRarity  = errors.New(ErrMsgUnknownRarity)

	// User errors
	ErrInvalidUserID = errors.New(ErrMsgInvalidUserID)

	// Database/System errors
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
