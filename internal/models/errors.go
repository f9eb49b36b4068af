package models

import "errors"

var (
	// ErrContentNotFound is returned when no content record is stored under a key
	ErrContentNotFound = errors.New("content record not found")
	// ErrContentInvalid is returned when a stored content record cannot be parsed or validated
	ErrContentInvalid = errors.New("content record invalid")
	// ErrInvalidLibrary is returned when a library kind or mode is not recognized
	ErrInvalidLibrary = errors.New("invalid library kind or mode")
	// ErrSessionNotFound is returned for unknown or evicted library sessions
	ErrSessionNotFound = errors.New("library session not found")
	// ErrInvalidAction is returned when an action does not apply to the current view state
	ErrInvalidAction = errors.New("action not allowed in current state")
	// ErrNoActivePurchase is returned when confirming or cancelling without a pending purchase
	ErrNoActivePurchase = errors.New("no active purchase request")
	// ErrInsufficientCredits is returned when confirming a purchase the user cannot afford
	ErrInsufficientCredits = errors.New("insufficient credits")
	// ErrUnlockFailed is returned when the unlock request could not be delivered
	ErrUnlockFailed = errors.New("unlock request failed")
)
