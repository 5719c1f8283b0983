package validators

import "errors"

// Validation errors carry the exact inline messages the screens render, so
// the TUI shows them verbatim without a mapping layer.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUsernameTooShort   = errors.New("Username must be at least 3 characters")
	ErrInvalidEmail       = errors.New("Please enter a valid email address")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters")
	ErrPasswordsMismatch  = errors.New("Passwords do not match")
	ErrEmptyPassword      = errors.New("Password is required")
	ErrEmptyUsername      = errors.New("Username is required")
	ErrNoDateSelected     = errors.New("Please select a preferred date")
	ErrNoTimeSelected     = errors.New("Please select a preferred time")
	ErrEmptyMessage       = errors.New("Message cannot be empty")
	ErrInvalidRecipient   = errors.New("Recipient is required")
	ErrRatingOutOfRange   = errors.New("Rating must be between 1 and 5")
	ErrInvalidTherapistID = errors.New("Therapist is required")
)
