package store

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user with given username or email already exists")
	ErrNoUserWasFound     = errors.New("no user was found")
	ErrTherapistNotFound  = errors.New("therapist not found")
	ErrSlotUnavailable    = errors.New("requested time slot is not available")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUnknownDriver      = errors.New("unknown database driver")
	ErrConnectionProblems = errors.New("problems connecting to database")
)
