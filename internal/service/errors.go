package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNotAcceptingPatients = errors.New("therapist is not accepting new patients")
	ErrUnknownRecipientType = errors.New("unknown recipient type")
)

// Client-side business errors, produced by translating adapter transport
// errors into the vocabulary the screens render.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrRegisterOnServer     = errors.New("registration failed on server")
	ErrResetOnServer        = errors.New("password reset failed on server")
	ErrResourceNotFound     = errors.New("requested resource was not found")
	ErrServerUnavailable    = errors.New("server is unavailable")
	ErrDetectionUnavailable = errors.New("detection service is unavailable")
)
