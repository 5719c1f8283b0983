package validators

import (
	"context"
	"regexp"

	"github.com/futuristic/perceptronx/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the login identifier of auth forms.
	FieldUsername = "username"

	// FieldEmail targets the email address of registration and reset forms.
	FieldEmail = "email"

	// FieldPassword targets the password of auth forms.
	FieldPassword = "password"

	// FieldDate targets the preferred date of an appointment form.
	FieldDate = "date"

	// FieldTime targets the preferred time of an appointment form.
	FieldTime = "time"

	// FieldTherapistID targets the recipient therapist of appointment,
	// message and rating forms.
	FieldTherapistID = "therapist_id"

	// FieldContent targets the body of a message form.
	FieldContent = "content"

	// FieldRating targets the score of a rating form.
	FieldRating = "rating"
)

// emailPattern mirrors the permissive address check applied on the forms:
// one @, a non-empty local part and a dotted domain.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FormValidator validates the user-editable request payloads before they
// are handed to the transport layer. A validation failure is resolved
// locally: the request never reaches the network.
type FormValidator struct {
}

func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every user-editable field of the form is validated.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPassword(ctx, value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(ctx, *value, fields...)

	case models.AppointmentRequest:
		return v.validateAppointment(ctx, value, fields...)
	case *models.AppointmentRequest:
		return v.validateAppointment(ctx, *value, fields...)

	case models.MessageRequest:
		return v.validateMessage(ctx, value, fields...)
	case *models.MessageRequest:
		return v.validateMessage(ctx, *value, fields...)

	case models.RatingRequest:
		return v.validateRating(ctx, value, fields...)
	case *models.RatingRequest:
		return v.validateRating(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validateLogin checks the login form. Login accepts any non-empty
// credentials; length rules apply only at registration.
func (v *FormValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if req.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRegister checks the registration form.
//
// Default validated fields (when none specified):
// Username, Email, Password.
func (v *FormValidator) validateRegister(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if len(req.Username) < 3 {
				return ErrUsernameTooShort
			}
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(req.Password) < 6 {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateResetPassword(_ context.Context, req models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAppointment checks the appointment request form. Date and time
// are mandatory; notes and insurance fields are free-form.
func (v *FormValidator) validateAppointment(_ context.Context, req models.AppointmentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTherapistID, FieldDate, FieldTime}
	}

	for _, f := range fields {
		switch f {
		case FieldTherapistID:
			if req.TherapistID <= 0 {
				return ErrInvalidTherapistID
			}
		case FieldDate:
			if req.Date == "" {
				return ErrNoDateSelected
			}
		case FieldTime:
			if req.Time == "" {
				return ErrNoTimeSelected
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateMessage(_ context.Context, req models.MessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTherapistID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTherapistID:
			if req.RecipientID <= 0 {
				return ErrInvalidRecipient
			}
		case FieldContent:
			if req.Content == "" {
				return ErrEmptyMessage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateRating(_ context.Context, req models.RatingRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRating}
	}

	for _, f := range fields {
		switch f {
		case FieldRating:
			if req.Rating < 1 || req.Rating > 5 {
				return ErrRatingOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// PasswordsMatch is the cross-field confirmation check applied by the
// registration screen; confirmation never travels in the request payload,
// so it lives outside the Validator dispatch.
func PasswordsMatch(password, confirmation string) error {
	if password != confirmation {
		return ErrPasswordsMismatch
	}
	return nil
}
