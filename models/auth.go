package models

// LoginRequest is the payload of POST /loginUser. RememberMe asks the server
// to issue a session without an expiry.
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// RegisterRequest is the payload of POST /registerUser.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest is the payload of POST /reset-password.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordConfirmRequest is the payload of POST /reset-password/confirm.
// Token is the reset token delivered out of band by the reset-password flow.
type ResetPasswordConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
