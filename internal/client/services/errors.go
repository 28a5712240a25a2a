package services

import "github.com/dmitrijs2005/interviewdesk/internal/common"

// AuthError is a failed auth operation. Kind is one of the common sentinel
// errors so callers can branch with errors.Is; Message is shown to the user.
type AuthError struct {
	Kind    error
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Kind }

var (
	ErrAccountNotFound   = &AuthError{Kind: common.ErrorNotFound, Message: "No account found with this email"}
	ErrIncorrectPassword = &AuthError{Kind: common.ErrorUnauthorized, Message: "Incorrect password"}
	ErrEmailTaken        = &AuthError{Kind: common.ErrorConflict, Message: "An account with this email already exists"}
	ErrPasswordTooShort  = &AuthError{Kind: common.ErrorInvalidInput, Message: "Password must be at least 6 characters"}
)

func internalError(msg string, err error) *AuthError {
	return &AuthError{Kind: common.ErrorInternal, Message: msg + ": " + err.Error()}
}
