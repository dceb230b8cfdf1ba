package domain

import "fmt"

// Error kinds mirror the response contract: validation and conflicts are 400,
// missing references 404, ownership violations 403, auth failures 401.
// Controllers match them with errors.As; raw storage errors never reach the
// client.

type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, fields map[string]string) error {
	return &ValidationError{Message: message, Fields: fields}
}

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("integrity constraint violated: %s", e.Detail)
}

func NewConflictError(detail string) error {
	return &ConflictError{Detail: detail}
}

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// Auth diagnostic codes. All map to 401.
const (
	AuthCodeTokenMissing   = "token_missing"
	AuthCodeTokenInvalid   = "token_invalid"
	AuthCodeTokenExpired   = "token_expired"
	AuthCodeBadCredentials = "bad_credentials"
)

type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ErrBadCredentials is returned both for an unknown name and for a failed
// hash check so the two causes are indistinguishable externally.
var ErrBadCredentials = &AuthError{Code: AuthCodeBadCredentials, Message: "bad username or password"}
