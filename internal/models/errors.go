package models

import "errors"

// Common errors used throughout the application
var (
	ErrConcertNotFound       = errors.New("concert not found")
	ErrVenueNotFound         = errors.New("venue not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrCartItemNotFound      = errors.New("cart item not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrInsufficientInventory = errors.New("insufficient tickets available")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrPaymentFailed         = errors.New("payment processing failed")
	ErrUnauthorized          = errors.New("unauthorized access")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidInput          = errors.New("invalid input")
	ErrDuplicateEntry        = errors.New("duplicate entry")
)

// ValidationError carries a user-facing message for malformed request fields.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error for a specific field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is a field validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
