package models

import (
	"regexp"
	"strings"
)

// AddToCartRequest represents the data needed to add tickets to a cart
type AddToCartRequest struct {
	ConcertID  int        `json:"concert_id"`
	TicketType TicketType `json:"ticket_type"`
	Quantity   int        `json:"quantity"`
}

// Validate validates the add-to-cart data
func (req *AddToCartRequest) Validate() error {
	if req.ConcertID <= 0 {
		return NewValidationError("concert_id", "concert is required")
	}

	if err := validateTicketType(req.TicketType); err != nil {
		return NewValidationError("ticket_type", err.Error())
	}

	if err := ValidateQuantity(req.Quantity); err != nil {
		return NewValidationError("quantity", err.Error())
	}

	return nil
}

// UpdateCartItemRequest represents a cart line quantity change
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Validate validates the quantity change
func (req *UpdateCartItemRequest) Validate() error {
	if err := ValidateQuantity(req.Quantity); err != nil {
		return NewValidationError("quantity", err.Error())
	}
	return nil
}

// Postal codes are 5 digits in the source locale (Malaysia)
var postalCodeRegex = regexp.MustCompile(`^\d{5}$`)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\s-]{6,18}$`)

// CheckoutRequest carries the customer and billing fields collected at
// checkout. All fields are required; they are snapshotted onto the order.
type CheckoutRequest struct {
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone"`
	BillingAddress string `json:"billing_address"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postal_code"`
	PaymentMethod  string `json:"payment_method"`
}

// Validate validates the checkout data
func (req *CheckoutRequest) Validate() error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return NewValidationError("customer_name", "customer name is required")
	}

	if len(req.CustomerName) > 200 {
		return NewValidationError("customer_name", "customer name must be less than 200 characters")
	}

	if err := ValidateEmail(req.CustomerEmail); err != nil {
		return NewValidationError("customer_email", err.Error())
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return NewValidationError("customer_phone", "customer phone is required")
	}

	if !phoneRegex.MatchString(req.CustomerPhone) {
		return NewValidationError("customer_phone", "customer phone format is invalid")
	}

	if strings.TrimSpace(req.BillingAddress) == "" {
		return NewValidationError("billing_address", "billing address is required")
	}

	if strings.TrimSpace(req.City) == "" {
		return NewValidationError("city", "city is required")
	}

	if strings.TrimSpace(req.State) == "" {
		return NewValidationError("state", "state is required")
	}

	if !postalCodeRegex.MatchString(req.PostalCode) {
		return NewValidationError("postal_code", "postal code must be 5 digits")
	}

	if strings.TrimSpace(req.PaymentMethod) == "" {
		return NewValidationError("payment_method", "payment method is required")
	}

	return nil
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates login credentials
func (req *LoginRequest) Validate() error {
	if err := ValidateEmail(req.Email); err != nil {
		return NewValidationError("email", err.Error())
	}

	if req.Password == "" {
		return NewValidationError("password", "password is required")
	}

	return nil
}
