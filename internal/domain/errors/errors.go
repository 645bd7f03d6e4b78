package errors

import "errors"

var (
	ErrAlreadyExists         = errors.New("already exists")
	ErrNotFound              = errors.New("not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrForbidden             = errors.New("forbidden")
	ErrEmptyCart             = errors.New("empty cart")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrProductInactive       = errors.New("product inactive")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrInvalidDeliveryStatus = errors.New("invalid delivery status")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidEmail          = errors.New("invalid email")
)
