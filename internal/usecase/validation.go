package usecase

import "regexp"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail reports whether the value looks like a deliverable address.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateQuantity reports whether a cart/item quantity is acceptable.
func ValidateQuantity(quantity int) bool {
	return quantity > 0
}

// ValidateAmountCents reports whether a monetary amount is acceptable.
func ValidateAmountCents(amount int64) bool {
	return amount > 0
}
