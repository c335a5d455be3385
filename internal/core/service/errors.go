package service

import "errors"

var (
	// ErrValidation marks missing or invalid input fields.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks an authenticated but unauthorized actor.
	ErrForbidden = errors.New("forbidden")
	// ErrOutOfStock marks an add-to-cart quantity above the product's stock.
	ErrOutOfStock = errors.New("insufficient stock")
	// ErrEmailTaken marks a registration against an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrBadCredentials marks a failed login. Unknown email and wrong
	// password are deliberately indistinguishable.
	ErrBadCredentials = errors.New("invalid email or password")
)
