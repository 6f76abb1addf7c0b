package services

import "errors"

// Sentinel errors surfaced to controllers, which map them onto HTTP responses
// with errors.Is. Aggregate-level validation errors (invalid quantity,
// insufficient stock, item not found) live in the entity package.
var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotInCart   = errors.New("cart item belongs to a different cart")

	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrPhoneTaken   = errors.New("phone already registered")

	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrBranchNotFound = errors.New("branch not found")

	ErrInvalidProductID = errors.New("product id must match PRD followed by 4 digits")
	ErrNegativeStock    = errors.New("stock quantity cannot be negative")

	// ErrIDConflict is transient: the allocated id raced another insert.
	// Callers retry the whole allocate+insert transaction a bounded number
	// of times before giving up.
	ErrIDConflict = errors.New("id allocation conflict")
	// ErrIDExhausted is permanent: the namespace ran out of digits.
	ErrIDExhausted = errors.New("id namespace exhausted")
)
