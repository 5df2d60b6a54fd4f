// internal/services/errors.go
package services

import "errors"

var (
	ErrNodeNotFound    = errors.New("network node not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")

	// Supplier-link invariant violations surfaced as validation failures.
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrSupplierRequired = errors.New("non-factory node requires a supplier")
	ErrSupplierCycle    = errors.New("supplier cycle detected")
	ErrUnknownProduct   = errors.New("unknown product id")
	ErrBadReleaseDate   = errors.New("invalid release_date")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// IsValidation reports whether err is a request fault rather than a missing
// resource or an internal failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrSupplierNotFound) ||
		errors.Is(err, ErrSupplierRequired) ||
		errors.Is(err, ErrSupplierCycle) ||
		errors.Is(err, ErrUnknownProduct) ||
		errors.Is(err, ErrBadReleaseDate)
}
