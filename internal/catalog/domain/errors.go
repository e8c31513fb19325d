package domain

import "errors"

// Error taxonomy for the catalog service. Delivery maps these onto HTTP
// status codes with errors.Is; commands wrap them with detail via fmt.Errorf.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrDuplicateReview = errors.New("product already reviewed")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrConflict        = errors.New("concurrent modification")
)
