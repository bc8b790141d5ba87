package locator

import "github.com/proverbs-one/npslocator/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidQuery = domain.ErrInvalidQuery
	ErrValidation   = domain.ErrValidation
	ErrNotFound     = domain.ErrNotFound
)
