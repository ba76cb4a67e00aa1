package homepage

import "github.com/kailas-cloud/homepage/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrUnsupportedLocale = domain.ErrUnsupportedLocale
	ErrInvalidTable      = domain.ErrInvalidTable
)
