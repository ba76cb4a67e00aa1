package health

import "context"

// CatalogValidator checks that the page content still satisfies table invariants.
type CatalogValidator interface {
	Validate() error
}

// RenderChecker checks that the page renders end to end.
type RenderChecker interface {
	HealthCheck(ctx context.Context) error
}
