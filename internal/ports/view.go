package ports

import (
	"context"

	"vaultdiff/internal/domain"
)

// ViewSurface creates and focuses the host's singleton comparison view.
// Showing a session unconditionally replaces whatever the surface currently
// displays; the session manager owns the replacement bookkeeping.
type ViewSurface interface {
	ShowComparison(ctx context.Context, session *domain.ComparisonSession) error
}
