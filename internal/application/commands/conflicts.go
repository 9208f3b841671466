package commands

import (
	"context"
	"fmt"

	"vaultdiff/internal/application"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/logging"
	"vaultdiff/internal/ports"
)

// FindConflictsCommand pairs sync-conflict files with their originals
// without opening any view.
type FindConflictsCommand struct {
	repo ports.VaultRepository
}

// NewFindConflictsCommand creates a new FindConflictsCommand
func NewFindConflictsCommand(repo ports.VaultRepository) *FindConflictsCommand {
	return &FindConflictsCommand{repo: repo}
}

// Execute returns every conflict pair found in a snapshot of the vault
func (c *FindConflictsCommand) Execute(ctx context.Context) ([]domain.ConflictPair, error) {
	files, err := c.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list vault files: %w", err)
	}
	return domain.MatchConflicts(files), nil
}

// ReviewConflictsCommand walks the user through every sync-conflict pair,
// one merge-enabled comparison at a time. Each view must resolve its
// continue/stop decision before the next pair opens; a stop ends the
// review with the remaining pairs untouched.
type ReviewConflictsCommand struct {
	repo     ports.VaultRepository
	gate     *application.RiskGate
	sessions *application.SessionManager
	view     ports.ViewSurface
	notifier ports.Notifier
	logger   logging.Logger
}

// NewReviewConflictsCommand creates a new ReviewConflictsCommand
func NewReviewConflictsCommand(repo ports.VaultRepository, gate *application.RiskGate, sessions *application.SessionManager, view ports.ViewSurface, notifier ports.Notifier, logger logging.Logger) *ReviewConflictsCommand {
	return &ReviewConflictsCommand{
		repo:     repo,
		gate:     gate,
		sessions: sessions,
		view:     view,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute runs the sequential review. The pair queue is a snapshot taken
// once, after the gate passes; files appearing later are picked up by the
// next invocation.
func (c *ReviewConflictsCommand) Execute(ctx context.Context) error {
	ok, err := c.gate.EnsureAcknowledged(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCancelled
	}

	files, err := c.repo.List()
	if err != nil {
		return fmt.Errorf("failed to list vault files: %w", err)
	}

	pairs := domain.MatchConflicts(files)
	if len(pairs) == 0 {
		c.notifier.Notify("No sync conflicts found")
		return nil
	}

	c.logger.Info(ctx, "starting conflict review", logging.Fields{"pairs": len(pairs)})

	for i, pair := range pairs {
		sess := c.sessions.Open(domain.Comparison{
			File1:     pair.Original,
			File2:     pair.Conflict,
			ShowMerge: true,
		})
		if err := c.view.ShowComparison(ctx, sess); err != nil {
			return err
		}

		cont, err := sess.Decision.Wait(ctx)
		if err != nil {
			return err
		}
		if !cont {
			c.logger.Info(ctx, "conflict review stopped", logging.Fields{
				"reviewed": i + 1,
				"total":    len(pairs),
			})
			return nil
		}
	}

	c.logger.Info(ctx, "conflict review complete", logging.Fields{"total": len(pairs)})
	c.notifier.Notify(fmt.Sprintf("Reviewed %d conflict pair(s)", len(pairs)))
	return nil
}
