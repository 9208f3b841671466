package commands

import (
	"context"
	"fmt"

	"vaultdiff/internal/domain"
	"vaultdiff/internal/ports"
)

// DefaultHistoryLimit caps history listings when no limit is given.
const DefaultHistoryLimit = 20

// HistoryCommand lists recent resolution actions, newest first
type HistoryCommand struct {
	history ports.ReviewLog
	Limit   int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(history ports.ReviewLog, limit int) *HistoryCommand {
	return &HistoryCommand{history: history, Limit: limit}
}

// Execute returns up to Limit records
func (c *HistoryCommand) Execute(ctx context.Context) ([]domain.ReviewRecord, error) {
	limit := c.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	records, err := c.history.Recent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load review history: %w", err)
	}
	return records, nil
}
