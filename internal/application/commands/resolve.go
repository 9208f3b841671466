package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vaultdiff/internal/application"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/logging"
	"vaultdiff/internal/ports"
)

// ResolveResult contains the result of a resolution action
type ResolveResult struct {
	Action  domain.ReviewAction
	Message string
}

// ResolveCommand applies a resolution action to a compared file pair:
// adopting one side's content into the other, or deleting the conflict
// copy. Every applied action is recorded in the review history.
type ResolveCommand struct {
	repo    ports.VaultRepository
	writer  ports.VaultWriter
	history ports.ReviewLog
	logger  logging.Logger
	File1   string
	File2   string
	Action  domain.ReviewAction
}

// NewResolveCommand creates a new ResolveCommand
func NewResolveCommand(repo ports.VaultRepository, writer ports.VaultWriter, history ports.ReviewLog, logger logging.Logger, file1, file2 string, action domain.ReviewAction) *ResolveCommand {
	return &ResolveCommand{
		repo:    repo,
		writer:  writer,
		history: history,
		logger:  logger,
		File1:   file1,
		File2:   file2,
		Action:  action,
	}
}

// Validate checks if the resolution is valid
func (c *ResolveCommand) Validate() error {
	if err := application.ValidateRequired("file1", c.File1); err != nil {
		return err
	}
	if err := application.ValidateRequired("file2", c.File2); err != nil {
		return err
	}
	return application.ValidateAction(c.Action)
}

// Execute applies the action and records it
func (c *ResolveCommand) Execute(ctx context.Context) (*ResolveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var message string
	switch c.Action {
	case domain.ActionTakeFile1:
		content, err := c.repo.Read(c.File1)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", c.File1, err)
		}
		if err := c.writer.Write(c.File2, content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", c.File2, err)
		}
		message = fmt.Sprintf("Adopted %s into %s", c.File1, c.File2)

	case domain.ActionTakeFile2:
		content, err := c.repo.Read(c.File2)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", c.File2, err)
		}
		if err := c.writer.Write(c.File1, content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", c.File1, err)
		}
		message = fmt.Sprintf("Adopted %s into %s", c.File2, c.File1)

	case domain.ActionDeleteConflict:
		if err := c.writer.Remove(c.File2); err != nil {
			return nil, fmt.Errorf("failed to delete %s: %w", c.File2, err)
		}
		message = fmt.Sprintf("Deleted %s", c.File2)
	}

	record := domain.ReviewRecord{
		ID:         uuid.NewString(),
		File1:      c.File1,
		File2:      c.File2,
		Action:     c.Action,
		RecordedAt: time.Now().UTC(),
	}
	if err := c.history.Append(record); err != nil {
		c.logger.Warn(ctx, "could not record resolution", logging.Fields{
			"action": string(c.Action),
			"error":  err.Error(),
		})
	}

	return &ResolveResult{Action: c.Action, Message: message}, nil
}
