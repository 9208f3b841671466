package commands

import (
	"context"

	"vaultdiff/internal/application"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/ports"
)

// MergeCommand opens a merge-enabled comparison between two vault files.
// The risk gate runs first; declining it aborts the whole command.
type MergeCommand struct {
	repo     ports.VaultRepository
	dialogs  ports.Dialogs
	gate     *application.RiskGate
	sessions *application.SessionManager
	view     ports.ViewSurface
	File1    string
}

// NewMergeCommand creates a new MergeCommand
func NewMergeCommand(repo ports.VaultRepository, dialogs ports.Dialogs, gate *application.RiskGate, sessions *application.SessionManager, view ports.ViewSurface, file1 string) *MergeCommand {
	return &MergeCommand{
		repo:     repo,
		dialogs:  dialogs,
		gate:     gate,
		sessions: sessions,
		view:     view,
		File1:    file1,
	}
}

// Execute runs the merge command
func (c *MergeCommand) Execute(ctx context.Context) error {
	ok, err := c.gate.EnsureAcknowledged(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCancelled
	}

	file1, err := selectFile(ctx, c.repo, c.dialogs, c.File1, "Select first file")
	if err != nil {
		return err
	}

	file2, err := c.dialogs.PickFile(ctx, "Select file to merge", file1.Path)
	if err != nil {
		return err
	}

	sess := c.sessions.Open(domain.Comparison{File1: file1, File2: file2, ShowMerge: true})
	return c.view.ShowComparison(ctx, sess)
}
