package commands

import (
	"context"

	"vaultdiff/internal/application"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/ports"
)

// CompareCommand opens a read-only comparison between two vault files.
// File1 may be preselected by path; when empty the user picks both sides.
type CompareCommand struct {
	repo     ports.VaultRepository
	dialogs  ports.Dialogs
	sessions *application.SessionManager
	view     ports.ViewSurface
	File1    string
}

// NewCompareCommand creates a new CompareCommand
func NewCompareCommand(repo ports.VaultRepository, dialogs ports.Dialogs, sessions *application.SessionManager, view ports.ViewSurface, file1 string) *CompareCommand {
	return &CompareCommand{
		repo:     repo,
		dialogs:  dialogs,
		sessions: sessions,
		view:     view,
		File1:    file1,
	}
}

// Execute runs the compare command. Picker dismissal surfaces as
// domain.ErrCancelled and leaves no view open.
func (c *CompareCommand) Execute(ctx context.Context) error {
	file1, err := selectFile(ctx, c.repo, c.dialogs, c.File1, "Select first file")
	if err != nil {
		return err
	}

	file2, err := c.dialogs.PickFile(ctx, "Select file to compare", file1.Path)
	if err != nil {
		return err
	}

	sess := c.sessions.Open(domain.Comparison{File1: file1, File2: file2})
	return c.view.ShowComparison(ctx, sess)
}

// selectFile resolves a preselected path, or falls back to the picker when
// no path was given.
func selectFile(ctx context.Context, repo ports.VaultRepository, dialogs ports.Dialogs, path, title string) (domain.VaultFile, error) {
	if path != "" {
		return repo.Resolve(path)
	}
	return dialogs.PickFile(ctx, title)
}
