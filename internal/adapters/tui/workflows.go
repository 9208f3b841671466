package tui

import (
	"context"

	"vaultdiff/internal/adapters/tui/views"
	"vaultdiff/internal/application"
	"vaultdiff/internal/application/commands"
	"vaultdiff/internal/logging"
	"vaultdiff/internal/ports"
)

// Workflows bundles the dependencies of the interactive flows. The app
// runs one flow per goroutine; flows block on the bridge's dialogs and
// on review decisions.
type Workflows struct {
	Repo     ports.VaultRepository
	Writer   ports.VaultWriter
	Gate     *application.RiskGate
	Sessions *application.SessionManager
	History  ports.ReviewLog
	Dialogs  ports.Dialogs
	View     ports.ViewSurface
	Notifier ports.Notifier
	Logger   logging.Logger
	SpecsDir string
}

// Run executes one workflow to completion. file1 preselects the first
// file for compare and merge flows; the picker asks when it is empty.
func (w *Workflows) Run(ctx context.Context, workflow views.Workflow, specIndex int, file1 string) error {
	switch workflow {
	case views.WorkflowCompare:
		return commands.NewCompareCommand(w.Repo, w.Dialogs, w.Sessions, w.View, file1).Execute(ctx)

	case views.WorkflowMerge:
		return commands.NewMergeCommand(w.Repo, w.Dialogs, w.Gate, w.Sessions, w.View, file1).Execute(ctx)

	case views.WorkflowConflicts:
		return commands.NewReviewConflictsCommand(w.Repo, w.Gate, w.Sessions, w.View, w.Notifier, w.Logger).Execute(ctx)

	case views.WorkflowSpec:
		return commands.NewOpenSpecCommand(w.Repo, w.Sessions, w.View, w.Notifier, w.SpecsDir, specIndex).Execute(ctx)
	}

	return nil
}
