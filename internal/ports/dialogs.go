package ports

import (
	"context"

	"vaultdiff/internal/domain"
)

// Dialogs are the host's modal prompts. Both calls block until the user
// answers or ctx is cancelled.
type Dialogs interface {
	// PickFile asks the user to choose a vault file. Dismissal yields
	// domain.ErrCancelled. Paths listed in exclude are hidden from the
	// picker.
	PickFile(ctx context.Context, title string, exclude ...string) (domain.VaultFile, error)

	// ConfirmMergeRisk shows the merge risk warning and reports whether
	// the user accepted it. Dismissal is a refusal, not an error.
	ConfirmMergeRisk(ctx context.Context) (bool, error)
}
