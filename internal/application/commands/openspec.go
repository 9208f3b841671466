package commands

import (
	"context"
	"fmt"
	"path"

	"vaultdiff/internal/application"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/ports"
)

// OpenSpecCommand resolves one numbered diff spec into a file pair and
// opens a read-only comparison for it. Each resolution step fails with a
// distinct, user-visible message; no view opens on any failure.
type OpenSpecCommand struct {
	repo     ports.VaultRepository
	sessions *application.SessionManager
	view     ports.ViewSurface
	notifier ports.Notifier
	SpecsDir string
	Index    int
}

// NewOpenSpecCommand creates a new OpenSpecCommand for the given slot
func NewOpenSpecCommand(repo ports.VaultRepository, sessions *application.SessionManager, view ports.ViewSurface, notifier ports.Notifier, specsDir string, index int) *OpenSpecCommand {
	return &OpenSpecCommand{
		repo:     repo,
		sessions: sessions,
		view:     view,
		notifier: notifier,
		SpecsDir: specsDir,
		Index:    index,
	}
}

// Validate checks that the slot index is within range
func (c *OpenSpecCommand) Validate() error {
	return application.ValidateSpecIndex(c.Index)
}

// Execute reads, parses and resolves the spec, then opens the comparison.
// The spec file is read fresh on every invocation.
func (c *OpenSpecCommand) Execute(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.notifier.Notify(fmt.Sprintf("Loading comparison spec %d", c.Index))

	file1, file2, err := loadSpecPair(c.repo, c.SpecsDir, c.Index)
	if err != nil {
		c.notifier.Notify(err.Error())
		return err
	}

	sess := c.sessions.Open(domain.Comparison{File1: file1, File2: file2})
	if err := c.view.ShowComparison(ctx, sess); err != nil {
		return err
	}

	c.notifier.Notify(fmt.Sprintf("Opened comparison spec %d", c.Index))
	return nil
}

// loadSpecPair performs the three resolution steps shared by every spec
// consumer. Each step fails with its own *domain.SpecError.
func loadSpecPair(repo ports.VaultRepository, specsDir string, index int) (domain.VaultFile, domain.VaultFile, error) {
	var none domain.VaultFile

	specPath := path.Join(specsDir, domain.SpecFileName(index))
	raw, err := repo.Read(specPath)
	if err != nil {
		return none, none, &domain.SpecError{Index: index, Step: domain.SpecStepRead, Err: err}
	}

	spec, err := domain.ParseDiffSpec(raw)
	if err != nil {
		return none, none, &domain.SpecError{Index: index, Step: domain.SpecStepParse, Err: err}
	}

	file1, err := repo.Resolve(spec.File1)
	if err != nil {
		return none, none, &domain.SpecError{Index: index, Step: domain.SpecStepResolve, Side: "file1", Path: spec.File1, Err: err}
	}
	file2, err := repo.Resolve(spec.File2)
	if err != nil {
		return none, none, &domain.SpecError{Index: index, Step: domain.SpecStepResolve, Side: "file2", Path: spec.File2, Err: err}
	}

	return file1, file2, nil
}
