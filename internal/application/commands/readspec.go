package commands

import (
	"context"

	"vaultdiff/internal/application"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/ports"
)

// ReadSpecCommand resolves a numbered diff spec to its file pair without
// opening a comparison. Serves read-only surfaces such as the MCP server.
type ReadSpecCommand struct {
	repo ports.VaultRepository

	SpecsDir string
	Index    int
}

func NewReadSpecCommand(repo ports.VaultRepository, specsDir string, index int) *ReadSpecCommand {
	return &ReadSpecCommand{
		repo:     repo,
		SpecsDir: specsDir,
		Index:    index,
	}
}

func (c *ReadSpecCommand) Validate() error {
	return application.ValidateSpecIndex(c.Index)
}

// Execute re-reads the spec file on every call so edits between invocations
// are always honored.
func (c *ReadSpecCommand) Execute(ctx context.Context) (domain.VaultFile, domain.VaultFile, error) {
	if err := c.Validate(); err != nil {
		var none domain.VaultFile
		return none, none, err
	}
	return loadSpecPair(c.repo, c.SpecsDir, c.Index)
}
