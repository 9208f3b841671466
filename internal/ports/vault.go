package ports

import "vaultdiff/internal/domain"

// VaultRepository is the read side of the host file system: a root-scoped
// tree of documents addressed by vault-relative paths.
type VaultRepository interface {
	// List returns a snapshot of every file in the vault.
	List() ([]domain.VaultFile, error)

	// Resolve maps a vault-relative path to its file, returning
	// domain.ErrNotFound when nothing lives at that path.
	Resolve(path string) (domain.VaultFile, error)

	// Read returns the raw content of the file at path.
	Read(path string) ([]byte, error)
}

// VaultWriter is the write side used by comparison-view resolution actions.
// The workflow engine itself never writes; only the host view does.
type VaultWriter interface {
	// Write replaces the content of the file at path.
	Write(path string, content []byte) error

	// Remove deletes the file at path.
	Remove(path string) error
}
