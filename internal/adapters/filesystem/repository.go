package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"vaultdiff/internal/domain"
)

// Repository implements ports.VaultRepository and ports.VaultWriter over a
// vault rooted at a directory. All paths crossing this boundary are
// vault-relative and slash-separated; hidden directories are invisible.
type Repository struct {
	vaultPath string
}

// NewRepository creates a repository rooted at vaultPath
func NewRepository(vaultPath string) *Repository {
	return &Repository{vaultPath: vaultPath}
}

// List returns every file in the vault in walk (lexical) order
func (r *Repository) List() ([]domain.VaultFile, error) {
	var files []domain.VaultFile

	err := filepath.WalkDir(r.vaultPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			if p != r.vaultPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		rel, err := filepath.Rel(r.vaultPath, p)
		if err != nil {
			return nil
		}
		files = append(files, domain.NewVaultFile(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	return files, nil
}

// Resolve maps a vault-relative path to its file
func (r *Repository) Resolve(vaultRel string) (domain.VaultFile, error) {
	clean, abs, err := r.abs(vaultRel)
	if err != nil {
		return domain.VaultFile{}, err
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return domain.VaultFile{}, fmt.Errorf("%s: %w", clean, domain.ErrNotFound)
	}

	return domain.NewVaultFile(clean), nil
}

// Read returns the raw content of the file at path
func (r *Repository) Read(vaultRel string) ([]byte, error) {
	clean, abs, err := r.abs(vaultRel)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", clean, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", clean, err)
	}
	return content, nil
}

// Write replaces the content of the file at path, creating it if needed
func (r *Repository) Write(vaultRel string, content []byte) error {
	clean, abs, err := r.abs(vaultRel)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", clean, err)
	}
	if err := os.WriteFile(abs, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", clean, err)
	}
	return nil
}

// Remove deletes the file at path
func (r *Repository) Remove(vaultRel string) error {
	clean, abs, err := r.abs(vaultRel)
	if err != nil {
		return err
	}

	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", clean, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to remove %s: %w", clean, err)
	}
	return nil
}

// abs validates a vault-relative path and returns its cleaned form along
// with the absolute filesystem path. Paths escaping the vault root are
// rejected.
func (r *Repository) abs(vaultRel string) (clean string, abs string, err error) {
	clean = path.Clean(strings.TrimPrefix(filepath.ToSlash(vaultRel), "/"))
	if clean == "" || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", "", fmt.Errorf("invalid vault path: %q", vaultRel)
	}
	return clean, filepath.Join(r.vaultPath, filepath.FromSlash(clean)), nil
}
