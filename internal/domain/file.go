package domain

import "strings"

// VaultFile identifies a document inside the vault. Paths are vault-relative
// and slash-separated regardless of platform; Dir is the parent directory and
// is "" for files at the vault root.
type VaultFile struct {
	Path string
	Name string
	Dir  string
}

// NewVaultFile builds a VaultFile from a vault-relative path.
func NewVaultFile(path string) VaultFile {
	dir, name := SplitPath(path)
	return VaultFile{Path: path, Name: name, Dir: dir}
}

// SplitPath splits a vault-relative path into parent directory and base name.
// The parent of a root-level file is the empty string.
func SplitPath(path string) (dir, name string) {
	path = strings.Trim(path, "/")
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}
