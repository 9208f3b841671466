package ports

// ObsidianOpener opens a vault file in the Obsidian app.
type ObsidianOpener interface {
	// OpenFile opens the vault-relative file via the obsidian:// URI scheme.
	OpenFile(path string) error
}
