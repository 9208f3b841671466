package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"vaultdiff/internal/ports"
)

// Opener implements ports.ObsidianOpener
type Opener struct {
	vaultName string
}

var _ ports.ObsidianOpener = (*Opener)(nil)

// NewOpener creates an opener for the vault at vaultPath. Obsidian registers
// vaults under their directory name, so that is all the URI needs.
func NewOpener(vaultPath string) *Opener {
	return &Opener{vaultName: filepath.Base(vaultPath)}
}

// OpenFile opens a vault-relative file in Obsidian using the obsidian:// URI scheme
func (o *Opener) OpenFile(relPath string) error {
	uri, err := o.BuildURI(relPath)
	if err != nil {
		return err
	}
	return openURI(uri)
}

// BuildURI constructs the obsidian:// URI for a vault-relative path
func (o *Opener) BuildURI(relPath string) (string, error) {
	cleaned := path.Clean(relPath)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("path escapes the vault: %s", relPath)
	}

	uri := fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		url.QueryEscape(o.vaultName),
		url.QueryEscape(cleaned),
	)

	return uri, nil
}

func openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
