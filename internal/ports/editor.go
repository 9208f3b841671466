package ports

import "os/exec"

// EditorOpener opens a vault file in the user's preferred editor.
type EditorOpener interface {
	// Command returns an exec.Cmd for editing the file at path, suitable
	// for handing to bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
