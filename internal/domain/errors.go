package domain

import "errors"

// Sentinel errors shared by ports and commands.
var (
	// ErrCancelled reports that the user dismissed a dialog. Commands treat
	// it as a silent abort, not a failure.
	ErrCancelled = errors.New("cancelled")

	// ErrNotFound reports that a vault path resolves to nothing.
	ErrNotFound = errors.New("file not found")
)
