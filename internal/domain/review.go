package domain

import "time"

// ReviewAction identifies a resolution applied from a comparison view.
type ReviewAction string

const (
	// ActionTakeFile1 adopted file1's content into file2.
	ActionTakeFile1 ReviewAction = "take-file1"
	// ActionTakeFile2 adopted file2's content into file1.
	ActionTakeFile2 ReviewAction = "take-file2"
	// ActionDeleteConflict removed the sync-conflict copy from the vault.
	ActionDeleteConflict ReviewAction = "delete-conflict"
)

// ReviewRecord is one history row: a resolution action applied to a file
// pair at a point in time.
type ReviewRecord struct {
	ID         string
	File1      string
	File2      string
	Action     ReviewAction
	RecordedAt time.Time
}
