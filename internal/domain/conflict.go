package domain

import (
	"regexp"
	"strings"
)

// conflictMarker is the literal substring the external sync tool puts into
// the name of a conflicting copy.
const conflictMarker = "sync-conflict"

// conflictSuffix matches the dot-prefixed tag appended to an original file
// name: date (8 digits), time (6 digits) and an uppercase device token, e.g.
// ".sync-conflict-20240101-120000-ABC123".
var conflictSuffix = regexp.MustCompile(`\.sync-conflict-\d{8}-\d{6}-[A-Z0-9]+$`)

// ConflictPair couples a sync-conflict file with the original it diverged
// from. Both sides always share a directory.
type ConflictPair struct {
	Original VaultFile
	Conflict VaultFile
}

// IsConflictName reports whether name ends in a sync-conflict tag.
func IsConflictName(name string) bool {
	return conflictSuffix.MatchString(name)
}

// StripConflictSuffix removes the sync-conflict tag from name, yielding the
// original file name. ok is false when name carries no parseable tag.
func StripConflictSuffix(name string) (original string, ok bool) {
	loc := conflictSuffix.FindStringIndex(name)
	if loc == nil {
		return "", false
	}
	return name[:loc[0]], true
}

// MatchConflicts pairs every sync-conflict file in the snapshot with its
// original: the file in the same directory whose name equals the conflict
// name with the tag stripped. Conflict files without an original are dropped
// without error. The result preserves the input order of the conflict files,
// and one original appears in several pairs when multiple conflicting copies
// of it exist. Pure computation: no I/O, no mutation of the snapshot.
func MatchConflicts(files []VaultFile) []ConflictPair {
	var pairs []ConflictPair
	for _, f := range files {
		if !strings.Contains(f.Name, conflictMarker) {
			continue
		}
		original, ok := StripConflictSuffix(f.Name)
		if !ok {
			continue
		}
		for _, cand := range files {
			if cand.Name == original && cand.Dir == f.Dir {
				pairs = append(pairs, ConflictPair{Original: cand, Conflict: f})
				break
			}
		}
	}
	return pairs
}
