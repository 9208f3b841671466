package domain

import (
	"testing"
)

func TestStripConflictSuffix(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "plain markdown conflict",
			input:  "Notes.md.sync-conflict-20240101-120000-ABC123",
			want:   "Notes.md",
			wantOK: true,
		},
		{
			name:   "syncthing device token",
			input:  "todo.txt.sync-conflict-20170828-152247-G45TQRV",
			want:   "todo.txt",
			wantOK: true,
		},
		{
			name:   "no extension on original",
			input:  "README.sync-conflict-20231231-235959-Z9",
			want:   "README",
			wantOK: true,
		},
		{
			name:   "marker but malformed tag",
			input:  "notes-sync-conflict.md",
			wantOK: false,
		},
		{
			name:   "lowercase device token rejected",
			input:  "a.md.sync-conflict-20240101-120000-abc123",
			wantOK: false,
		},
		{
			name:   "tag not at end of name",
			input:  "a.sync-conflict-20240101-120000-ABC123.md",
			wantOK: false,
		},
		{
			name:   "short date rejected",
			input:  "a.md.sync-conflict-2024011-120000-ABC123",
			wantOK: false,
		},
		{
			name:   "ordinary file",
			input:  "Notes.md",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StripConflictSuffix(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("StripConflictSuffix(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("StripConflictSuffix(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if IsConflictName(tt.input) != tt.wantOK {
				t.Errorf("IsConflictName(%q) = %v, want %v", tt.input, !tt.wantOK, tt.wantOK)
			}
		})
	}
}

func TestMatchConflicts_PairsWithSameDirectoryOriginal(t *testing.T) {
	files := []VaultFile{
		NewVaultFile("Notes.md"),
		NewVaultFile("Notes.md.sync-conflict-20240101-120000-ABC123"),
	}

	pairs := MatchConflicts(files)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Original.Path != "Notes.md" {
		t.Errorf("original = %q, want Notes.md", pairs[0].Original.Path)
	}
	if pairs[0].Conflict.Path != "Notes.md.sync-conflict-20240101-120000-ABC123" {
		t.Errorf("conflict = %q", pairs[0].Conflict.Path)
	}
}

func TestMatchConflicts_DropsConflictWithoutOriginal(t *testing.T) {
	files := []VaultFile{
		NewVaultFile("Other.md"),
		NewVaultFile("Gone.md.sync-conflict-20240101-120000-ABC123"),
	}

	if pairs := MatchConflicts(files); len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %d", len(pairs))
	}
}

func TestMatchConflicts_DirectoryScoped(t *testing.T) {
	// The original lives in a different directory, so no pair forms.
	files := []VaultFile{
		NewVaultFile("a/Notes.md"),
		NewVaultFile("b/Notes.md.sync-conflict-20240101-120000-ABC123"),
	}
	if pairs := MatchConflicts(files); len(pairs) != 0 {
		t.Fatalf("expected no pairs across directories, got %d", len(pairs))
	}

	// Same directory pairs fine.
	files = []VaultFile{
		NewVaultFile("b/Notes.md"),
		NewVaultFile("b/Notes.md.sync-conflict-20240101-120000-ABC123"),
	}
	pairs := MatchConflicts(files)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Original.Dir != pairs[0].Conflict.Dir {
		t.Errorf("pair spans directories: %q vs %q", pairs[0].Original.Dir, pairs[0].Conflict.Dir)
	}
}

func TestMatchConflicts_MultipleConflictsShareOneOriginal(t *testing.T) {
	files := []VaultFile{
		NewVaultFile("Notes.md.sync-conflict-20240102-080000-DEV002"),
		NewVaultFile("Notes.md"),
		NewVaultFile("Notes.md.sync-conflict-20240101-120000-DEV001"),
	}

	pairs := MatchConflicts(files)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}

	// Input order of the conflict files is preserved.
	if pairs[0].Conflict.Name != "Notes.md.sync-conflict-20240102-080000-DEV002" {
		t.Errorf("first pair conflict = %q", pairs[0].Conflict.Name)
	}
	if pairs[1].Conflict.Name != "Notes.md.sync-conflict-20240101-120000-DEV001" {
		t.Errorf("second pair conflict = %q", pairs[1].Conflict.Name)
	}
	for _, p := range pairs {
		if p.Original.Name != "Notes.md" {
			t.Errorf("original = %q, want Notes.md", p.Original.Name)
		}
	}
}

func TestMatchConflicts_EmittedPairsSatisfyInvariants(t *testing.T) {
	files := []VaultFile{
		NewVaultFile("Notes.md"),
		NewVaultFile("Notes.md.sync-conflict-20240101-120000-ABC123"),
		NewVaultFile("sub/dir/Plan.md"),
		NewVaultFile("sub/dir/Plan.md.sync-conflict-20240202-020202-XYZ789"),
		NewVaultFile("Loose.md.sync-conflict-20240303-030303-QQQ111"),
		NewVaultFile("notes-sync-conflict.md"),
	}

	conflictNamed := 0
	for _, f := range files {
		if IsConflictName(f.Name) {
			conflictNamed++
		}
	}

	pairs := MatchConflicts(files)
	if len(pairs) > conflictNamed {
		t.Fatalf("more pairs (%d) than conflict-named files (%d)", len(pairs), conflictNamed)
	}
	for _, p := range pairs {
		if !IsConflictName(p.Conflict.Name) {
			t.Errorf("conflict %q does not match the suffix pattern", p.Conflict.Name)
		}
		stripped, ok := StripConflictSuffix(p.Conflict.Name)
		if !ok || stripped != p.Original.Name {
			t.Errorf("strip(%q) = %q, want %q", p.Conflict.Name, stripped, p.Original.Name)
		}
		if p.Conflict.Dir != p.Original.Dir {
			t.Errorf("pair spans directories: %q vs %q", p.Conflict.Dir, p.Original.Dir)
		}
	}
}

func TestMatchConflicts_RootParentNormalized(t *testing.T) {
	// Root-level files get Dir == "" however the path was written.
	files := []VaultFile{
		{Path: "Notes.md", Name: "Notes.md", Dir: ""},
		NewVaultFile("/Notes.md.sync-conflict-20240101-120000-ABC123"),
	}
	if pairs := MatchConflicts(files); len(pairs) != 1 {
		t.Fatalf("expected 1 pair for root files, got %d", len(pairs))
	}
}

func TestMatchConflicts_NoFiles(t *testing.T) {
	if pairs := MatchConflicts(nil); len(pairs) != 0 {
		t.Fatalf("expected no pairs for empty input, got %d", len(pairs))
	}
}
