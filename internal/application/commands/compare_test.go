package commands

import (
	"context"
	"errors"
	"testing"

	"vaultdiff/internal/application"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/logging"
)

func TestCompare_PicksBothSides(t *testing.T) {
	repo := newFakeRepo()
	dialogs := &fakeDialogs{picks: []string{"a.md", "b.md"}}
	view := &fakeView{}
	sessions := application.NewSessionManager(logging.NewNullLogger())
	cmd := NewCompareCommand(repo, dialogs, sessions, view, "")

	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(view.shown) != 1 {
		t.Fatalf("opened %d views, want 1", len(view.shown))
	}
	comp := view.shown[0].Comparison
	if comp.File1.Path != "a.md" || comp.File2.Path != "b.md" {
		t.Errorf("comparison = %q vs %q, want a.md vs b.md", comp.File1.Path, comp.File2.Path)
	}
	if comp.ShowMerge {
		t.Error("compare must not offer merge")
	}
	if len(dialogs.excludes) != 2 || len(dialogs.excludes[1]) != 1 || dialogs.excludes[1][0] != "a.md" {
		t.Errorf("second pick should exclude the first file, excludes = %v", dialogs.excludes)
	}
}

func TestCompare_PreselectedFirstFile(t *testing.T) {
	repo := newFakeRepo()
	repo.add("a.md", "left")
	dialogs := &fakeDialogs{picks: []string{"b.md"}}
	view := &fakeView{}
	sessions := application.NewSessionManager(logging.NewNullLogger())
	cmd := NewCompareCommand(repo, dialogs, sessions, view, "a.md")

	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if dialogs.pickCalls != 1 {
		t.Errorf("picker shown %d times, want 1", dialogs.pickCalls)
	}
	if got := view.shown[0].Comparison.File1.Path; got != "a.md" {
		t.Errorf("file1 = %q, want a.md", got)
	}
}

func TestCompare_PreselectedFileMissing(t *testing.T) {
	repo := newFakeRepo()
	dialogs := &fakeDialogs{}
	sessions := application.NewSessionManager(logging.NewNullLogger())
	cmd := NewCompareCommand(repo, dialogs, sessions, &fakeView{}, "ghost.md")

	err := cmd.Execute(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Execute() error = %v, want ErrNotFound", err)
	}
}

func TestCompare_CancelledPicker(t *testing.T) {
	repo := newFakeRepo()
	dialogs := &fakeDialogs{} // empty pick queue cancels
	view := &fakeView{}
	sessions := application.NewSessionManager(logging.NewNullLogger())
	cmd := NewCompareCommand(repo, dialogs, sessions, view, "")

	err := cmd.Execute(context.Background())
	if !errors.Is(err, domain.ErrCancelled) {
		t.Errorf("Execute() error = %v, want ErrCancelled", err)
	}
	if len(view.shown) != 0 {
		t.Error("cancelled pick must not open a view")
	}
}

func TestMerge_GateDeclined(t *testing.T) {
	repo := newFakeRepo()
	dialogs := &fakeDialogs{confirm: false, picks: []string{"a.md", "b.md"}}
	view := &fakeView{}
	logger := logging.NewNullLogger()
	gate := application.NewRiskGate(newFakeSettings(), dialogs, logger, 0)
	sessions := application.NewSessionManager(logger)
	cmd := NewMergeCommand(repo, dialogs, gate, sessions, view, "")

	err := cmd.Execute(context.Background())
	if !errors.Is(err, domain.ErrCancelled) {
		t.Errorf("Execute() error = %v, want ErrCancelled", err)
	}
	if dialogs.pickCalls != 0 {
		t.Errorf("picker shown %d times, want 0 after declined gate", dialogs.pickCalls)
	}
	if len(view.shown) != 0 {
		t.Error("declined gate must not open a view")
	}
}

func TestMerge_OpensMergeEnabledView(t *testing.T) {
	repo := newFakeRepo()
	dialogs := &fakeDialogs{confirm: true, picks: []string{"a.md", "b.md"}}
	view := &fakeView{}
	logger := logging.NewNullLogger()
	gate := application.NewRiskGate(newFakeSettings(), dialogs, logger, 0)
	sessions := application.NewSessionManager(logger)
	cmd := NewMergeCommand(repo, dialogs, gate, sessions, view, "")

	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(view.shown) != 1 {
		t.Fatalf("opened %d views, want 1", len(view.shown))
	}
	if !view.shown[0].Comparison.ShowMerge {
		t.Error("merge command should open a merge-enabled view")
	}
}
