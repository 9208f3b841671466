package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vaultdiff/internal/application"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/logging"
)

func newOpenSpecCommand(repo *fakeRepo, view *fakeView, notifier *fakeNotifier, index int) *OpenSpecCommand {
	sessions := application.NewSessionManager(logging.NewNullLogger())
	return NewOpenSpecCommand(repo, sessions, view, notifier, "_diffspecs", index)
}

func TestOpenSpec_OpensResolvedPair(t *testing.T) {
	repo := newFakeRepo()
	repo.add("_diffspecs/spec-0.yaml", "file1: a.md\nfile2: b.md\n")
	repo.add("a.md", "left")
	repo.add("b.md", "right")
	view := &fakeView{}
	notifier := &fakeNotifier{}
	cmd := newOpenSpecCommand(repo, view, notifier, 0)

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
		t.Error("indexed loads must not offer merge")
	}
	if !notifier.contains("Opened comparison spec 0") {
		t.Errorf("missing opened notice, got %v", notifier.messages)
	}
}

func TestOpenSpec_ReportsMissingFile2(t *testing.T) {
	repo := newFakeRepo()
	repo.add("_diffspecs/spec-3.yaml", "file1: a.md\nfile2: b.md\n")
	repo.add("a.md", "left")
	view := &fakeView{}
	notifier := &fakeNotifier{}
	cmd := newOpenSpecCommand(repo, view, notifier, 3)

	err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("Execute() should fail when file2 does not resolve")
	}

	var specErr *domain.SpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("error type = %T, want *domain.SpecError", err)
	}
	if specErr.Side != "file2" || specErr.Path != "b.md" {
		t.Errorf("failure names side %q path %q, want file2 b.md", specErr.Side, specErr.Path)
	}
	if !strings.Contains(err.Error(), "b.md") {
		t.Errorf("message %q should name the missing path", err.Error())
	}
	if len(view.shown) != 0 {
		t.Errorf("opened %d views, want 0 on resolution failure", len(view.shown))
	}
}

func TestOpenSpec_UnreadableSpec(t *testing.T) {
	repo := newFakeRepo()
	view := &fakeView{}
	notifier := &fakeNotifier{}
	cmd := newOpenSpecCommand(repo, view, notifier, 5)

	err := cmd.Execute(context.Background())
	var specErr *domain.SpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("error type = %T, want *domain.SpecError", err)
	}
	if specErr.Step != domain.SpecStepRead {
		t.Errorf("failing step = %q, want read", specErr.Step)
	}
	if !strings.Contains(err.Error(), "could not read spec") {
		t.Errorf("message %q should report an unreadable spec", err.Error())
	}
	if len(notifier.messages) == 0 {
		t.Error("failure should be surfaced as a notification")
	}
}

func TestOpenSpec_MalformedSpec(t *testing.T) {
	repo := newFakeRepo()
	repo.add("_diffspecs/spec-1.yaml", "file1: only-one-side.md\n")
	view := &fakeView{}
	cmd := newOpenSpecCommand(repo, view, &fakeNotifier{}, 1)

	err := cmd.Execute(context.Background())
	var specErr *domain.SpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("error type = %T, want *domain.SpecError", err)
	}
	if specErr.Step != domain.SpecStepParse {
		t.Errorf("failing step = %q, want parse", specErr.Step)
	}
	if len(view.shown) != 0 {
		t.Error("malformed spec must not open a view")
	}
}

func TestOpenSpec_IndexOutOfRange(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	cmd := newOpenSpecCommand(repo, &fakeView{}, notifier, 10)

	err := cmd.Execute(context.Background())
	var ve *application.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *application.ValidationError", err)
	}
}

func TestOpenSpec_ReadsFreshEachInvocation(t *testing.T) {
	repo := newFakeRepo()
	repo.add("_diffspecs/spec-0.yaml", "file1: a.md\nfile2: b.md\n")
	repo.add("a.md", "")
	repo.add("b.md", "")
	repo.add("c.md", "")
	view := &fakeView{}
	cmd := newOpenSpecCommand(repo, view, &fakeNotifier{}, 0)

	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}

	repo.content["_diffspecs/spec-0.yaml"] = "file1: a.md\nfile2: c.md\n"

	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if len(view.shown) != 2 {
		t.Fatalf("opened %d views, want 2", len(view.shown))
	}
	if got := view.shown[1].Comparison.File2.Path; got != "c.md" {
		t.Errorf("second load file2 = %q, want c.md (spec re-read)", got)
	}
}
