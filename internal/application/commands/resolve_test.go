package commands

import (
	"context"
	"errors"
	"testing"

	"vaultdiff/internal/application"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/logging"
)

func newResolveCommand(repo *fakeRepo, writer *fakeWriter, history *fakeHistory, action domain.ReviewAction) *ResolveCommand {
	return NewResolveCommand(repo, writer, history, logging.NewNullLogger(), "a.md", "b.md", action)
}

func pairRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.add("a.md", "left content")
	repo.add("b.md", "right content")
	return repo
}

func TestResolve_TakeFile1(t *testing.T) {
	writer := newFakeWriter()
	history := &fakeHistory{}
	cmd := newResolveCommand(pairRepo(), writer, history, domain.ActionTakeFile1)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := writer.writes["b.md"]; got != "left content" {
		t.Errorf("b.md content = %q, want %q", got, "left content")
	}
	if len(writer.removed) != 0 {
		t.Errorf("removed %v, want nothing removed", writer.removed)
	}
	if result.Action != domain.ActionTakeFile1 {
		t.Errorf("result action = %s, want take-file1", result.Action)
	}
}

func TestResolve_TakeFile2(t *testing.T) {
	writer := newFakeWriter()
	history := &fakeHistory{}
	cmd := newResolveCommand(pairRepo(), writer, history, domain.ActionTakeFile2)

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := writer.writes["a.md"]; got != "right content" {
		t.Errorf("a.md content = %q, want %q", got, "right content")
	}
	if len(writer.removed) != 0 {
		t.Errorf("removed %v, want nothing removed", writer.removed)
	}
}

func TestResolve_DeleteConflict(t *testing.T) {
	writer := newFakeWriter()
	history := &fakeHistory{}
	cmd := newResolveCommand(pairRepo(), writer, history, domain.ActionDeleteConflict)

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(writer.removed) != 1 || writer.removed[0] != "b.md" {
		t.Errorf("removed = %v, want [b.md]", writer.removed)
	}
	if len(writer.writes) != 0 {
		t.Errorf("writes = %v, want none", writer.writes)
	}
}

func TestResolve_RecordsHistory(t *testing.T) {
	writer := newFakeWriter()
	history := &fakeHistory{}
	cmd := newResolveCommand(pairRepo(), writer, history, domain.ActionDeleteConflict)

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(history.records) != 1 {
		t.Fatalf("recorded %d entries, want 1", len(history.records))
	}
	rec := history.records[0]
	if rec.ID == "" {
		t.Error("record ID should be set")
	}
	if rec.File1 != "a.md" || rec.File2 != "b.md" {
		t.Errorf("record pair = %q/%q, want a.md/b.md", rec.File1, rec.File2)
	}
	if rec.Action != domain.ActionDeleteConflict {
		t.Errorf("record action = %s, want delete-conflict", rec.Action)
	}
	if rec.RecordedAt.IsZero() {
		t.Error("record timestamp should be set")
	}
}

func TestResolve_HistoryFailureDoesNotFailAction(t *testing.T) {
	writer := newFakeWriter()
	history := &fakeHistory{appendErr: errors.New("db locked")}
	cmd := newResolveCommand(pairRepo(), writer, history, domain.ActionDeleteConflict)

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Errorf("Execute() error = %v, history failure should not fail the action", err)
	}
	if len(writer.removed) != 1 {
		t.Error("the action should still be applied")
	}
}

func TestResolve_UnknownAction(t *testing.T) {
	writer := newFakeWriter()
	cmd := newResolveCommand(pairRepo(), writer, &fakeHistory{}, domain.ReviewAction("explode"))

	_, err := cmd.Execute(context.Background())
	var ve *application.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *application.ValidationError", err)
	}
	if len(writer.writes) != 0 || len(writer.removed) != 0 {
		t.Error("invalid action must not touch the vault")
	}
}

func TestResolve_ReadFailurePropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.add("a.md", "left content")
	writer := newFakeWriter()
	cmd := NewResolveCommand(repo, writer, &fakeHistory{}, logging.NewNullLogger(), "a.md", "b.md", domain.ActionTakeFile2)

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Execute() error = %v, want ErrNotFound", err)
	}
	if len(writer.writes) != 0 {
		t.Error("failed read must not write anything")
	}
}

func TestHistoryCommand(t *testing.T) {
	history := &fakeHistory{}
	for _, action := range []domain.ReviewAction{
		domain.ActionTakeFile1,
		domain.ActionTakeFile2,
		domain.ActionDeleteConflict,
	} {
		history.Append(domain.ReviewRecord{ID: string(action), Action: action})
	}

	records, err := NewHistoryCommand(history, 2).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Action != domain.ActionDeleteConflict {
		t.Errorf("first record = %s, want the newest", records[0].Action)
	}
}
