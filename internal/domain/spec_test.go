package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDiffSpec_YAML(t *testing.T) {
	raw := []byte("file1: notes/a.md\nfile2: notes/b.md\n")

	spec, err := ParseDiffSpec(raw)
	if err != nil {
		t.Fatalf("ParseDiffSpec failed: %v", err)
	}
	if spec.File1 != "notes/a.md" || spec.File2 != "notes/b.md" {
		t.Errorf("spec = %+v", spec)
	}
}

func TestParseDiffSpec_JSONIsAccepted(t *testing.T) {
	raw := []byte(`{"file1": "a.md", "file2": "b.md"}`)

	spec, err := ParseDiffSpec(raw)
	if err != nil {
		t.Fatalf("ParseDiffSpec failed on JSON input: %v", err)
	}
	if spec.File1 != "a.md" || spec.File2 != "b.md" {
		t.Errorf("spec = %+v", spec)
	}
}

func TestParseDiffSpec_MissingField(t *testing.T) {
	if _, err := ParseDiffSpec([]byte("file1: only.md\n")); err == nil {
		t.Fatal("expected error for missing file2")
	}
}

func TestParseDiffSpec_Garbage(t *testing.T) {
	if _, err := ParseDiffSpec([]byte("{not yaml: [")); err == nil {
		t.Fatal("expected error for unparseable content")
	}
}

func TestSpecFileName(t *testing.T) {
	if got := SpecFileName(0); got != "spec-0.yaml" {
		t.Errorf("SpecFileName(0) = %q", got)
	}
	if got := SpecFileName(9); got != "spec-9.yaml" {
		t.Errorf("SpecFileName(9) = %q", got)
	}
}

func TestSpecError_Messages(t *testing.T) {
	readErr := &SpecError{Index: 2, Step: SpecStepRead, Err: errors.New("no such file")}
	if msg := readErr.Error(); !strings.Contains(msg, "spec 2") || !strings.Contains(msg, "could not read") {
		t.Errorf("read message = %q", msg)
	}

	parseErr := &SpecError{Index: 5, Step: SpecStepParse, Err: errors.New("bad indent")}
	if msg := parseErr.Error(); !strings.Contains(msg, "spec 5") || !strings.Contains(msg, "malformed") {
		t.Errorf("parse message = %q", msg)
	}

	resolveErr := &SpecError{Index: 3, Step: SpecStepResolve, Side: "file2", Path: "b.md", Err: ErrNotFound}
	msg := resolveErr.Error()
	if !strings.Contains(msg, "spec 3") || !strings.Contains(msg, "file2") || !strings.Contains(msg, "b.md") {
		t.Errorf("resolve message = %q", msg)
	}
	if !errors.Is(resolveErr, ErrNotFound) {
		t.Error("resolve error should unwrap to ErrNotFound")
	}
}
