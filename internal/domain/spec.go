package domain

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SpecCount is the number of numbered diff-spec slots.
const SpecCount = 10

// DiffSpec describes an externally authored file pair: two vault-relative
// paths read from a numbered spec file. Specs are read fresh on every load
// and never cached.
type DiffSpec struct {
	File1 string `yaml:"file1"`
	File2 string `yaml:"file2"`
}

// SpecFileName returns the conventional file name for a spec slot.
func SpecFileName(index int) string {
	return fmt.Sprintf("spec-%d.yaml", index)
}

// ParseDiffSpec decodes raw spec content. Both fields must be present and
// non-empty. YAML is a superset of JSON, so JSON-authored specs also parse.
func ParseDiffSpec(raw []byte) (DiffSpec, error) {
	var s DiffSpec
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return DiffSpec{}, fmt.Errorf("decode: %w", err)
	}
	if s.File1 == "" || s.File2 == "" {
		return DiffSpec{}, errors.New("file1 and file2 are required")
	}
	return s, nil
}

// SpecStep identifies which step of an indexed spec load failed.
type SpecStep string

const (
	SpecStepRead    SpecStep = "read"
	SpecStepParse   SpecStep = "parse"
	SpecStepResolve SpecStep = "resolve"
)

// SpecError reports a failed indexed spec load: the slot, the failing step
// and, for resolution misses, which side and path could not be found.
type SpecError struct {
	Index int
	Step  SpecStep
	Side  string // "file1" or "file2", set for resolve failures
	Path  string // the path that failed to resolve
	Err   error
}

func (e *SpecError) Error() string {
	switch e.Step {
	case SpecStepRead:
		return fmt.Sprintf("spec %d: could not read spec file: %v", e.Index, e.Err)
	case SpecStepParse:
		return fmt.Sprintf("spec %d: malformed spec: %v", e.Index, e.Err)
	case SpecStepResolve:
		return fmt.Sprintf("spec %d: %s not found: %s", e.Index, e.Side, e.Path)
	default:
		return fmt.Sprintf("spec %d: %v", e.Index, e.Err)
	}
}

func (e *SpecError) Unwrap() error { return e.Err }
