package commands

import (
	"context"
	"fmt"
	"strings"

	"vaultdiff/internal/domain"
)

// fakeRepo serves vault files from an in-memory path -> content map,
// preserving insertion order for List.
type fakeRepo struct {
	paths   []string
	content map[string]string
	listErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{content: make(map[string]string)}
}

func (r *fakeRepo) add(path, content string) {
	r.paths = append(r.paths, path)
	r.content[path] = content
}

func (r *fakeRepo) List() ([]domain.VaultFile, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	files := make([]domain.VaultFile, 0, len(r.paths))
	for _, p := range r.paths {
		files = append(files, domain.NewVaultFile(p))
	}
	return files, nil
}

func (r *fakeRepo) Resolve(path string) (domain.VaultFile, error) {
	if _, ok := r.content[path]; !ok {
		return domain.VaultFile{}, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}
	return domain.NewVaultFile(path), nil
}

func (r *fakeRepo) Read(path string) ([]byte, error) {
	c, ok := r.content[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}
	return []byte(c), nil
}

// fakeWriter records writes and removals without touching a file system.
type fakeWriter struct {
	writes    map[string]string
	removed   []string
	writeErr  error
	removeErr error
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{writes: make(map[string]string)}
}

func (w *fakeWriter) Write(path string, content []byte) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.writes[path] = string(content)
	return nil
}

func (w *fakeWriter) Remove(path string) error {
	if w.removeErr != nil {
		return w.removeErr
	}
	w.removed = append(w.removed, path)
	return nil
}

// fakeView records shown sessions and resolves each decision from a
// script of continue answers. Sessions beyond the script stay pending.
type fakeView struct {
	shown   []*domain.ComparisonSession
	answers []bool
	showErr error
}

func (v *fakeView) ShowComparison(ctx context.Context, sess *domain.ComparisonSession) error {
	if v.showErr != nil {
		return v.showErr
	}
	v.shown = append(v.shown, sess)
	if len(v.answers) > 0 {
		answer := v.answers[0]
		v.answers = v.answers[1:]
		sess.Continue(answer)
	}
	return nil
}

// fakeDialogs answers picker requests from a queue of paths and the risk
// prompt from a fixed response.
type fakeDialogs struct {
	picks        []string
	pickErr      error
	pickCalls    int
	excludes     [][]string
	confirm      bool
	confirmErr   error
	confirmCalls int
}

func (d *fakeDialogs) PickFile(ctx context.Context, title string, exclude ...string) (domain.VaultFile, error) {
	d.pickCalls++
	d.excludes = append(d.excludes, exclude)
	if d.pickErr != nil {
		return domain.VaultFile{}, d.pickErr
	}
	if len(d.picks) == 0 {
		return domain.VaultFile{}, domain.ErrCancelled
	}
	p := d.picks[0]
	d.picks = d.picks[1:]
	return domain.NewVaultFile(p), nil
}

func (d *fakeDialogs) ConfirmMergeRisk(ctx context.Context) (bool, error) {
	d.confirmCalls++
	return d.confirm, d.confirmErr
}

// fakeSettings is an in-memory settings store.
type fakeSettings struct {
	values map[string]string
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: make(map[string]string)}
}

func (s *fakeSettings) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *fakeSettings) Set(key, value string) error {
	s.values[key] = value
	return nil
}

// fakeNotifier collects notifications.
type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(msg string) {
	n.messages = append(n.messages, msg)
}

func (n *fakeNotifier) contains(substr string) bool {
	for _, m := range n.messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// fakeHistory is an in-memory review log.
type fakeHistory struct {
	records   []domain.ReviewRecord
	appendErr error
}

func (h *fakeHistory) Append(rec domain.ReviewRecord) error {
	if h.appendErr != nil {
		return h.appendErr
	}
	h.records = append(h.records, rec)
	return nil
}

func (h *fakeHistory) Recent(limit int) ([]domain.ReviewRecord, error) {
	out := make([]domain.ReviewRecord, 0, limit)
	for i := len(h.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, h.records[i])
	}
	return out, nil
}
