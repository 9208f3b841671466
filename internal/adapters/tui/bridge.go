package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"vaultdiff/internal/adapters/tui/views"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/ports"
)

// Messages the bridge feeds into the program.
type showPickerMsg struct {
	title   string
	exclude []string
	reply   chan views.PickResult
}

type showRiskMsg struct {
	reply chan bool
}

type showComparisonMsg struct {
	session *domain.ComparisonSession
}

type notifyMsg struct {
	text string
}

type workflowDoneMsg struct {
	err error
}

// VaultChangedMsg reports that the vault changed on disk. The watcher
// goroutine sends it through Program.Send so open views can refresh.
type VaultChangedMsg struct{}

// Bridge implements the dialog, view-surface and notifier ports over a
// running bubbletea program. Workflow goroutines call the port methods;
// the answers travel back on per-prompt reply channels.
type Bridge struct {
	mu      sync.Mutex
	program *tea.Program
}

// Ensure Bridge implements the host ports
var _ ports.Dialogs = (*Bridge)(nil)
var _ ports.ViewSurface = (*Bridge)(nil)
var _ ports.Notifier = (*Bridge)(nil)

// NewBridge creates a bridge not yet attached to a program.
func NewBridge() *Bridge {
	return &Bridge{}
}

// SetProgram attaches the running program. Must happen before any
// workflow uses the bridge.
func (b *Bridge) SetProgram(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

func (b *Bridge) send(msg tea.Msg) bool {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()

	if p == nil {
		return false
	}
	p.Send(msg)
	return true
}

// PickFile shows the file picker and blocks until the user answers or
// ctx is cancelled.
func (b *Bridge) PickFile(ctx context.Context, title string, exclude ...string) (domain.VaultFile, error) {
	reply := make(chan views.PickResult, 1)
	if !b.send(showPickerMsg{title: title, exclude: exclude, reply: reply}) {
		return domain.VaultFile{}, fmt.Errorf("no host program attached")
	}

	select {
	case result := <-reply:
		return result.File, result.Err
	case <-ctx.Done():
		return domain.VaultFile{}, ctx.Err()
	}
}

// ConfirmMergeRisk shows the risk prompt and blocks until the user
// answers or ctx is cancelled.
func (b *Bridge) ConfirmMergeRisk(ctx context.Context) (bool, error) {
	reply := make(chan bool, 1)
	if !b.send(showRiskMsg{reply: reply}) {
		return false, fmt.Errorf("no host program attached")
	}

	select {
	case accepted := <-reply:
		return accepted, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// ShowComparison hands the session to the app, replacing whatever view
// is showing.
func (b *Bridge) ShowComparison(ctx context.Context, session *domain.ComparisonSession) error {
	if !b.send(showComparisonMsg{session: session}) {
		return fmt.Errorf("no host program attached")
	}
	return nil
}

// Notify shows a status message in the current view.
func (b *Bridge) Notify(msg string) {
	b.send(notifyMsg{text: msg})
}
