package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vaultdiff/internal/adapters/tui/styles"
	"vaultdiff/internal/application"
	"vaultdiff/internal/application/commands"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/logging"
	"vaultdiff/internal/ports"
)

// ComparisonClosedMsg is sent when the user leaves the comparison view.
type ComparisonClosedMsg struct{}

// OpenEditorMsg asks the app to open a vault file in the external editor.
type OpenEditorMsg struct {
	Path string
}

// OpenObsidianMsg asks the app to open a vault file in Obsidian.
type OpenObsidianMsg struct {
	Path string
}

// DiffKeyMap defines key bindings for the comparison view
type DiffKeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Top            key.Binding
	Bottom         key.Binding
	Continue       key.Binding
	Stop           key.Binding
	TakeFile1      key.Binding
	TakeFile2      key.Binding
	DeleteConflict key.Binding
	EditLeft       key.Binding
	EditRight      key.Binding
	ObsidianLeft   key.Binding
	ObsidianRight  key.Binding
}

var DiffKeys = DiffKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	Continue: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "next"),
	),
	Stop: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "close"),
	),
	TakeFile1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "adopt left into right"),
	),
	TakeFile2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "adopt right into left"),
	),
	DeleteConflict: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete conflict"),
	),
	EditLeft: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit left"),
	),
	EditRight: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "edit right"),
	),
	ObsidianLeft: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "left in Obsidian"),
	),
	ObsidianRight: key.NewBinding(
		key.WithKeys("O"),
		key.WithHelp("O", "right in Obsidian"),
	),
}

// DiffModel renders the current comparison session: both files side by
// side with whole-file resolution actions. It never computes text diffs.
type DiffModel struct {
	ViewState
	sessions *application.SessionManager
	repo     ports.VaultRepository
	writer   ports.VaultWriter
	history  ports.ReviewLog
	logger   logging.Logger

	session  *domain.ComparisonSession
	left     []string
	right    []string
	offset   int
	resolved bool
}

// NewDiffModel creates a new comparison view model
func NewDiffModel(sessions *application.SessionManager, repo ports.VaultRepository, writer ports.VaultWriter, history ports.ReviewLog, logger logging.Logger) *DiffModel {
	return &DiffModel{
		sessions: sessions,
		repo:     repo,
		writer:   writer,
		history:  history,
		logger:   logger,
	}
}

// SetSession replaces the displayed session and reloads both panes.
func (m *DiffModel) SetSession(session *domain.ComparisonSession) tea.Cmd {
	m.session = session
	m.left = nil
	m.right = nil
	m.offset = 0
	m.resolved = false
	m.ClearMessage()
	return m.loadContents
}

// Reload re-reads both panes, keeping the scroll position.
func (m *DiffModel) Reload() tea.Cmd {
	if m.session == nil {
		return nil
	}
	return m.loadContents
}

func (m *DiffModel) loadContents() tea.Msg {
	return paneContentMsg{
		left:  m.readPane(m.session.Comparison.File1.Path),
		right: m.readPane(m.session.Comparison.File2.Path),
	}
}

func (m *DiffModel) readPane(path string) []string {
	content, err := m.repo.Read(path)
	if err != nil {
		return []string{styles.MutedText.Render(fmt.Sprintf("(unavailable: %v)", err))}
	}
	return strings.Split(strings.TrimRight(string(content), "\n"), "\n")
}

type paneContentMsg struct {
	left  []string
	right []string
}

type resolveDoneMsg struct {
	result *commands.ResolveResult
	err    error
}

// Update handles messages for the comparison view
func (m *DiffModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case paneContentMsg:
		m.left = msg.left
		m.right = msg.right
		m.clampOffset()
		return m, nil

	case resolveDoneMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.SetMessage(msg.result.Message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		if m.session == nil {
			return m, nil
		}

		switch {
		case key.Matches(msg, DiffKeys.Up):
			if m.offset > 0 {
				m.offset--
			}
			return m, nil

		case key.Matches(msg, DiffKeys.Down):
			m.offset++
			m.clampOffset()
			return m, nil

		case key.Matches(msg, DiffKeys.Top):
			m.offset = 0
			return m, nil

		case key.Matches(msg, DiffKeys.Bottom):
			m.offset = m.maxOffset()
			return m, nil

		case key.Matches(msg, DiffKeys.Continue):
			return m, m.close(true)

		case key.Matches(msg, DiffKeys.Stop):
			return m, m.close(false)

		case key.Matches(msg, DiffKeys.TakeFile1):
			return m, m.runResolve(domain.ActionTakeFile1)

		case key.Matches(msg, DiffKeys.TakeFile2):
			return m, m.runResolve(domain.ActionTakeFile2)

		case key.Matches(msg, DiffKeys.DeleteConflict):
			if domain.IsConflictName(m.session.Comparison.File2.Name) {
				return m, m.runResolve(domain.ActionDeleteConflict)
			}
			return m, nil

		case key.Matches(msg, DiffKeys.EditLeft):
			path := m.session.Comparison.File1.Path
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }

		case key.Matches(msg, DiffKeys.EditRight):
			path := m.session.Comparison.File2.Path
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }

		case key.Matches(msg, DiffKeys.ObsidianLeft):
			path := m.session.Comparison.File1.Path
			return m, func() tea.Msg { return OpenObsidianMsg{Path: path} }

		case key.Matches(msg, DiffKeys.ObsidianRight):
			path := m.session.Comparison.File2.Path
			return m, func() tea.Msg { return OpenObsidianMsg{Path: path} }
		}
	}

	return m, nil
}

// close resolves the session's decision and leaves the view. A workflow
// waiting on the decision advances on true and stops on false; sessions
// nobody waits on just end.
func (m *DiffModel) close(shouldContinue bool) tea.Cmd {
	if !m.resolved && m.session != nil {
		m.resolved = true
		m.sessions.Resolve(m.session.ID, shouldContinue)
	}
	return func() tea.Msg { return ComparisonClosedMsg{} }
}

func (m *DiffModel) runResolve(action domain.ReviewAction) tea.Cmd {
	if !m.session.Comparison.ShowMerge {
		return nil
	}

	file1 := m.session.Comparison.File1.Path
	file2 := m.session.Comparison.File2.Path

	return func() tea.Msg {
		cmd := commands.NewResolveCommand(m.repo, m.writer, m.history, m.logger, file1, file2, action)
		result, err := cmd.Execute(context.Background())
		return resolveDoneMsg{result: result, err: err}
	}
}

func (m *DiffModel) clampOffset() {
	if max := m.maxOffset(); m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *DiffModel) maxOffset() int {
	lines := len(m.left)
	if len(m.right) > lines {
		lines = len(m.right)
	}
	max := lines - m.paneHeight()
	if max < 0 {
		max = 0
	}
	return max
}

func (m *DiffModel) paneHeight() int {
	h := m.Height - 10
	if h < 5 {
		h = 20
	}
	return h
}

func (m *DiffModel) paneWidth() int {
	w := (m.Width - 9) / 2
	if w < 20 {
		w = 38
	}
	return w
}

// View renders the comparison view
func (m *DiffModel) View() string {
	if m.session == nil {
		return styles.App.Render(styles.MutedText.Render("No comparison open"))
	}

	var b strings.Builder
	comp := m.session.Comparison

	b.WriteString(styles.Title.Render("Comparing"))
	b.WriteString("\n")

	width := m.paneWidth()
	height := m.paneHeight()

	leftPane := m.renderPane(comp.File1, m.left, width, height, styles.PaneTitle)
	rightPane := m.renderPane(comp.File2, m.right, width, height, styles.PaneTitleRight)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftPane, " ", rightPane))
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *DiffModel) renderPane(file domain.VaultFile, lines []string, width, height int, titleStyle lipgloss.Style) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(truncate(file.Path, width)))
	b.WriteString("\n")

	end := m.offset + height
	if end > len(lines) {
		end = len(lines)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(truncate(lines[i], width))
		b.WriteString("\n")
	}
	for i := end - m.offset; i < height; i++ {
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d lines", len(lines))))

	return styles.PaneBorder.Width(width + 2).Render(b.String())
}

func (m *DiffModel) renderHelpLine() string {
	bindings := []key.Binding{DiffKeys.Up, DiffKeys.Down}
	if m.session.Comparison.ShowMerge {
		bindings = append(bindings, DiffKeys.TakeFile1, DiffKeys.TakeFile2)
		if domain.IsConflictName(m.session.Comparison.File2.Name) {
			bindings = append(bindings, DiffKeys.DeleteConflict)
		}
		bindings = append(bindings, DiffKeys.Continue)
	}
	bindings = append(bindings, DiffKeys.EditLeft, DiffKeys.EditRight, DiffKeys.Stop)
	return RenderHelpLine(bindings...)
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
