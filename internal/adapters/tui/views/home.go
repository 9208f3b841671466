package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vaultdiff/internal/adapters/tui/styles"
)

// Workflow identifies one of the user-facing comparison flows.
type Workflow int

const (
	WorkflowNone Workflow = iota
	WorkflowCompare
	WorkflowMerge
	WorkflowConflicts
	WorkflowSpec
)

// StartWorkflowMsg asks the app to run a workflow on its own goroutine.
type StartWorkflowMsg struct {
	Workflow Workflow
	Index    int    // spec index, only for WorkflowSpec
	File1    string // preselected first file, only for compare and merge
}

// HomeKeyMap defines key bindings for the home view
type HomeKeyMap struct {
	Compare   key.Binding
	Merge     key.Binding
	Conflicts key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var HomeKeys = HomeKeyMap{
	Compare: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "compare"),
	),
	Merge: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "merge"),
	),
	Conflicts: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "review conflicts"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// HomeModel is the landing view: a small menu over the vault.
type HomeModel struct {
	ViewState
	vaultPath string
}

// NewHomeModel creates a new home view model
func NewHomeModel(vaultPath string) *HomeModel {
	return &HomeModel{vaultPath: vaultPath}
}

// Init initializes the home view
func (m *HomeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the home view
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, HomeKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, HomeKeys.Compare):
			return m, func() tea.Msg {
				return StartWorkflowMsg{Workflow: WorkflowCompare}
			}

		case key.Matches(msg, HomeKeys.Merge):
			return m, func() tea.Msg {
				return StartWorkflowMsg{Workflow: WorkflowMerge}
			}

		case key.Matches(msg, HomeKeys.Conflicts):
			return m, func() tea.Msg {
				return StartWorkflowMsg{Workflow: WorkflowConflicts}
			}

		case key.Matches(msg, HomeKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// SwitchToHelpMsg asks the app to show the help view.
type SwitchToHelpMsg struct{}

// View renders the home view
func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("vaultdiff"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.vaultPath))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(menuLine("c", "Compare two files"))
	b.WriteString(menuLine("m", "Compare and merge two files"))
	b.WriteString(menuLine("r", "Review sync conflicts"))
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelpLine(
		HomeKeys.Compare, HomeKeys.Merge, HomeKeys.Conflicts,
		HomeKeys.Help, HomeKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func menuLine(keyLabel, desc string) string {
	return "  " + styles.HelpKey.Render(keyLabel) + "  " + desc + "\n"
}
