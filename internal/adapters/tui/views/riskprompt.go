package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vaultdiff/internal/adapters/tui/styles"
)

// RiskKeyMap defines key bindings for the merge risk prompt
type RiskKeyMap struct {
	Accept  key.Binding
	Decline key.Binding
}

var RiskKeys = RiskKeyMap{
	Accept: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "accept"),
	),
	Decline: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "decline"),
	),
}

// RiskPromptModel asks for the one-time merge risk acknowledgment. The
// answer goes out through a reply channel and is given at most once per
// prompt.
type RiskPromptModel struct {
	ViewState
	reply chan<- bool
}

// NewRiskPromptModel creates a new risk prompt model
func NewRiskPromptModel() *RiskPromptModel {
	return &RiskPromptModel{}
}

// Open arms the prompt with a fresh reply channel. A previous prompt
// still awaiting an answer is declined.
func (m *RiskPromptModel) Open(reply chan<- bool) {
	m.resolve(false)
	m.reply = reply
}

func (m *RiskPromptModel) resolve(accepted bool) {
	if m.reply == nil {
		return
	}
	m.reply <- accepted
	m.reply = nil
}

// Update handles messages for the risk prompt
func (m *RiskPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, RiskKeys.Accept):
			m.resolve(true)
			return m, func() tea.Msg { return DialogClosedMsg{} }

		case key.Matches(msg, RiskKeys.Decline):
			m.resolve(false)
			return m, func() tea.Msg { return DialogClosedMsg{} }
		}
	}

	return m, nil
}

// View renders the risk prompt
func (m *RiskPromptModel) View() string {
	var b strings.Builder

	b.WriteString(styles.RiskTitle.Render("Merge risk warning"))
	b.WriteString("\n\n")
	b.WriteString("Resolution actions overwrite or delete files in your vault.\n")
	b.WriteString("There is no undo. Make sure your vault is backed up or synced\n")
	b.WriteString("before resolving conflicts.\n\n")
	b.WriteString(styles.MutedText.Render("You will only be asked once."))
	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(RiskKeys.Accept, RiskKeys.Decline))

	return styles.App.Render(styles.RiskBox.Render(b.String()))
}
