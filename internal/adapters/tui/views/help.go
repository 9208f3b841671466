package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vaultdiff/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return DialogClosedMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("vaultdiff Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Home"))
	b.WriteString("\n")
	b.WriteString(helpLine("c", "Compare two files"))
	b.WriteString(helpLine("m", "Compare and merge (gated by the risk warning)"))
	b.WriteString(helpLine("r", "Review sync conflicts one pair at a time"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Comparison view"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Scroll both panes"))
	b.WriteString(helpLine("g / G", "Jump to top / bottom"))
	b.WriteString(helpLine("1", "Adopt left content into the right file"))
	b.WriteString(helpLine("2", "Adopt right content into the left file"))
	b.WriteString(helpLine("x", "Delete the sync-conflict copy"))
	b.WriteString(helpLine("e / E", "Open left / right file in $EDITOR"))
	b.WriteString(helpLine("o / O", "Open left / right file in Obsidian"))
	b.WriteString(helpLine("Enter", "Continue to the next conflict pair"))
	b.WriteString(helpLine("Esc", "Stop reviewing / close the view"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("File picker"))
	b.WriteString("\n")
	b.WriteString(helpLine("Type", "Filter the file list"))
	b.WriteString(helpLine("Ctrl+Y", "Copy the selected path"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 18)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
