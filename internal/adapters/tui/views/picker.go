package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaultdiff/internal/adapters/tui/styles"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/ports"
)

// PickResult is the picker's answer: the chosen file or the reason none
// was chosen.
type PickResult struct {
	File domain.VaultFile
	Err  error
}

// DialogClosedMsg is sent when a modal view (picker, risk prompt) is done
// and the app should return to whatever was underneath.
type DialogClosedMsg struct{}

// PickerKeyMap defines key bindings for the file picker
type PickerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	CopyPath key.Binding
	Cancel   key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy path"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// PickerModel is the model for the vault file picker
type PickerModel struct {
	ViewState
	repo    ports.VaultRepository
	input   textinput.Model
	spinner spinner.Model

	title   string
	files   []domain.VaultFile
	matches []domain.VaultFile
	exclude map[string]bool
	reply   chan<- PickResult
	cursor  int
	loading bool
}

// NewPickerModel creates a new picker model
func NewPickerModel(repo ports.VaultRepository) *PickerModel {
	input := textinput.New()
	input.Placeholder = "Filter..."

	s := spinner.New()
	s.Spinner = spinner.Dot

	return &PickerModel{
		repo:    repo,
		input:   input,
		spinner: s,
	}
}

// Open resets the picker for a new prompt and starts loading the vault
// snapshot. A previous prompt still awaiting an answer is cancelled.
func (m *PickerModel) Open(title string, exclude []string, reply chan<- PickResult) tea.Cmd {
	m.resolve(PickResult{Err: domain.ErrCancelled})

	m.title = title
	m.reply = reply
	m.exclude = make(map[string]bool, len(exclude))
	for _, path := range exclude {
		m.exclude[path] = true
	}
	m.input.SetValue("")
	m.input.Focus()
	m.files = nil
	m.matches = nil
	m.cursor = 0
	m.loading = true
	m.ClearMessage()

	return tea.Batch(textinput.Blink, m.spinner.Tick, m.loadFiles)
}

// Refresh reloads the vault snapshot, keeping the current filter.
func (m *PickerModel) Refresh() tea.Cmd {
	return m.loadFiles
}

func (m *PickerModel) loadFiles() tea.Msg {
	files, err := m.repo.List()
	return pickerFilesMsg{files: files, err: err}
}

type pickerFilesMsg struct {
	files []domain.VaultFile
	err   error
}

func (m *PickerModel) resolve(result PickResult) {
	if m.reply == nil {
		return
	}
	m.reply <- result
	m.reply = nil
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case pickerFilesMsg:
		m.loading = false
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.files = msg.files
		m.refilter()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Cancel):
			m.resolve(PickResult{Err: domain.ErrCancelled})
			return m, func() tea.Msg { return DialogClosedMsg{} }

		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PickerKeys.CopyPath):
			if file, ok := m.selected(); ok {
				clipboard.WriteAll(file.Path)
				m.SetMessage(fmt.Sprintf("Copied %s", file.Path), false)
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Select):
			if file, ok := m.selected(); ok {
				m.resolve(PickResult{File: file})
				return m, func() tea.Msg { return DialogClosedMsg{} }
			}
			return m, nil
		}
	}

	// Update input and refilter on the new query
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()

	return m, cmd
}

func (m *PickerModel) selected() (domain.VaultFile, bool) {
	if m.cursor >= 0 && m.cursor < len(m.matches) {
		return m.matches[m.cursor], true
	}
	return domain.VaultFile{}, false
}

func (m *PickerModel) refilter() {
	query := strings.ToLower(m.input.Value())

	m.matches = m.matches[:0]
	for _, file := range m.files {
		if m.exclude[file.Path] {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(file.Path), query) {
			continue
		}
		m.matches = append(m.matches, file)
	}

	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the picker
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.title))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(styles.MutedText.Render(" Scanning vault..."))
	case len(m.matches) == 0:
		b.WriteString(styles.MutedText.Render("No matching files"))
	default:
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d files", len(m.matches))))
		b.WriteString("\n\n")

		start, end := m.window()
		for i := start; i < end; i++ {
			b.WriteString(m.renderFile(m.matches[i], i == m.cursor))
			b.WriteString("\n")
		}
		if end < len(m.matches) {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.matches)-end)))
		}
	}

	b.WriteString("\n\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString(RenderHelpLine(
		PickerKeys.Up, PickerKeys.Down, PickerKeys.Select,
		PickerKeys.CopyPath, PickerKeys.Cancel,
	))

	return styles.App.Render(b.String())
}

// window returns the visible slice bounds around the cursor.
func (m *PickerModel) window() (int, int) {
	visible := m.Height - 12
	if visible < 5 {
		visible = 10
	}

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.matches) {
		end = len(m.matches)
	}
	return start, end
}

func (m *PickerModel) renderFile(file domain.VaultFile, selected bool) string {
	if selected {
		return styles.FileSelected.Render(file.Path)
	}
	if domain.IsConflictName(file.Name) {
		return styles.ConflictName.Render(file.Path)
	}
	return styles.FileRow.Render(file.Path)
}
