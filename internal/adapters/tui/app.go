package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"vaultdiff/internal/adapters/tui/views"
	"vaultdiff/internal/domain"
	"vaultdiff/internal/ports"
)

// AppState represents the current view
type AppState int

const (
	StateHome AppState = iota
	StatePicker
	StateRisk
	StateDiff
	StateHelp
)

// Options configure the app's launch behavior.
type Options struct {
	// Initial starts a workflow as soon as the program runs and exits
	// the program once the workflow and its views are done.
	Initial   views.Workflow
	SpecIndex int
	File1     string
}

// App is the main TUI application model. It owns view switching, routes
// bridge messages to the dialog views, and runs workflow goroutines.
type App struct {
	ctx       context.Context
	bridge    *Bridge
	workflows *Workflows
	editor    ports.EditorOpener
	obsidian  ports.ObsidianOpener

	state  AppState
	home   *views.HomeModel
	picker *views.PickerModel
	risk   *views.RiskPromptModel
	diff   *views.DiffModel
	help   *views.HelpModel

	opts         Options
	running      bool
	diffOpen     bool
	exitWhenIdle bool

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(ctx context.Context, bridge *Bridge, workflows *Workflows, editor ports.EditorOpener, obsidian ports.ObsidianOpener, vaultPath string, opts Options) *App {
	return &App{
		ctx:       ctx,
		bridge:    bridge,
		workflows: workflows,
		editor:    editor,
		obsidian:  obsidian,
		state:     StateHome,
		home:      views.NewHomeModel(vaultPath),
		picker:    views.NewPickerModel(workflows.Repo),
		risk:      views.NewRiskPromptModel(),
		diff: views.NewDiffModel(
			workflows.Sessions, workflows.Repo, workflows.Writer,
			workflows.History, workflows.Logger,
		),
		help:         views.NewHelpModel(),
		opts:         opts,
		exitWhenIdle: opts.Initial != views.WorkflowNone,
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	if a.opts.Initial == views.WorkflowNone {
		return nil
	}
	return func() tea.Msg {
		return views.StartWorkflowMsg{
			Workflow: a.opts.Initial,
			Index:    a.opts.SpecIndex,
			File1:    a.opts.File1,
		}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		a.workflows.Sessions.Shutdown()
		return a, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.home.SetSize(msg.Width, msg.Height)
		a.picker.SetSize(msg.Width, msg.Height)
		a.risk.SetSize(msg.Width, msg.Height)
		a.diff.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// Workflow lifecycle
	case views.StartWorkflowMsg:
		if a.running {
			a.setStatus("A review is already running", true)
			return a, nil
		}
		a.running = true
		go a.runWorkflow(msg)
		return a, nil

	case workflowDoneMsg:
		a.running = false
		if msg.err != nil && !errors.Is(msg.err, domain.ErrCancelled) && !errors.Is(msg.err, context.Canceled) {
			// Keep the program open so the failure stays readable even
			// on single-workflow launches.
			a.setStatus(msg.err.Error(), true)
			a.exitWhenIdle = false
			return a, nil
		}
		return a, a.maybeQuit()

	// Bridge messages
	case showPickerMsg:
		a.state = StatePicker
		return a, a.picker.Open(msg.title, msg.exclude, msg.reply)

	case showRiskMsg:
		a.state = StateRisk
		a.risk.Open(msg.reply)
		return a, nil

	case showComparisonMsg:
		a.state = StateDiff
		a.diffOpen = true
		return a, a.diff.SetSession(msg.session)

	case notifyMsg:
		a.setStatus(msg.text, false)
		return a, nil

	case VaultChangedMsg:
		switch a.state {
		case StatePicker:
			return a, a.picker.Refresh()
		case StateDiff:
			return a, a.diff.Reload()
		}
		return a, nil

	// View messages
	case views.SwitchToHelpMsg:
		a.state = StateHelp
		return a, nil

	case views.DialogClosedMsg:
		if a.diffOpen {
			a.state = StateDiff
		} else {
			a.state = StateHome
		}
		return a, nil

	case views.ComparisonClosedMsg:
		a.diffOpen = false
		a.state = StateHome
		return a, a.maybeQuit()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.setStatus(msg.err.Error(), true)
			return a, nil
		}
		return a, a.diff.Reload()

	case views.OpenObsidianMsg:
		return a, a.openObsidian(msg.Path)

	case obsidianFinishedMsg:
		if msg.err != nil {
			a.setStatus(msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case StateHome:
		_, cmd = a.home.Update(msg)
	case StatePicker:
		_, cmd = a.picker.Update(msg)
	case StateRisk:
		_, cmd = a.risk.Update(msg)
	case StateDiff:
		_, cmd = a.diff.Update(msg)
	case StateHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) runWorkflow(msg views.StartWorkflowMsg) {
	err := a.workflows.Run(a.ctx, msg.Workflow, msg.Index, msg.File1)
	a.bridge.send(workflowDoneMsg{err: err})
}

// maybeQuit exits a single-workflow launch once nothing is running and
// no comparison is on screen.
func (a *App) maybeQuit() tea.Cmd {
	if a.exitWhenIdle && !a.running && !a.diffOpen {
		return tea.Quit
	}
	return nil
}

func (a *App) setStatus(text string, isErr bool) {
	switch a.state {
	case StatePicker:
		a.picker.SetMessage(text, isErr)
	case StateDiff:
		a.diff.SetMessage(text, isErr)
	default:
		a.home.SetMessage(text, isErr)
	}
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

type obsidianFinishedMsg struct{ err error }

func (a *App) openObsidian(path string) tea.Cmd {
	if a.obsidian == nil {
		return nil
	}
	return func() tea.Msg {
		return obsidianFinishedMsg{err: a.obsidian.OpenFile(path)}
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case StatePicker:
		return a.picker.View()
	case StateRisk:
		return a.risk.View()
	case StateDiff:
		return a.diff.View()
	case StateHelp:
		return a.help.View()
	default:
		return a.home.View()
	}
}
