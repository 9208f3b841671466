package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vaultdiff/internal/adapters/editor"
	"vaultdiff/internal/adapters/filesystem"
	"vaultdiff/internal/adapters/obsidian"
	"vaultdiff/internal/adapters/sqlite"
	"vaultdiff/internal/adapters/tui"
	"vaultdiff/internal/application"
	"vaultdiff/internal/config"
	"vaultdiff/internal/logging"
)

// watchDebounce batches bursts of vault events into one refresh signal.
const watchDebounce = 400 * time.Millisecond

var (
	cfgFile   string
	vaultFlag string

	cfg    *config.Config
	logger logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vaultdiff",
	Short: "Compare and merge files in a document vault",
	Long: `vaultdiff compares files in an Obsidian-style vault side by side,
walks sync conflicts one pair at a time, and resolves them by adopting
one side or deleting the conflict copy.

Run it bare for the interactive menu, or jump straight into a workflow
with the compare, merge, conflicts, and spec subcommands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for commands that only touch the config file
		switch cmd.Name() {
		case "help", "completion", "path", "init":
			return nil
		}
		return initApp()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tui.Options{})
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	closeLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&vaultFlag, "vault", "v", "", "path to the vault root")
}

func initApp() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	if vaultFlag != "" {
		cfg.Vault.Path = vaultFlag
	}

	logger = newLogger(cfg)
	return nil
}

func newLogger(cfg *config.Config) logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger()
	}

	path := cfg.Logging.File
	if path == "" {
		path = config.DefaultLogPath()
	} else {
		path = config.ExpandPath(path)
	}

	fileLogger, err := logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       path,
		Format:     logging.Format(cfg.Logging.Format),
		Level:      logging.ParseLevel(cfg.Logging.Level),
		MaxSizeMB:  10,
		MaxBackups: 3,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		return logging.NewNullLogger()
	}
	return fileLogger
}

func closeLogger() {
	if logger != nil {
		_ = logger.Close()
	}
}

// runTUI wires the adapters together and runs the interactive program,
// optionally starting a workflow right away.
func runTUI(opts tui.Options) error {
	vaultPath := cfg.VaultPath()
	if info, err := os.Stat(vaultPath); err != nil || !info.IsDir() {
		return fmt.Errorf("vault not found at %s (set vault.path in the config or pass --vault)", vaultPath)
	}

	store, err := sqlite.Open(config.StatePath())
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := filesystem.NewRepository(vaultPath)
	bridge := tui.NewBridge()
	sessions := application.NewSessionManager(logger)
	gate := application.NewRiskGate(store, bridge, logger, cfg.SettleDelay())

	workflows := &tui.Workflows{
		Repo:     repo,
		Writer:   repo,
		Gate:     gate,
		Sessions: sessions,
		History:  store,
		Dialogs:  bridge,
		View:     bridge,
		Notifier: bridge,
		Logger:   logger,
		SpecsDir: cfg.Vault.SpecsDir,
	}

	app := tui.NewApp(ctx, bridge, workflows,
		editor.NewOpener(vaultPath), obsidian.NewOpener(vaultPath),
		vaultPath, opts)

	p := tea.NewProgram(app, tea.WithAltScreen())
	bridge.SetProgram(p)

	if watcher, err := filesystem.NewWatcher(vaultPath, watchDebounce); err != nil {
		logger.Warn(ctx, "vault watcher unavailable", logging.Fields{"error": err.Error()})
	} else if err := watcher.Start(); err != nil {
		logger.Warn(ctx, "vault watcher failed to start", logging.Fields{"error": err.Error()})
	} else {
		defer watcher.Stop()
		go forwardChanges(ctx, watcher, p)
	}

	_, runErr := p.Run()
	cancel()
	sessions.Shutdown()
	return runErr
}

// forwardChanges turns watcher signals into program messages so open
// views refresh when sync tools touch the vault.
func forwardChanges(ctx context.Context, w *filesystem.Watcher, p *tea.Program) {
	for {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return
			}
			p.Send(tui.VaultChangedMsg{})

		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			logger.Error(ctx, "vault watcher error", err, nil)

		case <-ctx.Done():
			return
		}
	}
}
