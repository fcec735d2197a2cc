package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/fa2en/internal/config"
	"github.com/studiowebux/fa2en/internal/history"
	"github.com/studiowebux/fa2en/internal/keybinds"
	"github.com/studiowebux/fa2en/internal/keymap"
	"github.com/studiowebux/fa2en/internal/logging"
	"github.com/studiowebux/fa2en/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fa2en",
	Short: "Persian to English keyboard mapping editor",
	Long: `fa2en edits the table that maps Persian keyboard characters to the
English keys at the same physical position.

Run without arguments to open the grid editor. The mapping is stored on one
line in ~/.fa2en_config as persian:english pairs joined by '|'.

Examples:
  fa2en                        # Open the grid editor
  fa2en show                   # Print the mapping as a table
  fa2en set ب f                # Change one entry and save
  fa2en export -f yaml > my.yaml
  fa2en import my.yaml
  fa2en diff                   # Compare with the default layout
  fa2en reset                  # Write the default layout`,
	Version:           version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

// Persistent flags
var (
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagLogJSON  bool
	flagDebug    bool
)

// app holds what setup resolved for the running command
var app struct {
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
	history  *history.Manager
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Mapping file (default ~/.fa2en_config, or $FA2EN_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug/info/warn/error)")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging to ~/.fa2en/fa2en.log")

	addCommands(rootCmd)

	// Finalizers run even when a command fails
	cobra.OnFinalize(teardown)
}

// setup resolves paths, opens the log and the history database
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagConfig != "" {
		path, err := config.ExpandPath(flagConfig)
		if err != nil {
			return err
		}
		cfg.MappingFile = path
	}
	app.cfg = cfg

	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logPath := flagLogFile
	if flagDebug {
		level = slog.LevelDebug
		if logPath == "" {
			logPath = cfg.LogFile
		}
	}

	logger, closeLog, err := logging.New(logging.Config{
		Version: version,
		Path:    logPath,
		Level:   level,
		JSON:    flagLogJSON,
	})
	if err != nil {
		return err
	}
	app.logger = logger
	app.closeLog = closeLog
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	logger.Debug("starting", "command", cmd.CommandPath(), "mapping_file", cfg.MappingFile)

	// History is optional; the editor works without it
	if err := cfg.EnsureDataDir(); err != nil {
		logger.Warn("data directory unavailable, history disabled", "error", err)
		return nil
	}
	mgr, err := history.NewManager(cfg.HistoryDB)
	if err != nil {
		logger.Warn("history database unavailable", "path", cfg.HistoryDB, "error", err)
		return nil
	}
	app.history = mgr

	return nil
}

// teardown closes the history database and the log file
func teardown() {
	if app.history != nil {
		if err := app.history.Close(); err != nil {
			app.logger.Warn("failed to close history", "error", err)
		}
		app.history = nil
	}
	if app.closeLog != nil {
		if err := app.closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log: %v\n", err)
		}
		app.closeLog = nil
	}
}

// newEditor opens the mapping file; saves are recorded in history with source
func newEditor(cmd *cobra.Command, source string) (*keymap.Editor, error) {
	logger := logging.FromContext(cmd.Context())
	opts := []keymap.Option{keymap.WithLogger(logger)}
	if app.history != nil {
		opts = append(opts, keymap.WithSaveHook(app.history.Hook(app.cfg.MappingFile, source)))
	}
	return keymap.NewEditor(keymap.NewStore(app.cfg.MappingFile), opts...)
}

// runTUI starts the interactive grid editor
func runTUI(cmd *cobra.Command) error {
	logger := logging.FromContext(cmd.Context())

	// A load error is shown inside the editor
	editor, loadErr := newEditor(cmd, history.SourceTUI)

	registry, err := keybinds.LoadOrDefault(app.cfg.KeybindsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring keybinds file: %v\n", err)
		logger.Warn("keybinds file ignored", "path", app.cfg.KeybindsFile, "error", err)
		registry = keybinds.NewDefaultRegistry()
	}

	return tui.Run(tui.Options{
		Editor:   editor,
		LoadErr:  loadErr,
		Keybinds: registry,
		Logger:   logger,
		Version:  version,
	})
}
