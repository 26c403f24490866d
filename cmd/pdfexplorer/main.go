package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/joshuapare/pdfexplorer/cmd/pdfexplorer/logger"
	"github.com/joshuapare/pdfexplorer/internal/config"
	"github.com/joshuapare/pdfexplorer/internal/session"
	"github.com/joshuapare/pdfexplorer/pkg/recent"
	"github.com/joshuapare/pdfexplorer/pkg/types"
)

// Set by the linker.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// options are the parsed command line.
type options struct {
	password   string
	file       string
	configFile string
}

func main() {
	cmd := newRootCmd(runUI)
	cmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command line. run receives the parsed options once
// flags and arguments are valid.
func newRootCmd(run func(cmd *cobra.Command, opts options) error) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "pdfexplorer [-password <value>] [file]",
		Short: "Browse the object graph of a PDF document",
		Long: `pdfexplorer is an interactive terminal viewer for the low-level objects of a
PDF file: dictionaries, arrays, streams, names, numbers and strings, starting
from the trailer. Separation colour spaces open in a colour panel.`,
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 1 {
				opts.file = args[0]
			}
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.password, "password", "", "Password for an encrypted document")
	cmd.Flags().BoolP("debug", "d", false, "Enable debug logging to ~/.pdfexplorer/logs/")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/pdfexplorer/config.yaml)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		msg := err.Error()
		if strings.Contains(msg, "needs an argument") && strings.Contains(msg, "password") {
			return types.ErrMissingPassword
		}
		return types.Wrap(types.ErrKindUsage, "invalid arguments", err)
	})
	return cmd
}

// normalizeArgs accepts the single-dash long form -password alongside
// --password. Arguments after "--" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		if a == "-password" || strings.HasPrefix(a, "-password=") {
			a = "-" + a
		}
		out = append(out, a)
	}
	return out
}

// runUI opens the requested file, if any, and runs the terminal UI until the
// user quits.
func runUI(cmd *cobra.Command, opts options) error {
	cfg, err := config.Load(config.Options{File: opts.configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}

	logPath, err := logger.Init(logger.Options{
		Enabled: cfg.Debug,
		LogDir:  cfg.LogDir,
		Level:   slog.LevelDebug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}
	logger.Info("starting pdfexplorer", "version", version, "file", opts.file, "log", logPath)

	store, err := recent.New(cfg.RecentName, cfg.RecentMax, cfg.RecentBackend())
	if err != nil {
		// An unreadable list is replaced rather than blocking start-up.
		logger.Warn("recent files unavailable", "error", err)
		store, err = recent.New(cfg.RecentName, cfg.RecentMax, recent.NewMemoryBackend())
		if err != nil {
			return err
		}
	}

	m := NewModel(session.New(nil, store))
	if opts.file != "" {
		m, _ = m.tryOpen(opts.file, opts.password)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("running UI: %w", err)
	}

	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil && !errors.Is(err, types.ErrState) {
			logger.Warn("error closing document", "error", err)
		}
	}
	logger.Info("pdfexplorer exited normally")
	return nil
}
