// Command dashboard is the terminal dashboard: profile, settings and a local
// game of tic-tac-toe.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-dashboard/internal"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/config"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		username   string
	)

	cmd := &cobra.Command{
		Use:          "dashboard",
		Short:        "Terminal dashboard with a profile page and tic-tac-toe",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			return run(cmd.Context(), conf, username)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yml", "path to the config file")
	cmd.Flags().StringVarP(&username, "user", "u", os.Getenv("USER"), "profile to open")

	return cmd
}

// loadConfig - reads path when it exists, otherwise falls back to the environment.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.LoadEnv()
	}

	return config.Load(path)
}

func run(ctx context.Context, conf *config.Config, username string) error {
	logger, closeLog, err := newLogger(conf)
	if err != nil {
		return err
	}
	defer closeLog()

	profiles, closeProfiles, err := app.OpenProfiles(ctx, logger, conf.SQLiteStoragePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeProfiles(); err != nil {
			logger.Error("could not close sqlite storage", "error", err)
		}
	}()

	model := ui.New(ctx, logger, profiles, username)

	if _, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("dashboard stopped: %w", err)
	}

	return nil
}

// newLogger - the terminal belongs to the dashboard, so logs go to a file or nowhere.
func newLogger(conf *config.Config) (*slog.Logger, func(), error) {
	if conf.TUI.LogFile == "" {
		return app.NewLogger(conf.LogLevel, io.Discard), func() {}, nil
	}

	file, err := os.OpenFile(conf.TUI.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}

	return app.NewLogger(conf.LogLevel, file), func() { _ = file.Close() }, nil
}
