package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fifteen/internal/config"
	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/games/fifteen"
)

const (
	envConfig   = config.EnvConfigPath
	envLogLevel = "FIFTEEN_LOG_LEVEL"
)

var (
	logger   *log.Logger
	logFile  io.Closer
	settings config.FifteenConfig
)

// setup builds the logger and loads the settings every command shares.
func setup(cmd *cobra.Command, _ []string) error {
	lg, closer, err := newLogger(cmd)
	if err != nil {
		return err
	}
	logger = lg
	logFile = closer

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	settings = cfg
	fifteen.SetConfig(cfg)

	logger.Debug("settings loaded", "edge", cfg.Board.Edge, "frames", cfg.Animation.Frames)
	return nil
}

// teardown closes the log file, if one was opened.
func teardown(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

// newLogger returns a logger writing to --log-file, or discarding output.
// The terminal belongs to the game, so logs never go to stdout.
func newLogger(cmd *cobra.Command) (*log.Logger, io.Closer, error) {
	levelName := flagLogLevel
	if env := os.Getenv(envLogLevel); env != "" && !cmd.Flags().Changed("log-level") {
		levelName = env
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f
	}

	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fifteen",
		Level:           level,
	})
	return lg, closer, nil
}

// loadSettings resolves the config file and applies flag overrides.
func loadSettings() (config.FifteenConfig, error) {
	cfg, err := config.LoadFifteen(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeed)); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(fifteen.Size); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
