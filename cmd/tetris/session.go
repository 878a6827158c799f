package main

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

// session holds what every game started from this process shares.
type session struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	logger   *log.Logger
	closeLog func() error
}

// newSession loads configuration, applies flags and opens the log.
func newSession() (*session, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagSpeed != "" {
		preset, err := config.ParseSpeedPreset(flagSpeed)
		if err != nil {
			return nil, err
		}
		config.ApplySpeedPreset(&cfg, preset)
	}

	logOpts := logging.Options{Level: cfg.Logging.Level, File: cfg.Logging.File}
	if flagDebug || flagLog != "" {
		logOpts.Level = "debug"
	}
	if flagLog != "" {
		logOpts.File = flagLog
	}
	logger, closeLog, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}
	logger.Info("config loaded", "source", source, "speed", cfg.Timing.Speed)

	rt := core.DefaultConfig()
	rt.TickRate = cfg.Timing.TickRate
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed

	// Get terminal size
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	return &session{
		cfg:      cfg,
		runtime:  rt,
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

// play runs one game session.
func (s *session) play() (tui.Outcome, error) {
	return tui.Run(tui.Options{
		Runtime: s.runtime,
		Config:  s.cfg,
		Logger:  s.logger,
	})
}

// Close flushes and closes the log file.
func (s *session) Close() {
	//nolint:errcheck // Best-effort close on exit
	s.closeLog()
}
