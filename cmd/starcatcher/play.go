package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-catcher/internal/audio"
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/platform/tui"
	"github.com/vovakirdan/star-catcher/internal/profile"
	"github.com/vovakirdan/star-catcher/internal/states"
	"github.com/vovakirdan/star-catcher/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session",
	Long: `Open the main menu. From there pick free play, a song for rhythm mode,
the shop or the settings.

Controls:
  Left/Right, A/D  - Move the basket
  Up/Down          - Menu navigation
  Enter            - Confirm
  Space/P          - Pause
  Esc/Q            - Back
  Ctrl+C           - Quit

Logs go to ~/.starcatcher/starcatcher.log.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog := openLogFile()
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loadUserSongs(logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("running without persistence", "err", err)
		store = nil
	}

	env := &states.Env{
		Config: cfg,
		Tier:   cfg.Difficulty.Tier,
		Audio:  audio.New(cfg.Audio, logger.WithPrefix("audio")),
		Owner:  storage.LocalOwner,
		Logger: logger,
		Seed:   flagSeed,
		Muted:  flagMute,
	}
	env.Profile = localProfile(store, logger)
	if store != nil {
		env.Scores = store
	}

	runErr := tui.Run(states.NewMachine(env), core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})

	if store != nil {
		store.Close()
	}
	return runErr
}

// localProfile loads the local player's profile, or an unsaved one when
// there is no database.
func localProfile(store *storage.Store, logger *log.Logger) profile.Profile {
	if store == nil {
		return profile.NewMemory(config.DefaultItems)
	}
	p, err := profile.Load(store, storage.LocalOwner, config.DefaultItems, logger.WithPrefix("profile"))
	if err != nil {
		logger.Error("could not load profile", "err", err)
		return profile.NewMemory(config.DefaultItems)
	}
	return p
}

// openLogFile logs to ~/.starcatcher/starcatcher.log since the terminal
// belongs to the game. It falls back to discarding output.
func openLogFile() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err == nil {
		dir := filepath.Join(home, ".starcatcher")
		if err = os.MkdirAll(dir, 0o755); err == nil {
			var f *os.File
			f, err = os.OpenFile(filepath.Join(dir, "starcatcher.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				return newLogger(f, "starcatcher", true), func() { f.Close() }
			}
		}
	}
	logger := newLogger(os.Stderr, "starcatcher", false)
	logger.Warn("could not open log file", "err", err)
	logger.SetOutput(io.Discard)
	return logger, func() {}
}
