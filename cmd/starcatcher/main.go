// starcatcher is a terminal star catching game with a rhythm mode.
//
// Usage:
//
//	starcatcher play              - Start a session (menu, free play, rhythm, shop)
//	starcatcher songs             - List available songs
//	starcatcher scores [mode]     - Show high scores for free play or a song
//	starcatcher profile           - Show the local profile
//	starcatcher serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.starcatcher/starcatcher.db)
//	--config <path>       - Custom starcatcher.yaml
//	--difficulty <tier>   - easy, normal or hard
//	--mute                - Disable sound
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/songs"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcatcher",
	Short: "Star Catcher - catch falling stars in your terminal",
	Long: `Star Catcher is a terminal game: move the basket, catch falling stars,
and keep the combo going. Rhythm mode drops notes in time with a song and
only lets the music through while you keep catching.

Available commands:
  play     - Start a session
  songs    - List available songs
  scores   - View high scores
  profile  - Show coins, items and best score
  serve    - Start SSH server for remote play

Examples:
  starcatcher play
  starcatcher play --difficulty hard --mute
  starcatcher scores twinkle
  starcatcher serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.starcatcher/starcatcher.db", "Path to scores and profile database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom starcatcher.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(songsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the configuration and applies the difficulty flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		cfg.Difficulty.Tier = preset
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newLogger creates a logger at the level given by --log-level.
func newLogger(w io.Writer, prefix string, timestamps bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: timestamps,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// loadUserSongs registers songs from ~/.starcatcher/songs.
func loadUserSongs(logger *log.Logger) {
	n, err := songs.LoadDir(songs.UserDir())
	if err != nil {
		logger.Warn("some song files were skipped", "dir", songs.UserDir(), "err", err)
	}
	if n > 0 {
		logger.Info("loaded songs", "count", n, "dir", songs.UserDir())
	}
}
