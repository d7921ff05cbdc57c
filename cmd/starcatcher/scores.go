package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-catcher/internal/game"
	"github.com/vovakirdan/star-catcher/internal/platform/tui"
	"github.com/vovakirdan/star-catcher/internal/registry"
	"github.com/vovakirdan/star-catcher/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for free play or a song.

The mode is "freeplay" (default) or a song id from 'starcatcher songs'.

Examples:
  starcatcher scores
  starcatcher scores twinkle
  starcatcher scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all leaderboards in a table")
}

// scoreMode resolves a command line mode argument to a stored mode.
func scoreMode(arg string) (mode, title string, err error) {
	switch {
	case arg == "" || arg == game.ModeFreePlay:
		return game.ModeFreePlay, "Free Play", nil
	case registry.Exists(arg):
		song, _ := registry.Get(arg)
		return game.RhythmMode(arg), song.Title, nil
	}
	return "", "", fmt.Errorf("unknown mode %q, run 'starcatcher songs' to see song ids", arg)
}

func runScores(_ *cobra.Command, args []string) error {
	loadUserSongs(newLogger(os.Stderr, "songs", false))

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	mode, title, err := scoreMode(arg)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, mode, width, height)
	}

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'starcatcher play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %-10d  %s\n", i+1, entry.Owner, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetModeStats(mode); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %d   Average: %.0f\n", stats.HighScore, stats.Sessions, stats.AvgScore)
	}
	return nil
}
