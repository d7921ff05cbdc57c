package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-catcher/internal/registry"
	"github.com/vovakirdan/star-catcher/internal/songs"
)

var songsCmd = &cobra.Command{
	Use:   "songs",
	Short: "List available songs",
	Long: `List the built-in songs and the songs loaded from ~/.starcatcher/songs.

Song files are YAML:

  id: scale
  title: C Major Scale
  bpm: 100
  offset: 0.5
  notes: [c4, d4, e4, f4, g4, a4, b4, "c5:2"]`,
	Args: cobra.NoArgs,
	Run:  runSongs,
}

func runSongs(_ *cobra.Command, _ []string) {
	loadUserSongs(newLogger(os.Stderr, "songs", false))

	fmt.Println("Available songs:")
	fmt.Println()
	for _, s := range registry.List() {
		d := int(s.Duration())
		fmt.Printf("  %-16s %-22s %4.0f bpm  %d:%02d\n", s.ID, s.Title, s.BPM, d/60, d%60)
	}
	fmt.Println()
	fmt.Printf("Add your own in %s\n", songs.UserDir())
}
