package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/storage"
)

var flagOwner string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show coins, items and best score",
	Long: `Show a player's profile: best score, coins, owned and equipped items.

SSH players are stored under their SSH user name.

Examples:
  starcatcher profile
  starcatcher profile --owner alice`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&flagOwner, "owner", storage.LocalOwner, "Profile owner")
}

func runProfile(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	rec, err := store.LoadProfile(flagOwner)
	if err != nil {
		return err
	}

	fmt.Printf("Profile - %s\n", flagOwner)
	fmt.Println()
	fmt.Printf("  Best score: %d\n", rec.HighScore)
	fmt.Printf("  Coins:      %d\n", rec.Currency)

	for _, cat := range []string{config.CategoryColor, config.CategoryBasket} {
		fmt.Println()
		fmt.Printf("  %s:\n", cat)
		equipped := rec.Equipped[cat]
		if equipped == "" {
			equipped = config.DefaultItems[cat]
		}
		for _, it := range cfg.Shop.Items {
			if it.Category != cat {
				continue
			}
			status := fmt.Sprintf("%d coins", it.Price)
			switch {
			case it.ID == equipped:
				status = "equipped"
			case slices.Contains(rec.Owned[cat], it.ID) || it.ID == config.DefaultItems[cat]:
				status = "owned"
			}
			fmt.Printf("    %-10s %s\n", it.Name, status)
		}
	}
	return nil
}
