package game

import (
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/profile"
)

// Theme is the read-only cosmetic state injected into spawners and the actor.
type Theme struct {
	StarColor  core.Color
	NoteColor  core.Color
	CoinColor  core.Color
	ActorColor core.Color
	ActorWidth float64 // 0 keeps the configured width
}

// ResolveTheme derives the theme from the configuration and the items the
// profile has equipped. A nil profile uses the configured defaults.
func ResolveTheme(cfg config.Config, p profile.Profile) Theme {
	t := Theme{
		StarColor:  colorOr(cfg.Collectible.Color, core.ColorBrightYellow),
		NoteColor:  colorOr(cfg.Rhythm.NoteColor, core.ColorBrightMagenta),
		CoinColor:  colorOr(cfg.Currency.Color, core.ColorYellow),
		ActorColor: colorOr(cfg.Actor.Color, core.ColorWhite),
	}
	if p == nil {
		return t
	}
	if item, ok := cfg.Shop.Item(config.CategoryColor, p.Equipped(config.CategoryColor)); ok {
		t.StarColor = colorOr(item.Color, t.StarColor)
	}
	if item, ok := cfg.Shop.Item(config.CategoryBasket, p.Equipped(config.CategoryBasket)); ok {
		t.ActorColor = colorOr(item.Color, t.ActorColor)
		if item.Width > 0 {
			t.ActorWidth = item.Width
		}
	}
	return t
}

func colorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ColorByName(name); ok {
		return c
	}
	return fallback
}
