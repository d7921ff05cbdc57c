package states

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
)

// Settings edits the difficulty tier and sound.
type Settings struct {
	cursor int
}

// NewSettings creates the settings screen.
func NewSettings() *Settings {
	return &Settings{}
}

// Name implements State.
func (s *Settings) Name() string { return "settings" }

// Update implements State.
func (s *Settings) Update(env *Env, _ float64, in core.InputFrame) State {
	if in.Has(core.ActionCancel) || in.Has(core.ActionQuit) {
		return NewMenu()
	}
	s.cursor = moveCursor(s.cursor, 2, in)

	step := 0
	switch {
	case in.Has(core.ActionLeft):
		step = -1
	case in.Has(core.ActionRight), in.Has(core.ActionConfirm):
		step = 1
	}
	if step == 0 {
		return s
	}
	switch s.cursor {
	case 0:
		env.Tier = cyclePreset(env.Tier, step)
		env.Logger.Debug("difficulty changed", "tier", env.Tier)
	case 1:
		env.Muted = !env.Muted
	}
	env.playSelect()
	return s
}

func cyclePreset(p config.DifficultyPreset, step int) config.DifficultyPreset {
	i := slices.Index(config.Presets, p)
	n := len(config.Presets)
	return config.Presets[((i+step)%n+n)%n]
}

// Draw implements State.
func (s *Settings) Draw(env *Env, dst *core.Screen) {
	drawTitle(dst, "SETTINGS", "left/right change  esc back")
	sound := "on"
	if env.Muted {
		sound = "off"
	}
	interval := env.Config.Difficulty.SpawnIntervals.Interval(env.Tier)
	drawList(dst, 5, []string{
		fmt.Sprintf("Difficulty: %s", env.Tier.Title()),
		fmt.Sprintf("Sound: %s", sound),
	}, s.cursor)
	dst.DrawTextCenteredColored(9, fmt.Sprintf("A batch of stars every %d frames", interval), core.ColorGray)
}
