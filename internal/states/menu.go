package states

import (
	"fmt"

	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/game"
)

var menuItems = []string{"Free Play", "Rhythm", "Shop", "Settings", "Quit"}

// Menu is the main menu.
type Menu struct {
	cursor int
}

// NewMenu creates the main menu with the cursor on Free Play.
func NewMenu() *Menu {
	return &Menu{}
}

// Name implements State.
func (m *Menu) Name() string { return "menu" }

// Update implements State.
func (m *Menu) Update(env *Env, _ float64, in core.InputFrame) State {
	if in.Has(core.ActionQuit) || in.Has(core.ActionCancel) {
		return &QuitConfirm{menu: m}
	}
	prev := m.cursor
	m.cursor = moveCursor(m.cursor, len(menuItems), in)
	if m.cursor != prev {
		env.playSelect()
	}
	if !in.Has(core.ActionConfirm) {
		return m
	}

	switch menuItems[m.cursor] {
	case "Free Play":
		return startFreePlay(env)
	case "Rhythm":
		return NewSongSelect()
	case "Shop":
		return NewShop()
	case "Settings":
		return NewSettings()
	default:
		return &QuitConfirm{menu: m}
	}
}

// Draw implements State.
func (m *Menu) Draw(env *Env, dst *core.Screen) {
	drawTitle(dst, "S T A R   C A T C H E R", "up/down select  enter confirm  esc quit")
	drawList(dst, 5, menuItems, m.cursor)

	coins := 0
	best := 0
	if env.Profile != nil {
		coins = env.Profile.Currency()
		best = env.Profile.HighScore()
	}
	dst.DrawTextCenteredColored(5+len(menuItems)+2,
		fmt.Sprintf("Best %d   Coins %d   %s", best, coins, env.Tier.Title()), core.ColorYellow)
}

func startFreePlay(env *Env) State {
	return newPlay(env, "freeplay", func(seed int64) (game.Mode, error) {
		return game.NewFreePlay(env.deps(seed)), nil
	})
}

// QuitConfirm asks before leaving the menu.
type QuitConfirm struct {
	menu *Menu
	yes  bool
}

// Name implements State.
func (q *QuitConfirm) Name() string { return "quit-confirm" }

// Update implements State.
func (q *QuitConfirm) Update(_ *Env, _ float64, in core.InputFrame) State {
	switch {
	case in.Has(core.ActionQuit):
		return nil
	case in.Has(core.ActionCancel):
		return q.menu
	case in.Has(core.ActionLeft), in.Has(core.ActionRight), in.Has(core.ActionUp), in.Has(core.ActionDown):
		q.yes = !q.yes
	case in.Has(core.ActionConfirm):
		if q.yes {
			return nil
		}
		return q.menu
	}
	return q
}

// Draw implements State.
func (q *QuitConfirm) Draw(env *Env, dst *core.Screen) {
	q.menu.Draw(env, dst)
	dst.Dim()
	yes, no := "  yes  ", "[ no ]"
	if q.yes {
		yes, no = "[ yes ]", "  no  "
	}
	drawModal(dst, []string{"Quit Star Catcher?", "", yes + "   " + no}, core.ColorRed)
}
