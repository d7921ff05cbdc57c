package states

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/profile"
)

var shopCategories = []string{config.CategoryColor, config.CategoryBasket}

// Shop sells cosmetic items for currency. Confirm buys an item, or equips
// it when already owned.
type Shop struct {
	category int
	cursor   int
	message  string
}

// NewShop creates the shop on the first category.
func NewShop() *Shop {
	return &Shop{}
}

// Name implements State.
func (s *Shop) Name() string { return "shop" }

func (s *Shop) items(env *Env) []config.ShopItem {
	cat := shopCategories[s.category]
	var out []config.ShopItem
	for _, it := range env.Config.Shop.Items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

// Update implements State.
func (s *Shop) Update(env *Env, _ float64, in core.InputFrame) State {
	if in.Has(core.ActionCancel) || in.Has(core.ActionQuit) {
		return NewMenu()
	}
	switch {
	case in.Has(core.ActionLeft):
		s.category = (s.category + len(shopCategories) - 1) % len(shopCategories)
		s.cursor = 0
	case in.Has(core.ActionRight):
		s.category = (s.category + 1) % len(shopCategories)
		s.cursor = 0
	}
	items := s.items(env)
	s.cursor = moveCursor(s.cursor, len(items), in)

	if in.Has(core.ActionConfirm) && len(items) > 0 && env.Profile != nil {
		s.message = s.choose(env, items[s.cursor])
	}
	return s
}

func (s *Shop) choose(env *Env, it config.ShopItem) string {
	p := env.Profile
	if !p.HasItem(it.Category, it.ID) {
		err := p.Buy(it.Category, it.ID, it.Price)
		switch {
		case errors.Is(err, profile.ErrInsufficientFunds):
			return fmt.Sprintf("%s costs %d coins", it.Name, it.Price)
		case err != nil:
			return err.Error()
		}
		env.playSelect()
	}
	if err := p.Equip(it.Category, it.ID); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("%s equipped", it.Name)
}

// Draw implements State.
func (s *Shop) Draw(env *Env, dst *core.Screen) {
	drawTitle(dst, "SHOP", "left/right category  enter buy/equip  esc back")
	cat := shopCategories[s.category]
	coins := 0
	if env.Profile != nil {
		coins = env.Profile.Currency()
	}
	dst.DrawTextCenteredColored(3, fmt.Sprintf("< %s >   Coins %d", cat, coins), core.ColorYellow)

	items := s.items(env)
	rows := make([]string, len(items))
	for i, it := range items {
		status := fmt.Sprintf("%d", it.Price)
		if env.Profile != nil {
			switch {
			case env.Profile.Equipped(it.Category) == it.ID:
				status = "equipped"
			case env.Profile.HasItem(it.Category, it.ID):
				status = "owned"
			}
		}
		rows[i] = fmt.Sprintf("%-10s %8s", it.Name, status)
	}
	drawList(dst, 5, rows, s.cursor)

	for i, it := range items {
		if c, ok := core.ColorByName(it.Color); ok {
			dst.DrawTextColored((dst.Width()-21)/2-4, 5+i, "██", c)
		}
	}
	if s.message != "" {
		dst.DrawTextCentered(6+len(items), s.message)
	}
}
