package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/star-catcher/internal/core"
)

// hud is the text around the playfield frame.
type hud struct {
	Left   string
	Right  string
	Bottom string
}

func (h hud) draw(dst *core.Screen) {
	dst.DrawTextColored(1, 0, h.Left, core.ColorYellow)
	if w := utf8.RuneCountInString(h.Right); w > 0 && w+utf8.RuneCountInString(h.Left)+3 <= dst.Width() {
		dst.DrawTextColored(dst.Width()-w-1, 0, h.Right, core.ColorCyan)
	}
	dst.DrawTextCenteredColored(dst.Height()-1, h.Bottom, core.ColorGray)
}

// clockText formats seconds as mm:ss.
func clockText(secs float64) string {
	s := int(max(0, secs))
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
