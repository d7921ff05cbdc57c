package states

import (
	"unicode/utf8"

	"github.com/vovakirdan/star-catcher/internal/core"
)

// moveCursor applies up/down presses to a list cursor with wraparound.
func moveCursor(cursor, n int, in core.InputFrame) int {
	if n == 0 {
		return 0
	}
	if in.Has(core.ActionUp) {
		cursor--
	}
	if in.Has(core.ActionDown) {
		cursor++
	}
	return (cursor%n + n) % n
}

// drawList renders a vertical menu with the cursor row highlighted.
func drawList(dst *core.Screen, top int, items []string, cursor int) {
	for i, item := range items {
		if i == cursor {
			dst.DrawTextCenteredColored(top+i, "> "+item+" <", core.ColorBrightYellow)
			continue
		}
		dst.DrawTextCentered(top+i, item)
	}
}

// drawModal draws a centered box with the given lines.
func drawModal(dst *core.Screen, lines []string, color core.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	w += 4
	h := len(lines) + 2
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	box := core.NewCellRect(x, y, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)
	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l)
	}
}

// drawTitle draws a screen heading with a hint line at the bottom.
func drawTitle(dst *core.Screen, title, hint string) {
	dst.DrawTextCenteredColored(1, title, core.ColorBrightCyan)
	if hint != "" {
		dst.DrawTextCenteredColored(dst.Height()-1, hint, core.ColorGray)
	}
}
