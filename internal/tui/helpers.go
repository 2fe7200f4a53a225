package tui

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// formatTime renders a relative timestamp for the recents list.
func formatTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// gridColumns computes how many cells fit in the given width.
// Each cell budgets cellWidth visual columns; at least one column.
func gridColumns(width, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	cols := width / cellWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

// moveCursor applies a grid movement to a cursor over n items laid out in
// cols columns, clamping at the edges.
func moveCursor(cursor, n, cols int, key string) int {
	if n == 0 {
		return 0
	}
	switch key {
	case "h", "left":
		if cursor > 0 {
			cursor--
		}
	case "l", "right":
		if cursor < n-1 {
			cursor++
		}
	case "j", "down":
		if cursor+cols < n {
			cursor += cols
		}
	case "k", "up":
		if cursor-cols >= 0 {
			cursor -= cols
		}
	}
	return cursor
}
