package tui

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-49 * time.Hour), "2d ago"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatTime(tc.t); got != tc.want {
				t.Errorf("formatTime = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTruncStr(t *testing.T) {
	if got := truncStr("short", 10); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}
	if got := truncStr("a very long description here", 10); got != "a very lo…" {
		t.Errorf("expected truncated string with ellipsis, got %q", got)
	}
	// Rune-aware: multibyte input must not be split mid-rune
	if got := truncStr("ééééééé", 5); got != "éééé…" {
		t.Errorf("expected rune-aware truncation, got %q", got)
	}
}

func TestGridColumns(t *testing.T) {
	if got := gridColumns(60, 6); got != 10 {
		t.Errorf("expected 10 columns for width 60, got %d", got)
	}
	if got := gridColumns(3, 6); got != 1 {
		t.Errorf("expected at least 1 column for tiny width, got %d", got)
	}
	if got := gridColumns(10, 0); got != 10 {
		t.Errorf("expected cellWidth to clamp to 1, got %d", got)
	}
}

func TestMoveCursorHorizontal(t *testing.T) {
	// 10 items, 4 columns
	if got := moveCursor(0, 10, 4, "l"); got != 1 {
		t.Errorf("l from 0: expected 1, got %d", got)
	}
	if got := moveCursor(0, 10, 4, "h"); got != 0 {
		t.Errorf("h at left edge: expected 0, got %d", got)
	}
	if got := moveCursor(9, 10, 4, "l"); got != 9 {
		t.Errorf("l at last item: expected 9, got %d", got)
	}
}

func TestMoveCursorVertical(t *testing.T) {
	if got := moveCursor(1, 10, 4, "j"); got != 5 {
		t.Errorf("j from 1: expected 5, got %d", got)
	}
	if got := moveCursor(5, 10, 4, "k"); got != 1 {
		t.Errorf("k from 5: expected 1, got %d", got)
	}
	// Down past the last row is clamped
	if got := moveCursor(8, 10, 4, "j"); got != 8 {
		t.Errorf("j from 8 with 10 items: expected 8, got %d", got)
	}
	if got := moveCursor(2, 10, 4, "k"); got != 2 {
		t.Errorf("k from top row: expected 2, got %d", got)
	}
}

func TestMoveCursorEmpty(t *testing.T) {
	if got := moveCursor(3, 0, 4, "j"); got != 0 {
		t.Errorf("expected 0 for empty list, got %d", got)
	}
}
