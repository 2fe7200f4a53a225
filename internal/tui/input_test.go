package tui

import (
	"strings"
	"testing"
)

func TestEditRuneAppends(t *testing.T) {
	if got := editRune("ca", "t"); got != "cat" {
		t.Errorf("expected 'cat', got %q", got)
	}
}

func TestEditRuneBackspace(t *testing.T) {
	if got := editRune("cat", "backspace"); got != "ca" {
		t.Errorf("expected 'ca', got %q", got)
	}
	if got := editRune("", "backspace"); got != "" {
		t.Errorf("backspace on empty: expected empty, got %q", got)
	}
	// Rune-aware: deleting a multibyte rune removes the whole rune
	if got := editRune("caté", "backspace"); got != "cat" {
		t.Errorf("expected 'cat', got %q", got)
	}
}

func TestEditRuneIgnoresSpecialKeys(t *testing.T) {
	for _, key := range []string{"enter", "esc", "tab", "up", "ctrl+c"} {
		if got := editRune("abc", key); got != "abc" {
			t.Errorf("key %q: expected unchanged 'abc', got %q", key, got)
		}
	}
}

func TestEditRuneClampsLength(t *testing.T) {
	long := strings.Repeat("x", maxQueryLen)
	if got := editRune(long, "y"); got != long {
		t.Errorf("expected input clamped at %d runes", maxQueryLen)
	}
}

func TestTruncateToHeight(t *testing.T) {
	s := "a\nb\nc\nd\n"
	if got := truncateToHeight(s, 2); got != "a\nb\n" {
		t.Errorf("expected 2 lines, got %q", got)
	}
	if got := truncateToHeight(s, 10); got != s {
		t.Errorf("expected unchanged string when it fits, got %q", got)
	}
	if got := truncateToHeight(s, 0); got != s {
		t.Errorf("expected unchanged string for maxLines<=0, got %q", got)
	}
}
