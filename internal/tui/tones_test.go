package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mojigrid/mojigrid/pkg/emoji"
)

func newTestTonesModel(t *testing.T) tonesModel {
	t.Helper()
	m := newTonesModel(newTestCatalog(t), newTestStore(t))
	m.width = 80
	m.height = 30
	return m
}

func setTestTone(t *testing.T, m *tonesModel, name string, tone emoji.SkinTone) {
	t.Helper()
	e, ok := m.catalog.Find(name)
	if !ok {
		t.Fatalf("%q not in catalog", name)
	}
	m.prefs.SetTone(e.Glyph, tone)
	m.reload()
}

func TestTonesEmptyState(t *testing.T) {
	m := newTestTonesModel(t)
	if !strings.Contains(m.View(), "no saved tones") {
		t.Errorf("expected empty state, got:\n%s", m.View())
	}
}

func TestTonesListsStoredPreferences(t *testing.T) {
	m := newTestTonesModel(t)
	setTestTone(t, &m, "thumbsup", emoji.SkinToneMedium)
	setTestTone(t, &m, "wave", emoji.SkinToneDark)

	view := m.View()
	if !strings.Contains(view, "thumbs up") {
		t.Errorf("expected 'thumbs up' in tones view, got:\n%s", view)
	}
	if !strings.Contains(view, "waving hand") {
		t.Errorf("expected 'waving hand' in tones view, got:\n%s", view)
	}
	if !strings.Contains(view, "medium") || !strings.Contains(view, "dark") {
		t.Errorf("expected tone ids in tones view, got:\n%s", view)
	}
}

func TestTonesSortedByDescription(t *testing.T) {
	m := newTestTonesModel(t)
	setTestTone(t, &m, "wave", emoji.SkinToneDark)
	setTestTone(t, &m, "thumbsup", emoji.SkinToneMedium)

	if len(m.entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m.entries))
	}
	if m.entries[0].base.Description != "thumbs up" {
		t.Errorf("expected 'thumbs up' first, got %q", m.entries[0].base.Description)
	}
}

func TestTonesClearPreference(t *testing.T) {
	m := newTestTonesModel(t)
	setTestTone(t, &m, "thumbsup", emoji.SkinToneMedium)
	glyph := m.entries[0].base.Glyph

	m, cmd := m.Update(keyRunes("x"))
	if m.prefs.ToneFor(glyph) != emoji.SkinToneNone {
		t.Error("expected preference cleared after x")
	}
	if len(m.entries) != 0 {
		t.Errorf("expected entry list emptied, got %d entries", len(m.entries))
	}
	if cmd == nil {
		t.Error("expected save command after clear")
	}
}

func TestTonesEnterReopensOverlay(t *testing.T) {
	m := newTestTonesModel(t)
	setTestTone(t, &m, "thumbsup", emoji.SkinToneMedium)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on enter")
	}
	msg, ok := cmd().(showToneMsg)
	if !ok {
		t.Fatalf("expected showToneMsg, got %T", cmd())
	}
	if msg.e.Description != "thumbs up" {
		t.Errorf("expected overlay for thumbs up, got %q", msg.e.Description)
	}
}

func TestTonesUnknownGlyphShownRaw(t *testing.T) {
	m := newTestTonesModel(t)
	m.prefs.SetTone("🤷‍♀️🤷‍♀️", emoji.SkinToneLight) // not a catalog glyph
	m.reload()

	if len(m.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(m.entries))
	}
	if m.entries[0].base.Glyph != "🤷‍♀️🤷‍♀️" {
		t.Errorf("expected raw glyph kept, got %q", m.entries[0].base.Glyph)
	}
}
