package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mojigrid/mojigrid/internal/catalog"
	"github.com/mojigrid/mojigrid/internal/prefs"
	"github.com/mojigrid/mojigrid/pkg/emoji"
)

// toneEntry is one stored tone preference, resolved against the catalog.
type toneEntry struct {
	base emoji.Emoji
	tone emoji.SkinTone
}

// tonesModel lists every stored skin tone preference and lets the user
// clear or re-pick them.
type tonesModel struct {
	catalog   *catalog.Catalog
	prefs     *prefs.Store
	entries   []toneEntry
	cursor    int
	statusMsg string
	width     int
	height    int
}

func newTonesModel(c *catalog.Catalog, p *prefs.Store) tonesModel {
	m := tonesModel{catalog: c, prefs: p}
	m.reload()
	return m
}

func (m tonesModel) Init() tea.Cmd {
	return nil
}

// reload rebuilds the entry list from the store, sorted by description so
// the order is stable across saves.
func (m *tonesModel) reload() {
	stored := m.prefs.Tones()
	entries := make([]toneEntry, 0, len(stored))
	for glyph, tone := range stored {
		base, ok := m.catalog.FindByGlyph(glyph)
		if !ok {
			// Pref for an emoji no longer in the catalog; show it raw.
			base = emoji.Emoji{Glyph: glyph, Description: glyph, SkinTones: true}
		}
		entries = append(entries, toneEntry{base: base, tone: tone})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].base.Description < entries[j].base.Description
	})
	m.entries = entries
	if m.cursor >= len(m.entries) {
		m.cursor = 0
	}
}

func (m tonesModel) Update(msg tea.Msg) (tonesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case prefsSavedMsg:
		if msg.err != nil {
			m.statusMsg = "save failed: " + msg.err.Error()
		}
		return m, nil

	case toneAppliedMsg:
		m.reload()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter", "t":
			if m.cursor < len(m.entries) {
				e := m.entries[m.cursor].base
				return m, func() tea.Msg { return showToneMsg{e: e} }
			}
		case "x":
			if m.cursor < len(m.entries) {
				entry := m.entries[m.cursor]
				m.prefs.ClearTone(entry.base.Glyph)
				m.reload()
				m.statusMsg = "cleared tone for " + entry.base.Glyph
				store := m.prefs
				return m, func() tea.Msg { return prefsSavedMsg{err: store.Save()} }
			}
		}
		return m, nil
	}
	return m, nil
}

func (m tonesModel) View() string {
	var b strings.Builder
	b.WriteString(" " + sectionHeaderStyle.Render("SAVED SKIN TONES") + "\n")

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.statusMsg != "" {
		b.WriteString(" " + statusStyle.Render(m.statusMsg) + "\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(" " + dimStyle.Render("no saved tones — press t on an emoji in the grid"))
		return b.String()
	}

	maxVisible := m.height - 4
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	for i := start; i < len(m.entries) && i < start+maxVisible; i++ {
		entry := m.entries[i]
		toned := entry.base.WithTone(entry.tone)

		cursor := "  "
		lineStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			lineStyle = normalStyle
		}

		line := cursor + toned.Glyph + "  " + lineStyle.Render(truncStr(entry.base.Description, 32)) +
			"  " + toneMarkStyle.Render(entry.tone.ID())
		b.WriteString(" " + line + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}
