package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mojigrid/mojigrid/internal/prefs"
	"github.com/mojigrid/mojigrid/pkg/emoji"
)

// toneAppliedMsg reports a persisted tone choice back to the root model.
type toneAppliedMsg struct {
	glyph string
	tone  emoji.SkinTone
	err   error
}

// toneModel is the skin-tone selection overlay for one emoji.
// Cursor 0 is the default presentation; 1..5 are the Fitzpatrick tones.
type toneModel struct {
	prefs  *prefs.Store
	emoji  emoji.Emoji
	cursor int
	closed bool
	width  int
}

func newToneModel(p *prefs.Store, e emoji.Emoji) toneModel {
	m := toneModel{prefs: p, emoji: e}
	// Start on the stored preference so enter with no movement is a no-op.
	stored := p.ToneFor(e.Glyph)
	for i, t := range emoji.SkinTones {
		if t == stored {
			m.cursor = i + 1
		}
	}
	return m
}

// selectedTone maps the cursor to a tone; 0 is SkinToneNone.
func (m toneModel) selectedTone() emoji.SkinTone {
	if m.cursor == 0 {
		return emoji.SkinToneNone
	}
	return emoji.SkinTones[m.cursor-1]
}

func (m toneModel) Update(msg tea.Msg) (toneModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "esc", "q":
			m.closed = true
		case "h", "left", "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "l", "right", "j", "down":
			if m.cursor < len(emoji.SkinTones) {
				m.cursor++
			}
		case "0", "1", "2", "3", "4", "5":
			m.cursor = int(key[0] - '0')
		case "enter":
			tone := m.selectedTone()
			glyph := m.emoji.Glyph
			m.prefs.SetTone(glyph, tone)
			m.closed = true
			store := m.prefs
			return m, func() tea.Msg {
				return toneAppliedMsg{glyph: glyph, tone: tone, err: store.Save()}
			}
		}
	}
	return m, nil
}

func (m toneModel) View() string {
	cardWidth := min(46, m.width-4)
	if cardWidth < 30 {
		cardWidth = 30
	}
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Background(surfaceColor).
		Padding(1, 2).
		Width(cardWidth)

	var sb strings.Builder

	sb.WriteString(selectedStyle.Render(m.emoji.Description) + "\n")
	sb.WriteString(CategoryStyle(m.emoji.Category).Render(m.emoji.Category.Title()) + "\n")
	sb.WriteString(metaStyle.Render(strings.Repeat("─", cardWidth-6)) + "\n")

	stored := m.prefs.ToneFor(m.emoji.Glyph)

	variants := make([]emoji.SkinTone, 0, len(emoji.SkinTones)+1)
	variants = append(variants, emoji.SkinToneNone)
	variants = append(variants, emoji.SkinTones...)

	for i, t := range variants {
		glyph := m.emoji.WithTone(t).Glyph
		label := "default"
		if t != emoji.SkinToneNone {
			label = t.ID()
		}
		line := glyph + "  " + label
		if t == stored {
			line += "  " + accentStyle.Render("saved")
		}
		if i == m.cursor {
			sb.WriteString(toneMarkStyle.Render("> "+line) + "\n")
		} else {
			sb.WriteString(normalStyle.Render("  "+line) + "\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(helpEntry("0-5", "jump") + "  " + helpEntry("enter", "save") + "  " + helpEntry("esc", "close"))

	return "\n" + border.Render(sb.String())
}
