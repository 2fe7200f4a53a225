package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mojigrid/mojigrid/internal/catalog"
	"github.com/mojigrid/mojigrid/internal/prefs"
)

// recentsModel lists past picks, newest first, and re-copies on enter.
type recentsModel struct {
	catalog     *catalog.Catalog
	prefs       *prefs.Store
	noClipboard bool
	cursor      int
	statusMsg   string
	width       int
	height      int
}

func newRecentsModel(c *catalog.Catalog, p *prefs.Store, noClipboard bool) recentsModel {
	return recentsModel{catalog: c, prefs: p, noClipboard: noClipboard}
}

func (m recentsModel) Init() tea.Cmd {
	return nil
}

func (m recentsModel) Update(msg tea.Msg) (recentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = "copy failed: " + msg.err.Error()
		} else {
			m.statusMsg = "copied " + msg.glyph + " !"
		}
		return m, nil

	case prefsSavedMsg:
		if msg.err != nil {
			m.statusMsg = "save failed: " + msg.err.Error()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		n := len(m.prefs.Recents)
		switch msg.String() {
		case "j", "down":
			if m.cursor < n-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter", "c":
			if m.cursor < n {
				glyph := m.prefs.Recents[m.cursor].Glyph
				if m.noClipboard {
					m.statusMsg = "picked " + glyph + " (clipboard disabled)"
					return m, nil
				}
				return m, func() tea.Msg {
					return copyResultMsg{glyph: glyph, err: clipboard.WriteAll(glyph)}
				}
			}
		case "x":
			if m.cursor < n {
				m.prefs.Recents = append(m.prefs.Recents[:m.cursor], m.prefs.Recents[m.cursor+1:]...)
				if m.cursor >= len(m.prefs.Recents) && m.cursor > 0 {
					m.cursor--
				}
				store := m.prefs
				return m, func() tea.Msg { return prefsSavedMsg{err: store.Save()} }
			}
		}
		return m, nil
	}
	return m, nil
}

func (m recentsModel) View() string {
	var b strings.Builder
	b.WriteString(" " + sectionHeaderStyle.Render("RECENT PICKS") + "\n")

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.statusMsg != "" {
		b.WriteString(" " + statusStyle.Render(m.statusMsg) + "\n")
	}

	picks := m.prefs.Recents
	if len(picks) == 0 {
		b.WriteString(" " + dimStyle.Render("nothing picked yet — copy something from the grid"))
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

	for i := start; i < len(picks) && i < start+maxVisible; i++ {
		p := picks[i]

		cursor := "  "
		lineStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			lineStyle = normalStyle
		}

		desc := p.Base
		if e, ok := m.catalog.FindByGlyph(p.Base); ok {
			desc = e.Description
		}
		toneCol := ""
		if p.Tone != "" {
			toneCol = "  " + toneMarkStyle.Render(p.Tone)
		}

		line := cursor + p.Glyph + "  " + lineStyle.Render(truncStr(desc, 32)) + toneCol +
			"  " + metaStyle.Render(formatTime(p.PickedAt))
		b.WriteString(" " + line + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}
