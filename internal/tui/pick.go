package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mojigrid/mojigrid/internal/browser"
	"github.com/mojigrid/mojigrid/internal/catalog"
	"github.com/mojigrid/mojigrid/internal/prefs"
	"github.com/mojigrid/mojigrid/pkg/emoji"
)

// searchDebounce is how long typing must pause before the grid refilters.
const searchDebounce = 150 * time.Millisecond

// cellWidth is the visual budget per grid cell: glyph (2) + pad.
const cellWidth = 6

// searchDebounceMsg fires after a typing pause; stale sequence numbers are
// dropped so only the latest keystroke refilters.
type searchDebounceMsg struct{ seq int }

type copyResultMsg struct {
	glyph string
	err   error
}

type prefsSavedMsg struct{ err error }

type lookupResultMsg struct{ err error }

// showToneMsg asks the root model to open the tone overlay.
type showToneMsg struct{ e emoji.Emoji }

type pickModel struct {
	catalog     *catalog.Catalog
	prefs       *prefs.Store
	noClipboard bool

	category  int // index into emoji.Categories
	items     []emoji.Emoji
	cursor    int
	query     string
	editing   bool // true when typing in search
	seq       int  // debounce sequence number
	statusMsg string
	width     int
	height    int
}

func newPickModel(c *catalog.Catalog, p *prefs.Store, noClipboard bool) pickModel {
	m := pickModel{catalog: c, prefs: p, noClipboard: noClipboard}
	m.refilter()
	return m
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

// refilter rebuilds the grid contents: search results across the whole
// catalog while a query is set, otherwise the active category.
func (m *pickModel) refilter() {
	if strings.TrimSpace(m.query) != "" {
		m.items = emoji.Filter(m.catalog.All(), m.query)
	} else {
		m.items = m.catalog.ByCategory(emoji.Categories[m.category])
	}
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func (m pickModel) Update(msg tea.Msg) (pickModel, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDebounceMsg:
		if msg.seq == m.seq {
			m.refilter()
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "copied " + msg.glyph + " !"
		}
		return m, nil

	case prefsSavedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("save failed: %v", msg.err)
		}
		return m, nil

	case lookupResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("open failed: %v", msg.err)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if m.editing {
			return m.updateSearch(msg)
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

func (m pickModel) updateSearch(msg tea.KeyMsg) (pickModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.refilter()
		return m, nil
	case "esc":
		m.editing = false
		m.query = ""
		m.refilter()
		return m, nil
	default:
		next := editRune(m.query, msg.String())
		if next == m.query {
			return m, nil
		}
		m.query = next
		m.seq++
		return m, debounceCmd(m.seq)
	}
}

func (m pickModel) updateGrid(msg tea.KeyMsg) (pickModel, tea.Cmd) {
	switch key := msg.String(); key {
	case "h", "j", "k", "l", "left", "down", "up", "right":
		m.cursor = moveCursor(m.cursor, len(m.items), m.columns(), key)
	case "/":
		m.editing = true
		m.query = ""
	case "esc":
		if m.query != "" {
			m.query = ""
			m.cursor = 0
			m.refilter()
		}
	case "[":
		m.category = (m.category + len(emoji.Categories) - 1) % len(emoji.Categories)
		m.query = ""
		m.cursor = 0
		m.refilter()
	case "]":
		m.category = (m.category + 1) % len(emoji.Categories)
		m.query = ""
		m.cursor = 0
		m.refilter()
	case "enter", "c":
		if m.cursor < len(m.items) {
			return m.copySelected()
		}
	case "t":
		if m.cursor < len(m.items) {
			e := m.items[m.cursor]
			if !e.SkinTones {
				m.statusMsg = "no skin tones for " + e.Glyph
				return m, nil
			}
			return m, func() tea.Msg { return showToneMsg{e: e} }
		}
	case "o":
		if m.cursor < len(m.items) {
			desc := m.items[m.cursor].Description
			return m, func() tea.Msg {
				return lookupResultMsg{err: browser.Lookup(desc)}
			}
		}
	}
	return m, nil
}

// copySelected copies the selected emoji (with its stored tone applied) and
// records the pick. The clipboard write and prefs save run as commands.
func (m pickModel) copySelected() (pickModel, tea.Cmd) {
	e := m.items[m.cursor]
	tone := m.prefs.ToneFor(e.Glyph)
	pick := emoji.NewPick(e, tone)
	m.prefs.RememberPick(pick)

	store := m.prefs
	saveCmd := func() tea.Msg { return prefsSavedMsg{err: store.Save()} }

	if m.noClipboard {
		m.statusMsg = "picked " + pick.Glyph + " (clipboard disabled)"
		return m, saveCmd
	}
	glyph := pick.Glyph
	copyCmd := func() tea.Msg {
		return copyResultMsg{glyph: glyph, err: clipboard.WriteAll(glyph)}
	}
	return m, tea.Batch(copyCmd, saveCmd)
}

func (m pickModel) columns() int {
	return gridColumns(m.width-2, cellWidth)
}

func (m pickModel) View() string {
	var b strings.Builder

	// --- Search line ---
	if m.editing {
		b.WriteString(" " + searchStyle.Render("/ "+m.query+"█"))
	} else if m.query != "" {
		b.WriteString(" " + searchStyle.Render("/ "+m.query))
	} else {
		b.WriteString(" " + inputPlaceholderStyle.Render("/ search..."))
	}
	if m.query != "" && !m.editing {
		b.WriteString("  " + metaStyle.Render(fmt.Sprintf("%d matches", len(m.items))))
	}
	b.WriteString("\n")

	// --- Category bar (hidden while a search is active) ---
	if strings.TrimSpace(m.query) == "" {
		b.WriteString(" ")
		used := 1
		for i, cat := range emoji.Categories {
			sep := "  "
			if i == 0 {
				sep = ""
			}
			label := categoryShort[cat]
			if used+len(sep)+len(label) > m.width-8 {
				break // don't overflow
			}
			b.WriteString(sep)
			if i == m.category {
				b.WriteString(CategoryStyle(cat).Render(label))
			} else {
				b.WriteString(dimStyle.Render(label))
			}
			used += len(sep) + len(label)
		}
		b.WriteString("   " + helpEntry("[ ]", "category"))
		b.WriteString("\n")
	} else {
		b.WriteString(" " + dimStyle.Render("searching all categories") + "\n")
	}

	// Separator
	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.statusMsg != "" {
		b.WriteString(" " + statusStyle.Render(m.statusMsg) + "\n")
	}

	if len(m.items) == 0 {
		b.WriteString(" " + dimStyle.Render("no emoji found"))
		return b.String()
	}

	b.WriteString(m.viewGrid())
	b.WriteString(m.viewPreview())

	return truncateToHeight(b.String(), m.height)
}

// categoryShort maps categories to the short labels of the category bar.
var categoryShort = map[emoji.Category]string{
	emoji.CategorySmileys:    "smileys",
	emoji.CategoryPeople:     "people",
	emoji.CategoryAnimals:    "nature",
	emoji.CategoryFood:       "food",
	emoji.CategoryTravel:     "travel",
	emoji.CategoryActivities: "activity",
	emoji.CategoryObjects:    "objects",
	emoji.CategorySymbols:    "symbols",
	emoji.CategoryFlags:      "flags",
}

func (m pickModel) viewGrid() string {
	cols := m.columns()
	rows := (len(m.items) + cols - 1) / cols

	// Grid window: leave room for chrome and the preview pane.
	viewChrome := 10
	maxRows := m.height - viewChrome
	if maxRows < 3 {
		maxRows = 3
	}
	cursorRow := m.cursor / cols
	startRow := 0
	if cursorRow >= maxRows {
		startRow = cursorRow - maxRows + 1
	}

	var b strings.Builder
	for row := startRow; row < rows && row < startRow+maxRows; row++ {
		b.WriteString(" ")
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(m.items) {
				break
			}
			e := m.items[i]
			glyph := emoji.Applied(e, m.prefs.ToneFor(e.Glyph))
			pad := cellWidth - lipgloss.Width(glyph)
			if pad < 1 {
				pad = 1
			}
			cell := glyph + strings.Repeat(" ", pad)
			if i == m.cursor {
				b.WriteString(selectedRowBg.Render(cell))
			} else {
				b.WriteString(cell)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m pickModel) viewPreview() string {
	if m.cursor >= len(m.items) {
		return ""
	}
	e := m.items[m.cursor]
	tone := m.prefs.ToneFor(e.Glyph)
	glyph := emoji.Applied(e, tone)

	var b strings.Builder
	b.WriteString("\n")

	header := " " + glyph + "  " + previewDescStyle.Render(e.Description) +
		"  " + CategoryStyle(e.Category).Render(e.Category.Title())
	b.WriteString(header + "\n")

	meta := ""
	if len(e.Aliases) > 0 {
		meta = ":" + strings.Join(e.Aliases, ": :") + ":"
	}
	if len(e.Tags) > 0 {
		if meta != "" {
			meta += " · "
		}
		meta += strings.Join(e.Tags, ", ")
	}
	if meta != "" {
		b.WriteString(" " + metaStyle.Render(truncStr(meta, max(m.width-2, 20))) + "\n")
	}

	if e.SkinTones {
		var tonesRow strings.Builder
		tonesRow.WriteString(sectionHeaderStyle.Render("tones "))
		def := e.Glyph
		if tone == emoji.SkinToneNone {
			tonesRow.WriteString(toneMarkStyle.Render("[" + def + "]"))
		} else {
			tonesRow.WriteString(" " + def + " ")
		}
		for _, t := range emoji.SkinTones {
			v := emoji.Variant(e.Glyph, t, true)
			if t == tone {
				tonesRow.WriteString(toneMarkStyle.Render("[" + v + "]"))
			} else {
				tonesRow.WriteString(" " + v + " ")
			}
		}
		tonesRow.WriteString("  " + helpEntry("t", "pick tone"))
		b.WriteString(" " + tonesRow.String() + "\n")
	} else {
		b.WriteString(" " + dimStyle.Render("no skin tone variants") + "\n")
	}

	return b.String()
}
