package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mojigrid/mojigrid/internal/browser"
	"github.com/mojigrid/mojigrid/internal/catalog"
	"github.com/mojigrid/mojigrid/internal/prefs"
)

type view int

const (
	viewPick view = iota
	viewRecents
	viewTones
)

// App is the root Bubbletea model.
type App struct {
	catalog    *catalog.Catalog
	prefs      *prefs.Store
	version    string
	view       view
	pick       pickModel
	recents    recentsModel
	tones      tonesModel
	tone       toneModel
	toneOpen   bool
	helpOpen   bool
	helpCursor int
	latest     string // newer release tag, if any
	width      int
	height     int
	frame      int // logo shimmer animation frame
}

// NewApp creates a new TUI application.
func NewApp(c *catalog.Catalog, p *prefs.Store, version string, noClipboard bool) App {
	return App{
		catalog: c,
		prefs:   p,
		version: version,
		pick:    newPickModel(c, p, noClipboard),
		recents: newRecentsModel(c, p, noClipboard),
		tones:   newTonesModel(c, p),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(shimmerTickCmd(), checkVersion(a.version))
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.pick, _ = a.pick.Update(bodyMsg)
		a.recents, _ = a.recents.Update(bodyMsg)
		a.tones, _ = a.tones.Update(bodyMsg)
		a.tone, _ = a.tone.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case versionCheckMsg:
		if msg.hasUpdate {
			a.latest = msg.latestVersion
		}
		return a, nil

	case showToneMsg:
		a.toneOpen = true
		a.tone = newToneModel(a.prefs, msg.e)
		return a, nil

	case toneAppliedMsg:
		a.toneOpen = false
		if msg.err != nil {
			a.pick.statusMsg = fmt.Sprintf("save failed: %v", msg.err)
		} else {
			a.pick.statusMsg = "tone saved for " + msg.glyph
		}
		a.tones, _ = a.tones.Update(msg)
		return a, nil

	case tea.KeyMsg:
		// Help overlay captures all keys when open
		if a.helpOpen {
			switch msg.String() {
			case "?", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				item := helpItems[a.helpCursor]
				if item.url != "" {
					browser.Open(item.url) //nolint:errcheck // best-effort browser open
				}
			}
			return a, nil
		}

		// Tone overlay captures all keys when open
		if a.toneOpen {
			var cmd tea.Cmd
			a.tone, cmd = a.tone.Update(msg)
			if a.tone.closed {
				a.toneOpen = false
			}
			return a, cmd
		}

		// Global keys (only when not typing in the search box)
		if !a.isEditing() {
			switch msg.String() {
			case "?":
				a.helpOpen = true
				a.helpCursor = 0
				return a, nil
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.view = viewPick
				return a, nil
			case "2":
				a.view = viewRecents
				return a, nil
			case "3":
				a.view = viewTones
				a.tones.reload()
				return a, nil
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	// Route tone overlay messages when open
	if a.toneOpen {
		var cmd tea.Cmd
		a.tone, cmd = a.tone.Update(msg)
		if a.tone.closed {
			a.toneOpen = false
		}
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.view {
	case viewPick:
		a.pick, cmd = a.pick.Update(msg)
	case viewRecents:
		a.recents, cmd = a.recents.Update(msg)
	case viewTones:
		a.tones, cmd = a.tones.Update(msg)
	}

	return a, cmd
}

func (a App) isEditing() bool {
	return a.view == viewPick && a.pick.editing
}

func (a App) View() string {
	// Header: centered shimmer logo
	logo := renderShimmerLogo(a.frame)

	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	// Version line below logo
	verLine := metaStyle.Render(a.version)
	if a.latest != "" {
		verLine = metaStyle.Render(a.version) + " " + statusStyle.Render(a.latest+" available")
	}
	verWidth := lipgloss.Width(verLine)
	verPad := (a.width - verWidth) / 2
	if verPad < 0 {
		verPad = 0
	}
	header += "\n" + strings.Repeat(" ", verPad) + verLine

	// Tab bar: 1 Pick  2 Recents  3 Tones
	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Pick", viewPick},
		{"2", "Recents", viewRecents},
		{"3", "Tones", viewTones},
	}

	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == a.view {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}
	centeredTabs := tabBar.String()

	// Body
	var body string
	var help string
	switch a.view {
	case viewPick:
		body = a.pick.View()
		if a.pick.editing {
			help = " " + helpEntry("enter", "done") + "  " + helpEntry("esc", "clear")
		} else {
			help = " " + helpEntry("1-3", "tabs") + "  " + helpEntry("h/j/k/l", "move") + "  " + helpEntry("/", "search") + "  " + helpEntry("enter", "copy") + "  " + helpEntry("t", "tone") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
		}
	case viewRecents:
		body = a.recents.View()
		help = " " + helpEntry("1-3", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "copy") + "  " + helpEntry("x", "remove") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
	case viewTones:
		body = a.tones.View()
		help = " " + helpEntry("1-3", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "re-pick") + "  " + helpEntry("x", "clear") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
	}

	// Tone overlay
	if a.toneOpen {
		body = a.tone.View()
		help = " " + helpEntry("0-5", "jump") + "  " + helpEntry("enter", "save") + "  " + helpEntry("esc", "close")
	}

	// Help overlay
	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	// Chrome budget: header(2) + tabs(1) + help(1) = 4 lines + body
	chrome := 4
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, centeredTabs, body, help)
}
