package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mojigrid/mojigrid/internal/catalog"
	"github.com/mojigrid/mojigrid/internal/config"
	"github.com/mojigrid/mojigrid/internal/prefs"
	"github.com/mojigrid/mojigrid/internal/tui"
	"github.com/mojigrid/mojigrid/pkg/emoji"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("mojigrid " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "list":
			return runList(os.Args[2:])
		case "get":
			return runGet(os.Args[2:])
		default:
			return fmt.Errorf("unknown command %q (try 'mojigrid help')", os.Args[1])
		}
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	c, err := catalog.Load()
	if err != nil {
		return err
	}
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	app := tui.NewApp(c, store, version, cfg.NoClipboard)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// loadStore opens the preference store at the configured (or default) path.
func loadStore(cfg config.Config) (*prefs.Store, error) {
	path := cfg.PrefsPath
	if path == "" {
		var err error
		path, err = prefs.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return prefs.Load(path, cfg.RecentsMax), nil
}

// runGet prints one emoji to stdout: `mojigrid get <name> [tone]`.
// With no tone argument the stored preference applies.
func runGet(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mojigrid get <name> [tone]")
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	c, err := catalog.Load()
	if err != nil {
		return err
	}
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	toneArg := ""
	if len(args) > 1 {
		toneArg = args[1]
	}
	glyph, err := getGlyph(c, store, args[0], toneArg)
	if err != nil {
		return err
	}
	fmt.Println(glyph)
	return nil
}

// getGlyph resolves a name (and optional tone id) to the final glyph.
func getGlyph(c *catalog.Catalog, store *prefs.Store, name, toneArg string) (string, error) {
	e, ok := c.Find(name)
	if !ok {
		return "", fmt.Errorf("no emoji matching %q", name)
	}
	tone := store.ToneFor(e.Glyph)
	if toneArg != "" {
		tone, ok = parseToneArg(toneArg)
		if !ok {
			return "", fmt.Errorf("unknown tone %q (use default, light, medium-light, medium, medium-dark or dark)", toneArg)
		}
	}
	return emoji.Applied(e, tone), nil
}

// parseToneArg accepts the five tone ids plus "default"/"none".
func parseToneArg(arg string) (emoji.SkinTone, bool) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	if arg == "default" || arg == "none" {
		return emoji.SkinToneNone, true
	}
	tone := emoji.ParseSkinTone(arg)
	if tone == emoji.SkinToneNone {
		return emoji.SkinToneNone, false
	}
	return tone, true
}

// runList prints the catalog, optionally limited to one category:
// `mojigrid list [category]`.
func runList(args []string) error {
	c, err := catalog.Load()
	if err != nil {
		return err
	}
	category := ""
	if len(args) > 0 {
		category = args[0]
	}
	lines, err := listLines(c, category)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Println(l)
	}
	return nil
}

// listLines renders one "glyph  description  :aliases:" line per emoji.
func listLines(c *catalog.Catalog, category string) ([]string, error) {
	items := c.All()
	if category != "" {
		cat := emoji.Category(strings.ToLower(strings.TrimSpace(category)))
		if !emoji.ValidCategory(cat) {
			names := make([]string, len(emoji.Categories))
			for i, k := range emoji.Categories {
				names[i] = string(k)
			}
			return nil, fmt.Errorf("unknown category %q (one of: %s)", category, strings.Join(names, ", "))
		}
		items = c.ByCategory(cat)
	}
	lines := make([]string, 0, len(items))
	for _, e := range items {
		line := fmt.Sprintf("%s  %s", e.Glyph, e.Description)
		if len(e.Aliases) > 0 {
			line += "  :" + strings.Join(e.Aliases, ": :") + ":"
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func printHelp() {
	fmt.Print(`mojigrid — terminal emoji picker

Usage:
  mojigrid                 Open the interactive picker
  mojigrid get <name> [tone]
                           Print one emoji (stored tone applies by default;
                           tone is one of default, light, medium-light,
                           medium, medium-dark, dark)
  mojigrid list [category] Print the catalog
  mojigrid version         Show version

Environment:
  MOJIGRID_PREFS           Preference file path (default ~/.mojigrid/prefs.json)
  MOJIGRID_RECENTS_MAX     Recents list cap (default 50)
  MOJIGRID_NO_CLIPBOARD    Disable clipboard writes (true/false)
`)
}
