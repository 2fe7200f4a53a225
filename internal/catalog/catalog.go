// Package catalog loads the bundled emoji dataset.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mojigrid/mojigrid/pkg/emoji"
)

//go:embed emoji.json
var catalogJSON []byte

// Catalog is the decoded emoji dataset. It is read-only after Load.
type Catalog struct {
	Version string        `json:"version"`
	Emoji   []emoji.Emoji `json:"emoji"`

	byCategory map[emoji.Category][]emoji.Emoji
}

// Load decodes the embedded dataset. Records carrying an unknown category
// are rejected so a bad dataset fails loudly at startup instead of rendering
// a broken grid.
func Load() (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(catalogJSON, &c); err != nil {
		return nil, fmt.Errorf("decode emoji catalog: %w", err)
	}
	if len(c.Emoji) == 0 {
		return nil, fmt.Errorf("emoji catalog is empty")
	}
	c.byCategory = make(map[emoji.Category][]emoji.Emoji, len(emoji.Categories))
	for _, e := range c.Emoji {
		if !emoji.ValidCategory(e.Category) {
			return nil, fmt.Errorf("emoji %q: unknown category %q", e.Description, e.Category)
		}
		c.byCategory[e.Category] = append(c.byCategory[e.Category], e)
	}
	return &c, nil
}

// All returns every emoji in catalog order.
func (c *Catalog) All() []emoji.Emoji {
	return c.Emoji
}

// ByCategory returns the emoji of one category in catalog order.
func (c *Catalog) ByCategory(cat emoji.Category) []emoji.Emoji {
	return c.byCategory[cat]
}

// Find resolves a name to a single emoji: exact alias match first, then
// exact description, then the first search match. The bool reports success.
func (c *Catalog) Find(name string) (emoji.Emoji, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return emoji.Emoji{}, false
	}
	for _, e := range c.Emoji {
		for _, a := range e.Aliases {
			if strings.ToLower(a) == name {
				return e, true
			}
		}
	}
	for _, e := range c.Emoji {
		if strings.ToLower(e.Description) == name {
			return e, true
		}
	}
	for _, e := range c.Emoji {
		if emoji.Match(e, name) {
			return e, true
		}
	}
	return emoji.Emoji{}, false
}

// FindByGlyph returns the catalog entry for a base glyph.
func (c *Catalog) FindByGlyph(glyph string) (emoji.Emoji, bool) {
	for _, e := range c.Emoji {
		if e.Glyph == glyph {
			return e, true
		}
	}
	return emoji.Emoji{}, false
}
