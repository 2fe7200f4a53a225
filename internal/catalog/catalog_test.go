package catalog

import (
	"testing"

	"github.com/mojigrid/mojigrid/pkg/emoji"
)

func TestLoadDecodesEmbeddedDataset(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Version == "" {
		t.Error("expected a dataset version")
	}
	if len(c.All()) < 100 {
		t.Errorf("expected a substantial catalog, got %d entries", len(c.All()))
	}
}

func TestEveryCategoryIsPopulated(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, cat := range emoji.Categories {
		if len(c.ByCategory(cat)) == 0 {
			t.Errorf("expected entries in category %q", cat)
		}
	}
}

func TestToneableEntriesProduceDistinctVariants(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	toneable := 0
	for _, e := range c.All() {
		if !e.SkinTones {
			continue
		}
		toneable++
		for _, tone := range emoji.SkinTones {
			v := emoji.Variant(e.Glyph, tone, true)
			if v == e.Glyph {
				t.Errorf("%q (%s): tone %q variant equals base glyph", e.Glyph, e.Description, tone.ID())
			}
		}
	}
	if toneable == 0 {
		t.Fatal("expected skin-tone eligible entries in the catalog")
	}
}

func TestFindResolvesAliasBeforeSearch(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	e, ok := c.Find("+1")
	if !ok {
		t.Fatal("expected '+1' to resolve")
	}
	if e.Description != "thumbs up" {
		t.Errorf("expected thumbs up, got %q", e.Description)
	}

	e, ok = c.Find("thumbs up")
	if !ok || e.Glyph != "\U0001F44D" {
		t.Errorf("expected description lookup to resolve thumbs up, got %v %v", e, ok)
	}

	if _, ok := c.Find("no such emoji zzz"); ok {
		t.Error("expected unknown name to miss")
	}
	if _, ok := c.Find(""); ok {
		t.Error("expected empty name to miss")
	}
}

func TestFindByGlyph(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	e, ok := c.FindByGlyph("\U0001F355")
	if !ok || e.Description != "pizza" {
		t.Errorf("expected pizza, got %v %v", e, ok)
	}
	if _, ok := c.FindByGlyph("nope"); ok {
		t.Error("expected miss for unknown glyph")
	}
}

func TestGlyphsAreUniqueAndNonEmpty(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	seen := make(map[string]string, len(c.All()))
	for _, e := range c.All() {
		if e.Glyph == "" || e.Description == "" {
			t.Errorf("entry %q has empty glyph or description", e.Description)
		}
		if prev, dup := seen[e.Glyph]; dup {
			t.Errorf("glyph %q duplicated: %q and %q", e.Glyph, prev, e.Description)
		}
		seen[e.Glyph] = e.Description
	}
}
