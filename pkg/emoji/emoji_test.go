package emoji

import "testing"

func TestWithTonePreservesEveryOtherField(t *testing.T) {
	base := Emoji{
		Glyph:       "\U0001F44D",
		Description: "thumbs up",
		Category:    CategoryPeople,
		Aliases:     []string{"+1", "thumbsup"},
		Tags:        []string{"approve", "ok"},
		SkinTones:   true,
	}
	toned := base.WithTone(SkinToneDark)

	if toned.Glyph != "\U0001F44D\U0001F3FF" {
		t.Errorf("expected toned glyph, got %U", []rune(toned.Glyph))
	}
	if toned.Description != base.Description || toned.Category != base.Category {
		t.Error("expected description and category to carry over unchanged")
	}
	if len(toned.Aliases) != 2 || toned.Aliases[0] != "+1" {
		t.Errorf("expected aliases to carry over, got %v", toned.Aliases)
	}
	if len(toned.Tags) != 2 || toned.Tags[1] != "ok" {
		t.Errorf("expected tags to carry over, got %v", toned.Tags)
	}
	if !toned.SkinTones {
		t.Error("expected SkinTones flag to carry over")
	}
	// Value semantics: the input record is untouched.
	if base.Glyph != "\U0001F44D" {
		t.Errorf("expected base glyph unchanged, got %U", []rune(base.Glyph))
	}
}

func TestWithToneIneligibleIsNoOp(t *testing.T) {
	base := Emoji{Glyph: "\U0001F525", Description: "fire", Category: CategoryTravel}
	toned := base.WithTone(SkinToneMedium)
	if toned.Glyph != base.Glyph {
		t.Errorf("expected ineligible glyph unchanged, got %U", []rune(toned.Glyph))
	}
}

func TestAppliedWithoutToneKeepsComposedGlyph(t *testing.T) {
	tests := []struct {
		name  string
		glyph string
	}{
		{"zwj sequence", "\U0001F468‍\U0001F4BB"}, // man technologist
		{"vs16 glyph", "✌️"},                 // victory hand
		{"single scalar", "\U0001F44D"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Emoji{Glyph: tc.glyph, SkinTones: true}
			if got := Applied(e, SkinToneNone); got != tc.glyph {
				t.Errorf("expected canonical glyph %U, got %U", []rune(tc.glyph), []rune(got))
			}
		})
	}
}

func TestAppliedConcreteToneSynthesizesVariant(t *testing.T) {
	e := Emoji{Glyph: "\U0001F468‍\U0001F4BB", SkinTones: true}
	want := "\U0001F468\U0001F3FD‍\U0001F4BB"
	if got := Applied(e, SkinToneMedium); got != want {
		t.Errorf("expected %U, got %U", []rune(want), []rune(got))
	}
}

func TestWithToneNoneKeepsComposedGlyph(t *testing.T) {
	e := Emoji{Glyph: "\U0001F468‍\U0001F4BB", Description: "man technologist", SkinTones: true}
	if got := e.WithTone(SkinToneNone); got.Glyph != e.Glyph {
		t.Errorf("expected ZWJ suffix kept, got %U", []rune(got.Glyph))
	}
}

func TestCategoriesAreExactlyNineAndValid(t *testing.T) {
	if len(Categories) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(Categories))
	}
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
		if c.Title() == string(c) {
			t.Errorf("expected a display title for %q", c)
		}
	}
	if ValidCategory("weapons") {
		t.Error("expected unknown category to be invalid")
	}
}

func TestCategoryTitleFallsBackToRawID(t *testing.T) {
	if got := Category("mystery").Title(); got != "mystery" {
		t.Errorf("expected raw ID fallback, got %q", got)
	}
}

func TestNewPickCarriesTonedGlyphAndIdentity(t *testing.T) {
	e := Emoji{Glyph: "\U0001F44B", Description: "waving hand", Category: CategoryPeople, SkinTones: true}
	p := NewPick(e, SkinToneLight)

	if p.Glyph != "\U0001F44B\U0001F3FB" {
		t.Errorf("expected toned glyph in pick, got %U", []rune(p.Glyph))
	}
	if p.Base != "\U0001F44B" {
		t.Errorf("expected base glyph in pick, got %U", []rune(p.Base))
	}
	if p.Tone != "light" {
		t.Errorf("expected tone id 'light', got %q", p.Tone)
	}
	if p.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a non-zero pick ID")
	}
	if p.PickedAt.IsZero() {
		t.Error("expected PickedAt to be set")
	}
}

func TestNewPickWithoutToneKeepsComposedGlyph(t *testing.T) {
	e := Emoji{Glyph: "\U0001F468‍\U0001F4BB", Description: "man technologist", SkinTones: true}
	p := NewPick(e, SkinToneNone)
	if p.Glyph != e.Glyph {
		t.Errorf("expected canonical glyph copied, got %U", []rune(p.Glyph))
	}
	if p.Tone != "" {
		t.Errorf("expected empty tone id, got %q", p.Tone)
	}
}
