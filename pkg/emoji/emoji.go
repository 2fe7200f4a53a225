package emoji

// Emoji is a single catalog entry: one glyph plus the metadata used for
// search and display. Values are immutable once loaded; derived variants
// are produced with WithTone, never by mutation.
type Emoji struct {
	Glyph       string   `json:"glyph"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Aliases     []string `json:"aliases,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	SkinTones   bool     `json:"skin_tones,omitempty"` // eligible for a Fitzpatrick modifier
}

// Category is one of the nine semantic emoji groups.
type Category string

const (
	CategorySmileys    Category = "smileys-emotion"
	CategoryPeople     Category = "people-body"
	CategoryAnimals    Category = "animals-nature"
	CategoryFood       Category = "food-drink"
	CategoryTravel     Category = "travel-places"
	CategoryActivities Category = "activities"
	CategoryObjects    Category = "objects"
	CategorySymbols    Category = "symbols"
	CategoryFlags      Category = "flags"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategorySmileys,
	CategoryPeople,
	CategoryAnimals,
	CategoryFood,
	CategoryTravel,
	CategoryActivities,
	CategoryObjects,
	CategorySymbols,
	CategoryFlags,
}

// categoryTitles maps category IDs to human-readable names.
var categoryTitles = map[Category]string{
	CategorySmileys:    "Smileys & Emotion",
	CategoryPeople:     "People & Body",
	CategoryAnimals:    "Animals & Nature",
	CategoryFood:       "Food & Drink",
	CategoryTravel:     "Travel & Places",
	CategoryActivities: "Activities",
	CategoryObjects:    "Objects",
	CategorySymbols:    "Symbols",
	CategoryFlags:      "Flags",
}

var validCategorySet = func() map[Category]bool {
	m := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// ValidCategory returns true if the given category is one of the nine groups.
func ValidCategory(c Category) bool {
	return validCategorySet[c]
}

// Title returns the human-readable name for a category, or the raw ID for
// unknown values.
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return string(c)
}

// Applied resolves the glyph for a catalog emoji under a tone preference.
// The catalog glyph is already the default presentation, so SkinToneNone
// means "no preference" and returns it untouched; the revert strip in
// Variant is only for undoing an already-toned string, never for canonical
// glyphs (composed sequences like U+1F468 U+200D U+1F4BB would lose their
// ZWJ suffix).
func Applied(e Emoji, tone SkinTone) string {
	if tone == SkinToneNone {
		return e.Glyph
	}
	return Variant(e.Glyph, tone, e.SkinTones)
}

// WithTone returns a copy of the emoji with its glyph replaced by the
// requested skin-tone variant. All other fields are carried over unchanged;
// the receiver is never modified. Ineligible emoji and SkinToneNone come
// back as-is.
func (e Emoji) WithTone(tone SkinTone) Emoji {
	out := e
	out.Glyph = Applied(e, tone)
	return out
}
