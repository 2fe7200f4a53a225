package emoji

// SkinTone is a Fitzpatrick skin-tone modifier. The value is the modifier's
// Unicode scalar; SkinToneNone means "default (yellow) presentation".
type SkinTone rune

const (
	SkinToneNone        SkinTone = 0
	SkinToneLight       SkinTone = 0x1F3FB
	SkinToneMediumLight SkinTone = 0x1F3FC
	SkinToneMedium      SkinTone = 0x1F3FD
	SkinToneMediumDark  SkinTone = 0x1F3FE
	SkinToneDark        SkinTone = 0x1F3FF
)

// vs16 is the emoji presentation selector; zwj joins composed sequences.
const (
	vs16 rune = 0xFE0F
	zwj  rune = 0x200D
)

// SkinTones lists the five concrete tones from lightest to darkest.
var SkinTones = []SkinTone{
	SkinToneLight,
	SkinToneMediumLight,
	SkinToneMedium,
	SkinToneMediumDark,
	SkinToneDark,
}

var skinToneIDs = map[SkinTone]string{
	SkinToneLight:       "light",
	SkinToneMediumLight: "medium-light",
	SkinToneMedium:      "medium",
	SkinToneMediumDark:  "medium-dark",
	SkinToneDark:        "dark",
}

// ID returns the stable identifier used by the preference store, or ""
// for SkinToneNone and unknown values.
func (t SkinTone) ID() string {
	return skinToneIDs[t]
}

// String renders the modifier scalar itself, or "" for SkinToneNone.
func (t SkinTone) String() string {
	if t == SkinToneNone {
		return ""
	}
	return string(rune(t))
}

// ParseSkinTone maps a stable identifier back to its tone. Unknown or empty
// identifiers parse as SkinToneNone, so absent preferences read as "default".
func ParseSkinTone(id string) SkinTone {
	for tone, tid := range skinToneIDs {
		if tid == id {
			return tone
		}
	}
	return SkinToneNone
}

// Variant synthesizes the skin-tone variant of a glyph.
//
// When toneable is false the glyph is returned untouched for every tone,
// including SkinToneNone. When tone is SkinToneNone the glyph reverts to its
// default presentation (see DefaultPresentation). Otherwise the tone scalar
// is placed per the Unicode emoji modifier rules: it replaces the first
// U+FE0F presentation selector, or is inserted immediately before the first
// U+200D joiner, or is appended when the glyph has neither marker. Only the
// first marker counts, so multi-person ZWJ sequences receive a single tone
// at the first person.
//
// The function is pure and total: no input, including the empty string,
// produces an error.
func Variant(glyph string, tone SkinTone, toneable bool) string {
	if !toneable {
		return glyph
	}
	if tone == SkinToneNone {
		return DefaultPresentation(glyph)
	}

	out := make([]rune, 0, len(glyph)+1)
	inserted := false
	for _, r := range glyph {
		if !inserted {
			switch r {
			case vs16:
				// The presentation selector is consumed, not preserved.
				out = append(out, rune(tone))
				inserted = true
				continue
			case zwj:
				out = append(out, rune(tone), zwj)
				inserted = true
				continue
			}
		}
		out = append(out, r)
	}
	if !inserted {
		out = append(out, rune(tone))
	}
	return string(out)
}

// DefaultPresentation strips a toned or composed glyph back to its minimal
// default form: a glyph of more than one scalar is reduced to its first
// scalar alone; single-scalar (and empty) glyphs are returned unchanged.
// The scalar-count check is deliberately the only validation — when in doubt
// the original glyph is the safe answer.
func DefaultPresentation(glyph string) string {
	runes := []rune(glyph)
	if len(runes) <= 1 {
		return glyph
	}
	return string(runes[0])
}
