package emoji

import (
	"time"

	"github.com/google/uuid"
)

// Pick records one selection for the recents list.
type Pick struct {
	ID       uuid.UUID `json:"id"`
	Glyph    string    `json:"glyph"` // toned glyph as it was copied
	Base     string    `json:"base"`  // catalog glyph, for catalog lookups
	Tone     string    `json:"tone,omitempty"`
	PickedAt time.Time `json:"picked_at"`
}

// NewPick builds a Pick for a base emoji and the tone it was copied with.
func NewPick(e Emoji, tone SkinTone) Pick {
	return Pick{
		ID:       uuid.New(),
		Glyph:    Applied(e, tone),
		Base:     e.Glyph,
		Tone:     tone.ID(),
		PickedAt: time.Now(),
	}
}
