// Package prefs persists skin-tone preferences and the recents list as a
// small JSON file in the user's home directory.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mojigrid/mojigrid/pkg/emoji"
)

// toneKeyPrefix namespaces tone preferences in the key-value map.
const toneKeyPrefix = "emoji_skintone_"

// DefaultRecentsMax caps the recents list unless overridden by config.
const DefaultRecentsMax = 50

// Store is a file-backed preference store. Tone preferences map
// "emoji_skintone_<glyph>" to a tone's stable identifier; an absent key
// means no preference. Writes are last-write-wins; Save replaces the file
// atomically.
type Store struct {
	path       string
	recentsMax int

	Values  map[string]string `json:"values"`
	Recents []emoji.Pick      `json:"recents,omitempty"`
}

// DefaultPath returns ~/.mojigrid/prefs.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".mojigrid", "prefs.json"), nil
}

// Load reads the store at path. A missing or unreadable file yields an
// empty store rather than an error: preferences are an enhancement, never
// a reason to refuse to start.
func Load(path string, recentsMax int) *Store {
	if recentsMax <= 0 {
		recentsMax = DefaultRecentsMax
	}
	s := &Store{path: path, recentsMax: recentsMax, Values: map[string]string{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, s); err != nil {
		// Corrupt file: start fresh, the next Save overwrites it.
		s.Values = map[string]string{}
		s.Recents = nil
		return s
	}
	if s.Values == nil {
		s.Values = map[string]string{}
	}
	if len(s.Recents) > recentsMax {
		s.Recents = s.Recents[:recentsMax]
	}
	return s
}

// ToneFor returns the stored tone preference for a base glyph, or
// SkinToneNone when no preference exists.
func (s *Store) ToneFor(glyph string) emoji.SkinTone {
	return emoji.ParseSkinTone(s.Values[toneKeyPrefix+glyph])
}

// SetTone records the tone preference for a base glyph. SkinToneNone
// removes the preference so the key is absent, not stored as empty.
func (s *Store) SetTone(glyph string, tone emoji.SkinTone) {
	key := toneKeyPrefix + glyph
	if tone == emoji.SkinToneNone {
		delete(s.Values, key)
		return
	}
	s.Values[key] = tone.ID()
}

// RememberPick prepends a pick to the recents list, dropping earlier picks
// of the same base glyph and trimming to the configured cap.
func (s *Store) RememberPick(p emoji.Pick) {
	kept := make([]emoji.Pick, 0, len(s.Recents)+1)
	kept = append(kept, p)
	for _, old := range s.Recents {
		if old.Base == p.Base {
			continue
		}
		kept = append(kept, old)
	}
	if len(kept) > s.recentsMax {
		kept = kept[:s.recentsMax]
	}
	s.Recents = kept
}

// ClearTone removes the stored preference for a glyph.
func (s *Store) ClearTone(glyph string) {
	delete(s.Values, toneKeyPrefix+glyph)
}

// Tones returns every stored (glyph, tone) preference pair, in no
// particular order.
func (s *Store) Tones() map[string]emoji.SkinTone {
	out := make(map[string]emoji.SkinTone, len(s.Values))
	for k, v := range s.Values {
		if len(k) > len(toneKeyPrefix) && k[:len(toneKeyPrefix)] == toneKeyPrefix {
			out[k[len(toneKeyPrefix):]] = emoji.ParseSkinTone(v)
		}
	}
	return out
}

// Save writes the store to disk: parent dir 0700, file 0600, staged to a
// temp file and renamed over the original so a crash never truncates it.
func (s *Store) Save() error {
	if s.path == "" {
		return errors.New("prefs store has no path")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("stage prefs: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) //nolint:errcheck
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// Exists reports whether a prefs file is already present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
