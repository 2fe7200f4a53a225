package emoji

import "testing"

func sampleEmoji() []Emoji {
	return []Emoji{
		{Glyph: "\U0001F600", Description: "grinning face", Category: CategorySmileys, Aliases: []string{"grinning"}, Tags: []string{"smile", "happy"}},
		{Glyph: "\U0001F44D", Description: "thumbs up", Category: CategoryPeople, Aliases: []string{"+1", "thumbsup"}, Tags: []string{"approve", "ok"}, SkinTones: true},
		{Glyph: "\U0001F355", Description: "pizza", Category: CategoryFood, Aliases: []string{"pizza"}, Tags: []string{"food", "italy"}},
	}
}

func TestMatchDescriptionIsCaseInsensitiveSubstring(t *testing.T) {
	e := sampleEmoji()[0]
	for _, q := range []string{"grinning", "GRIN", "ning fa"} {
		if !Match(e, q) {
			t.Errorf("expected query %q to match %q", q, e.Description)
		}
	}
	if Match(e, "frowning") {
		t.Error("expected 'frowning' not to match grinning face")
	}
}

func TestMatchTokensAgainstAliasesAndTags(t *testing.T) {
	e := sampleEmoji()[1]
	if !Match(e, "thumbsup") {
		t.Error("expected alias match")
	}
	if !Match(e, "approve") {
		t.Error("expected tag match")
	}
	// Any token matching any alias/tag is enough.
	if !Match(e, "zzz ok") {
		t.Error("expected one matching token to be enough")
	}
}

func TestMatchEmptyQueryMatchesEverything(t *testing.T) {
	for _, e := range sampleEmoji() {
		if !Match(e, "") || !Match(e, "   ") {
			t.Errorf("expected empty query to match %q", e.Description)
		}
	}
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	list := sampleEmoji()
	got := Filter(list, "p")
	// "p" appears in "thumbs up" and "pizza" descriptions and in "happy" tag.
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	if got[0].Description != "grinning face" || got[2].Description != "pizza" {
		t.Errorf("expected catalog order preserved, got %v", got)
	}
}

func TestFilterNoMatches(t *testing.T) {
	got := Filter(sampleEmoji(), "xyzzy")
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}
