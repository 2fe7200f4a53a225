package emoji

import "strings"

// Match reports whether an emoji matches a free-text query.
// The whole query is matched case-insensitively against the description;
// individually, each whitespace-separated token matches when it is a
// substring of any alias or tag. An empty query matches everything.
func Match(e Emoji, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Description), query) {
		return true
	}
	for _, token := range strings.Fields(query) {
		for _, a := range e.Aliases {
			if strings.Contains(strings.ToLower(a), token) {
				return true
			}
		}
		for _, t := range e.Tags {
			if strings.Contains(strings.ToLower(t), token) {
				return true
			}
		}
	}
	return false
}

// Filter returns the emoji matching the query, preserving catalog order.
func Filter(list []Emoji, query string) []Emoji {
	if strings.TrimSpace(query) == "" {
		return list
	}
	var out []Emoji
	for _, e := range list {
		if Match(e, query) {
			out = append(out, e)
		}
	}
	return out
}
