// Package suggest computes tag completions for a comma-delimited input field.
//
// The input is split on commas: every segment except the last is a committed
// tag, the last segment is the fragment the user is still typing. Suggestions
// come from the tag index in index order and never include a committed tag.
package suggest

import (
	"strings"

	"github.com/prepqhq/prepq-cli/slice"
)

// Index is the ordered list of known tag names in canonical casing.
// It only ranks suggestions; questions may carry tags outside the index.
type Index []string

// Suggestions returns the index entries to offer for the current input.
// An empty fragment (blank input, or input ending in a comma) offers the full
// index minus committed tags. Otherwise entries must contain the fragment,
// case-insensitively. A nil result means render nothing.
func Suggestions(raw string, index Index) []string {
	committed, fragment := splitInput(raw)

	lowered := slice.Map(committed, strings.ToLower)

	var out []string
	for _, tag := range index {
		if slice.Has(lowered, strings.ToLower(tag)) {
			continue
		}
		if fragment != "" && !strings.Contains(strings.ToLower(tag), fragment) {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// Commit replaces the partially typed fragment with tag and re-joins the
// committed tags with ", ". Committing the same tag twice in a row yields the
// same string: the second call drops the fragment-shaped duplicate and
// re-appends it.
func Commit(raw, tag string) string {
	committed, _ := splitInput(raw)
	committed = append(committed, tag)
	return strings.Join(committed, ", ")
}

// ParseTags normalizes a raw tag input into the tag list carried by a
// question: trimmed, lowercased, empties and duplicates dropped, order kept.
func ParseTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" || slice.Has(tags, tag) {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

func splitInput(raw string) (committed []string, fragment string) {
	parts := strings.Split(raw, ",")
	fragment = strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	for _, part := range parts[:len(parts)-1] {
		if part = strings.TrimSpace(part); part != "" {
			committed = append(committed, part)
		}
	}
	return committed, fragment
}
