// Package render maps questions to display records.
//
// Record is surface-agnostic: escaped text, line breaks converted, tag chips
// with lowercased css keys. Terminal is the presenter used by the TUI.
package render

import (
	"html"
	"strings"

	"github.com/prepqhq/prepq-cli/model"
	"github.com/prepqhq/prepq-cli/slice"
)

const (
	// PlaceholderTitle is shown for questions saved without a title.
	PlaceholderTitle = "untitled"
	// PlaceholderAnswer is shown for questions saved without an answer.
	PlaceholderAnswer = "no answer"
)

type Chip struct {
	Label  string
	CSSKey string
}

type Record struct {
	Title      string
	AnswerHTML string
	Tags       []Chip
}

// NewRecord builds the display record for a single question. Tag labels pass
// through untouched; CSSKey lowercases whatever the tag holds, including
// runes outside any simple alphabet.
func NewRecord(q model.Question) Record {
	title := q.Title
	if strings.TrimSpace(title) == "" {
		title = PlaceholderTitle
	}
	answer := q.Answer
	if strings.TrimSpace(answer) == "" {
		answer = PlaceholderAnswer
	}

	escaped := html.EscapeString(answer)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")

	return Record{
		Title:      html.EscapeString(title),
		AnswerHTML: escaped,
		Tags: slice.Map(q.Tags, func(tag string) Chip {
			return Chip{Label: tag, CSSKey: strings.ToLower(tag)}
		}),
	}
}

func Records(questions []model.Question) []Record {
	return slice.Map(questions, NewRecord)
}

// Title is the unescaped display title for terminal surfaces.
func Title(q model.Question) string {
	if strings.TrimSpace(q.Title) == "" {
		return PlaceholderTitle
	}
	return q.Title
}
