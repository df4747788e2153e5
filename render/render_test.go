package render_test

import (
	"testing"

	"github.com/prepqhq/prepq-cli/model"
	"github.com/prepqhq/prepq-cli/render"
	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	testCases := []struct {
		name           string
		question       model.Question
		expectedRecord render.Record
	}{
		{
			name: "escapes markup in title and answer",
			question: model.Question{
				Title:  `<b>bold?</b>`,
				Answer: `use "quotes" & <tags>`,
			},
			expectedRecord: render.Record{
				Title:      "&lt;b&gt;bold?&lt;/b&gt;",
				AnswerHTML: "use &#34;quotes&#34; &amp; &lt;tags&gt;",
			},
		},
		{
			name: "converts line breaks",
			question: model.Question{
				Title:  "t",
				Answer: "line one\nline two\r\nline three",
			},
			expectedRecord: render.Record{
				Title:      "t",
				AnswerHTML: "line one<br>line two<br>line three",
			},
		},
		{
			name:     "placeholders for missing fields",
			question: model.Question{Title: "   ", Answer: ""},
			expectedRecord: render.Record{
				Title:      render.PlaceholderTitle,
				AnswerHTML: render.PlaceholderAnswer,
			},
		},
		{
			name: "chips lowercase the css key and keep the label",
			question: model.Question{
				Title:  "t",
				Answer: "a",
				Tags:   []string{"Golang", "SQL"},
			},
			expectedRecord: render.Record{
				Title:      "t",
				AnswerHTML: "a",
				Tags: []render.Chip{
					{Label: "Golang", CSSKey: "golang"},
					{Label: "SQL", CSSKey: "sql"},
				},
			},
		},
		{
			name: "tolerates tags outside a simple alphabet",
			question: model.Question{
				Title:  "t",
				Answer: "a",
				Tags:   []string{"C++ / STL", "日本語", "<script>"},
			},
			expectedRecord: render.Record{
				Title:      "t",
				AnswerHTML: "a",
				Tags: []render.Chip{
					{Label: "C++ / STL", CSSKey: "c++ / stl"},
					{Label: "日本語", CSSKey: "日本語"},
					{Label: "<script>", CSSKey: "<script>"},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedRecord, render.NewRecord(tc.question))
		})
	}
}

func TestRecordsKeepStoreOrder(t *testing.T) {
	questions := []model.Question{
		{Title: "b", Answer: "x"},
		{Title: "a", Answer: "y"},
	}
	records := render.Records(questions)
	assert.Equal(t, "b", records[0].Title)
	assert.Equal(t, "a", records[1].Title)
}

func TestTitlePlaceholder(t *testing.T) {
	assert.Equal(t, render.PlaceholderTitle, render.Title(model.Question{}))
	assert.Equal(t, "q", render.Title(model.Question{Title: "q"}))
}
