package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/muesli/termenv"
	"github.com/prepqhq/prepq-cli/model"
	"golang.org/x/term"
)

const answerCacheSize = 128

// Terminal renders questions for the TUI. Answers go through glamour, so
// markdown in an answer body comes out styled; rendered bodies are cached by
// question id until the store reloads.
type Terminal struct {
	renderer *glamour.TermRenderer
	cache    *lru.Cache[model.ID, string]
	profile  termenv.Profile
}

func NewTerminal() (*Terminal, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth()),
	)
	if err != nil {
		return nil, err
	}

	cache, err := lru.New[model.ID, string](answerCacheSize)
	if err != nil {
		return nil, err
	}

	return &Terminal{
		renderer: renderer,
		cache:    cache,
		profile:  termenv.ColorProfile(),
	}, nil
}

// Answer renders the question's answer body for the terminal.
func (t *Terminal) Answer(q model.Question) (string, error) {
	if out, ok := t.cache.Get(q.ID); ok {
		return out, nil
	}

	body := q.Answer
	if strings.TrimSpace(body) == "" {
		body = PlaceholderAnswer
	}

	out, err := t.renderer.Render(body)
	if err != nil {
		return "", err
	}
	t.cache.Add(q.ID, out)
	return out, nil
}

// Invalidate drops all cached answers. Call after a store reload: an update
// can change the body behind an existing id.
func (t *Terminal) Invalidate() {
	t.cache.Purge()
}

// Chips renders the question's tags as one styled line.
func (t *Terminal) Chips(q model.Question) string {
	rec := NewRecord(q)
	if len(rec.Tags) == 0 {
		return ""
	}

	parts := make([]string, 0, len(rec.Tags))
	for _, chip := range rec.Tags {
		if t.profile == termenv.Ascii {
			parts = append(parts, "["+chip.Label+"]")
			continue
		}
		parts = append(parts, chipStyle(chip.CSSKey).Render(chip.Label))
	}
	return strings.Join(parts, " ")
}

// chipColors mirrors the conditional per-tag styling of the web surface;
// anything not listed gets the fallback color.
var chipColors = map[string]lipgloss.Color{
	"golang":     lipgloss.Color("6"),
	"sql":        lipgloss.Color("3"),
	"linux":      lipgloss.Color("2"),
	"algorithms": lipgloss.Color("5"),
	"networking": lipgloss.Color("4"),
	"docker":     lipgloss.Color("12"),
	"kubernetes": lipgloss.Color("13"),
}

func chipStyle(cssKey string) lipgloss.Style {
	color, ok := chipColors[cssKey]
	if !ok {
		color = lipgloss.Color("8")
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(color)
}

func wrapWidth() int {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w - 4
	}
	if width > 100 {
		width = 100
	}
	if width < 20 {
		width = 20
	}
	return width
}
