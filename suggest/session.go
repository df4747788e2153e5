package suggest

// Session holds the suggestion state for a single input field, keyed by an
// opaque field name. The create form and the edit form each own a Session;
// nothing is shared between them.
type Session struct {
	field  string
	index  Index
	items  []string
	cursor int
}

func NewSession(field string, index Index) *Session {
	return &Session{field: field, index: index}
}

func (s *Session) Field() string {
	return s.field
}

// Refresh recomputes the suggestion list from the current raw input.
// Call it on every keystroke and on field focus.
func (s *Session) Refresh(raw string) {
	s.items = Suggestions(raw, s.index)
	s.cursor = 0
}

// Items is the current suggestion list. Empty means render nothing.
func (s *Session) Items() []string {
	return s.items
}

func (s *Session) Cursor() int {
	return s.cursor
}

// Move shifts the highlight, clamped to the list bounds.
func (s *Session) Move(delta int) {
	if len(s.items) == 0 {
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.items) {
		s.cursor = len(s.items) - 1
	}
}

// Commit folds the highlighted suggestion into raw and refreshes against the
// new value, as if the user kept typing. Returns raw unchanged when there is
// nothing to commit.
func (s *Session) Commit(raw string) (string, bool) {
	if len(s.items) == 0 {
		return raw, false
	}
	out := Commit(raw, s.items[s.cursor])
	s.Refresh(out)
	return out, true
}
