package model

import "time"

// Session is the editing state for one trail: its scalars and the ordered
// media list. It is loaded at the start of a command and written back whole.
type Session struct {
	ID        string        `json:"id"`
	Trail     TrailFields   `json:"trail"`
	Media     []MediaRecord `json:"media"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// HasMedia reports whether the media list has been seeded or edited into a
// non-empty state.
func (s *Session) HasMedia() bool {
	return len(s.Media) > 0
}
