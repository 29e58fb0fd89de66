package domain

import "time"

// ProfileVersion tags the shape of persisted profile snapshots.
const ProfileVersion = "v1"

// CalendarEvent is one dated planning entry. Dates are YYYY-MM-DD strings,
// which sort correctly lexicographically.
type CalendarEvent struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Note  string `json:"note,omitempty"`
}

// Profile is the composed output of one recommendation run. A profile is
// immutable once built; rebuilding produces a new profile rather than
// mutating an old one.
type Profile struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Version    string          `json:"version"`
	CreatedAt  time.Time       `json:"created_at"`
	Intake     Intake          `json:"intake"`
	Tags       []Tag           `json:"tags"`
	Modules    []string        `json:"modules"`
	Priorities []Priority      `json:"priorities"`
	Questions  []Question      `json:"questions"`
	Watchlist  []WatchlistItem `json:"watchlist"`
	Calendar   []CalendarEvent `json:"calendar"`
	Confidence int             `json:"confidence"`
}

// HasTag reports whether the profile's tag set contains t.
func (p *Profile) HasTag(t Tag) bool {
	for _, have := range p.Tags {
		if have == t {
			return true
		}
	}
	return false
}
