package domain

import "time"

// Memo is a rendered tax-decision memo, persisted as a versioned row per
// (user, topic). Body is plain markdown handed to the export layer.
type Memo struct {
	ID         string
	UserID     string
	Topic      string
	Version    int
	Title      string
	Body       string
	BestFit    string
	Confidence int
	CreatedAt  time.Time
}
