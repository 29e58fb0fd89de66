package domain

// Tag is a derived classification label, namespaced as "group.value"
// (e.g. "entity.s_corp", "payroll.yes", "core.books").
type Tag string

// Priority is one advisory topic from the fixed catalog, surfaced when at
// least one of its gate tags is present in the derived tag set.
type Priority struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Why   string `json:"why"`
	Tags  []Tag  `json:"tags,omitempty"`
}

// WatchlistItem is a conditionally shown alert about an election,
// threshold, or deadline. When is matched against the raw intake.
type WatchlistItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Consequence string     `json:"consequence"`
	When        *RuleGroup `json:"when,omitempty"`
}

// RecurringAction is a template the calendar synthesizer expands into
// concrete dated events.
type RecurringAction struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Frequency Frequency `json:"frequency"`
	Note      string    `json:"note,omitempty"`
}

// SuggestionRule maps a rule group to a candidate value for best-fit
// selection. Catalog order is a semantic contract: the first matching
// suggestion wins.
type SuggestionRule struct {
	ID    string     `json:"id"`
	Value string     `json:"value"`
	When  *RuleGroup `json:"when,omitempty"`
}

// Question is one advisor-conversation prompt, gated by tag overlap.
type Question struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Tags   []Tag  `json:"tags,omitempty"`
}

// EvidenceItem is one document on the tax-planning checklist. Required
// items drive the evidence fraction of the confidence score.
type EvidenceItem struct {
	UserID   string
	Key      string
	Label    string
	Required bool
	Done     bool
}

// Catalog bundles all advisory content rows loaded for a profile build.
// The engine treats every entry as read-only.
type Catalog struct {
	Priorities  []Priority
	Watchlist   []WatchlistItem
	Actions     []RecurringAction
	Suggestions []SuggestionRule
	Questions   []Question
}
