package catalog

import "github.com/alexanderramin/groundwork/internal/domain"

// File is the top-level JSON catalog structure. A catalog file fully
// replaces the stored advisory content when loaded; there is no partial
// merge with the previous catalog.
type File struct {
	Version     string                   `json:"version"`
	Name        string                   `json:"name,omitempty"`
	Priorities  []domain.Priority        `json:"priorities,omitempty"`
	Watchlist   []domain.WatchlistItem   `json:"watchlist,omitempty"`
	Actions     []domain.RecurringAction `json:"actions,omitempty"`
	Suggestions []domain.SuggestionRule  `json:"suggestions,omitempty"`
	Questions   []domain.Question        `json:"questions,omitempty"`
	Evidence    []EvidenceSpec           `json:"evidence,omitempty"`
	Assessment  []AssessmentQuestion     `json:"assessment,omitempty"`
}

// EvidenceSpec declares one document on the default tax-planning
// checklist. Specs are per-catalog; they are copied into per-user
// evidence rows the first time a user's checklist is touched.
type EvidenceSpec struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// AssessmentOption is one answer choice on a readiness quiz question.
type AssessmentOption struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// AssessmentQuestion is one readiness quiz question. MaxPoints of a quiz
// is the sum of each question's highest-scoring option.
type AssessmentQuestion struct {
	ID      string             `json:"id"`
	Prompt  string             `json:"prompt"`
	Options []AssessmentOption `json:"options"`
}

// Bundle is a validated catalog ready for storage and use: the engine
// content plus the evidence checklist and quiz definitions that live
// alongside it.
type Bundle struct {
	Catalog    *domain.Catalog
	Evidence   []EvidenceSpec
	Assessment []AssessmentQuestion
}

// MaxScore returns the highest achievable quiz score for the bundle's
// assessment questions.
func (b *Bundle) MaxScore() int {
	total := 0
	for _, q := range b.Assessment {
		best := 0
		for _, opt := range q.Options {
			if opt.Points > best {
				best = opt.Points
			}
		}
		total += best
	}
	return total
}
