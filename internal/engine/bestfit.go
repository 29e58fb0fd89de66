package engine

import "github.com/alexanderramin/groundwork/internal/domain"

// GuessBestFit returns the value of the first suggestion whose trigger
// matches the intake, or "" when none match. First match wins: the
// suggestion catalog's order is the precedence, controlled by content
// configuration, not by any scoring here.
func GuessBestFit(in *domain.Intake, suggestions []domain.SuggestionRule) string {
	for _, s := range suggestions {
		if EvaluateGroup(in, s.When) {
			return s.Value
		}
	}
	return ""
}
