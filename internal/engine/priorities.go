package engine

import "github.com/alexanderramin/groundwork/internal/domain"

// MaxPriorities caps the ranked priority list.
const MaxPriorities = 6

// BuildPriorities returns the catalog entries whose gate tags intersect
// the derived tag set. Catalog order is the ranking: output preserves it,
// truncated to MaxPriorities. Entries with no gate tags never match.
func BuildPriorities(catalog []domain.Priority, tags []domain.Tag) []domain.Priority {
	var out []domain.Priority
	for _, p := range catalog {
		if !anyTagPresent(tags, p.Tags) {
			continue
		}
		out = append(out, p)
		if len(out) == MaxPriorities {
			break
		}
	}
	return out
}

func anyTagPresent(have []domain.Tag, want []domain.Tag) bool {
	for _, w := range want {
		if HasTag(have, w) {
			return true
		}
	}
	return false
}

// moduleCatalog maps derived tags to the chapter modules worth surfacing,
// in fixed display order. Bookkeeping and cash are always on.
var moduleCatalog = []struct {
	key  string
	tags []domain.Tag
}{
	{"bookkeeping", []domain.Tag{TagCoreBooks}},
	{"cash", []domain.Tag{TagCoreCash}},
	{"entity", []domain.Tag{TagEntitySCorp, TagEntityCCorp, TagEntityPartnership}},
	{"payroll", []domain.Tag{"payroll.yes"}},
	{"inventory", []domain.Tag{"inventory.yes"}},
	{"nexus", []domain.Tag{"multistate.yes", "states.multi"}},
	{"international", []domain.Tag{"international.yes"}},
}

// SelectModules returns the module keys relevant to the tag set, in
// catalog order.
func SelectModules(tags []domain.Tag) []string {
	var out []string
	for _, m := range moduleCatalog {
		if anyTagPresent(tags, m.tags) {
			out = append(out, m.key)
		}
	}
	return out
}

// MaxQuestions caps the filtered advisor-question list.
const MaxQuestions = 25

// FilterQuestions keeps catalog questions whose tags intersect the
// derived set. Untagged questions always apply. Catalog order is
// preserved; output is truncated to MaxQuestions.
func FilterQuestions(questions []domain.Question, tags []domain.Tag) []domain.Question {
	var out []domain.Question
	for _, q := range questions {
		if len(q.Tags) > 0 && !anyTagPresent(tags, q.Tags) {
			continue
		}
		out = append(out, q)
		if len(out) == MaxQuestions {
			break
		}
	}
	return out
}

// FilterWatchlist keeps watchlist items whose trigger matches the intake.
// Items with a nil or malformed trigger are silently excluded.
func FilterWatchlist(items []domain.WatchlistItem, in *domain.Intake) []domain.WatchlistItem {
	var out []domain.WatchlistItem
	for _, item := range items {
		if EvaluateGroup(in, item.When) {
			out = append(out, item)
		}
	}
	return out
}
