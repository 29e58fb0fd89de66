package engine

import (
	"sort"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// Baseline tags emitted for every intake: bookkeeping and cash discipline
// apply to every business regardless of answers.
const (
	TagCoreBooks domain.Tag = "core.books"
	TagCoreCash  domain.Tag = "core.cash"
)

// Semantic entity tags derived from the legal-form answer.
const (
	TagEntitySCorp       domain.Tag = "entity.s_corp"
	TagEntityCCorp       domain.Tag = "entity.c_corp"
	TagEntityPartnership domain.Tag = "entity.partnership"
	TagEntitySoleProp    domain.Tag = "entity.sole_prop"
	TagEntityNonprofit   domain.Tag = "entity.nonprofit"
	TagEntityTrust       domain.Tag = "entity.trust"
)

// entityMarkers maps lowercase substrings of the legal-form answer to
// semantic entity tags. Multiple markers may fire on one answer.
var entityMarkers = []struct {
	marker string
	tag    domain.Tag
}{
	{"s corp", TagEntitySCorp},
	{"s-corp", TagEntitySCorp},
	{"s_corp", TagEntitySCorp},
	{"c corp", TagEntityCCorp},
	{"c-corp", TagEntityCCorp},
	{"partnership", TagEntityPartnership},
	{"multi-member", TagEntityPartnership},
	{"sole prop", TagEntitySoleProp},
	{"sole-prop", TagEntitySoleProp},
	{"nonprofit", TagEntityNonprofit},
	{"non-profit", TagEntityNonprofit},
	{"trust", TagEntityTrust},
}

// DeriveTags converts an intake into its deduplicated tag set. The same
// intake always yields the same set; callers should compare results as
// sets, not sequences, though the output order is deterministic (sorted).
func DeriveTags(in *domain.Intake) []domain.Tag {
	if in == nil {
		in = domain.NewIntake("")
	}
	seen := make(map[domain.Tag]bool)
	var tags []domain.Tag
	add := func(t domain.Tag) {
		if t != "" && !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}

	add(TagCoreBooks)
	add(TagCoreCash)

	if entity := normalize(in.EntityLegalForm); entity != "" {
		add(domain.Tag("entity." + slugify(entity)))
		for _, m := range entityMarkers {
			if strings.Contains(entity, m.marker) {
				add(m.tag)
			}
		}
	}

	if industry := normalize(in.Industry); industry != "" {
		add(domain.Tag("industry." + slugify(industry)))
	}
	if revenue := normalize(in.RevenueBracket); revenue != "" {
		add(domain.Tag("revenue." + slugify(revenue)))
	}

	payroll := normalize(in.PayrollW2Bracket)
	if payroll != "" && payroll != "0" && payroll != "none" {
		add("payroll.yes")
	} else {
		add("payroll.no")
	}

	add(yesNoTag("inventory", in.HasInventory))
	add(yesNoTag("multistate", in.MultiState))
	add(yesNoTag("international", in.International))

	switch {
	case len(in.StateCodes) > 1:
		add("states.multi")
	case len(in.StateCodes) == 1:
		add(domain.Tag("states." + slugify(normalize(in.StateCodes[0]))))
	}

	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

func yesNoTag(group string, v bool) domain.Tag {
	if v {
		return domain.Tag(group + ".yes")
	}
	return domain.Tag(group + ".no")
}

// normalize lowercases and trims an answer for marker matching.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// slugify reduces a normalized answer to a tag-safe suffix: spaces and
// punctuation collapse to single underscores.
func slugify(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// HasTag reports whether the tag set contains t.
func HasTag(tags []domain.Tag, t domain.Tag) bool {
	for _, have := range tags {
		if have == t {
			return true
		}
	}
	return false
}
