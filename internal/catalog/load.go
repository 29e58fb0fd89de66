package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// Load reads and validates a catalog JSON file. Unparseable JSON is a
// hard error; individually malformed rows are dropped with a warning so
// one bad entry cannot take down the rest of the catalog.
func Load(path string) (*Bundle, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Parse(data)
}

// Parse validates raw catalog JSON. The returned warnings name every row
// that was dropped and why.
func Parse(data []byte) (*Bundle, []string, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parsing catalog: %w", err)
	}

	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	c := &domain.Catalog{}

	seen := map[string]bool{}
	keep := func(section, id string) bool {
		if id == "" {
			warn("%s: dropped row with empty id", section)
			return false
		}
		key := section + "/" + id
		if seen[key] {
			warn("%s[%s]: dropped duplicate id", section, id)
			return false
		}
		seen[key] = true
		return true
	}

	for _, p := range f.Priorities {
		if !keep("priority", p.ID) {
			continue
		}
		if p.Title == "" {
			warn("priority[%s]: dropped, title is required", p.ID)
			continue
		}
		c.Priorities = append(c.Priorities, p)
	}

	for _, w := range f.Watchlist {
		if !keep("watchlist", w.ID) {
			continue
		}
		if w.Title == "" {
			warn("watchlist[%s]: dropped, title is required", w.ID)
			continue
		}
		if msg := checkGroup(w.When); msg != "" {
			warn("watchlist[%s]: dropped, %s", w.ID, msg)
			continue
		}
		c.Watchlist = append(c.Watchlist, w)
	}

	for _, a := range f.Actions {
		if !keep("action", a.ID) {
			continue
		}
		if a.Title == "" {
			warn("action[%s]: dropped, title is required", a.ID)
			continue
		}
		switch a.Frequency {
		case domain.FreqMonthly, domain.FreqQuarterly, domain.FreqAnnual:
		default:
			warn("action[%s]: dropped, unknown frequency %q", a.ID, a.Frequency)
			continue
		}
		c.Actions = append(c.Actions, a)
	}

	for _, s := range f.Suggestions {
		if !keep("suggestion", s.ID) {
			continue
		}
		if s.Value == "" {
			warn("suggestion[%s]: dropped, value is required", s.ID)
			continue
		}
		if msg := checkGroup(s.When); msg != "" {
			warn("suggestion[%s]: dropped, %s", s.ID, msg)
			continue
		}
		c.Suggestions = append(c.Suggestions, s)
	}

	for _, q := range f.Questions {
		if !keep("question", q.ID) {
			continue
		}
		if q.Prompt == "" {
			warn("question[%s]: dropped, prompt is required", q.ID)
			continue
		}
		c.Questions = append(c.Questions, q)
	}

	b := &Bundle{Catalog: c}

	for _, e := range f.Evidence {
		if !keep("evidence", e.Key) {
			continue
		}
		if e.Label == "" {
			warn("evidence[%s]: dropped, label is required", e.Key)
			continue
		}
		b.Evidence = append(b.Evidence, e)
	}

	for _, q := range f.Assessment {
		if !keep("assessment", q.ID) {
			continue
		}
		if q.Prompt == "" || len(q.Options) < 2 {
			warn("assessment[%s]: dropped, needs a prompt and at least two options", q.ID)
			continue
		}
		b.Assessment = append(b.Assessment, q)
	}

	return b, warnings, nil
}

// checkGroup validates a trigger against the intake schema. The empty
// string means the group is usable. A nil group is fine here: rows with
// no trigger simply never match, which some sections use deliberately.
func checkGroup(g *domain.RuleGroup) string {
	if g == nil {
		return ""
	}
	if g.All != nil && g.Any != nil {
		return "trigger declares both all and any"
	}
	rules := g.All
	if rules == nil {
		rules = g.Any
	}
	if rules == nil {
		return "trigger declares neither all nor any"
	}
	for i, r := range rules {
		if _, ok := domain.IntakeSchema[r.Field]; !ok {
			return fmt.Sprintf("rule %d targets unknown field %q", i, r.Field)
		}
		if !domain.ValidOperators[string(r.Op)] {
			return fmt.Sprintf("rule %d uses unknown operator %q", i, r.Op)
		}
		if r.Op == domain.OpIn && len(r.Values) == 0 {
			return fmt.Sprintf("rule %d uses in with no values", i)
		}
	}
	return ""
}
