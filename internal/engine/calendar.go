package engine

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// The synthesized calendar is a planning aid, not a filing authority.
// Day-of-month constants are deliberate placeholders: real deadlines vary
// by jurisdiction and entity type, and statutory dates that land on a
// weekend or holiday shift in ways this tool does not model. Every
// statutory event carries a caveat note instead.

const (
	checkinDay    = 10 // quarterly check-in: 10th of Jan, Apr, Jul, Oct
	monthlyDay    = 25 // monthly actions: 25th of the year's first month
	quarterlyDay  = 12 // quarterly actions: 12th of each quarter's first month
	annualMonth   = 12 // annual actions: Dec 1
	annualDay     = 1
	shiftCaveat   = "Shifts if it lands on a weekend or holiday; confirm the actual date."
	estTaxCaveat  = "Approximate federal estimated-tax date. " + shiftCaveat
	checkinTitle  = "Quarterly finance check-in"
	estTaxesTitle = "Estimated taxes due"
)

// estTaxSchedule holds the four estimated-tax events as (month, day,
// yearOffset); the Q4 payment falls in January of the following year.
var estTaxSchedule = []struct {
	month, day, yearOffset int
}{
	{4, 15, 0},
	{6, 15, 0},
	{9, 15, 0},
	{1, 15, 1},
}

var checkinMonths = [4]int{1, 4, 7, 10}

// Synthesize expands the fixed statutory schedule plus the given recurring
// action templates into a deduplicated calendar for one year. Events with
// an identical (date, title) pair collapse to the first occurrence; the
// result is sorted ascending by date with insertion order breaking ties.
func Synthesize(year int, actions []domain.RecurringAction) []domain.CalendarEvent {
	var events []domain.CalendarEvent

	for _, m := range checkinMonths {
		events = append(events, domain.CalendarEvent{
			Title: checkinTitle,
			Date:  isoDate(year, m, checkinDay),
			Note:  "Review books, cash position, and upcoming obligations.",
		})
	}
	for _, s := range estTaxSchedule {
		events = append(events, domain.CalendarEvent{
			Title: estTaxesTitle,
			Date:  isoDate(year+s.yearOffset, s.month, s.day),
			Note:  estTaxCaveat,
		})
	}

	for _, a := range actions {
		events = append(events, expandAction(year, a)...)
	}

	return dedupeAndSort(events)
}

// expandAction turns one recurring template into dated events. Unknown
// frequencies expand to nothing; a bad catalog row must not break the
// calendar.
func expandAction(year int, a domain.RecurringAction) []domain.CalendarEvent {
	switch a.Frequency {
	case domain.FreqMonthly:
		return []domain.CalendarEvent{{
			Title: a.Title,
			Date:  isoDate(year, 1, monthlyDay),
			Note:  a.Note,
		}}
	case domain.FreqAnnual:
		return []domain.CalendarEvent{{
			Title: a.Title,
			Date:  isoDate(year, annualMonth, annualDay),
			Note:  a.Note,
		}}
	case domain.FreqQuarterly:
		events := make([]domain.CalendarEvent, 0, 4)
		for q := 0; q < 4; q++ {
			events = append(events, domain.CalendarEvent{
				Title: fmt.Sprintf("%s (Q%d)", a.Title, q+1),
				Date:  isoDate(year, q*3+1, quarterlyDay),
				Note:  a.Note,
			})
		}
		return events
	}
	return nil
}

// dedupeAndSort collapses duplicate (date, title) pairs, first wins, then
// sorts ascending by date. YYYY-MM-DD strings order correctly under plain
// lexicographic comparison, and the stable sort preserves insertion order
// on equal dates.
func dedupeAndSort(events []domain.CalendarEvent) []domain.CalendarEvent {
	type key struct{ date, title string }
	seen := make(map[key]bool, len(events))
	out := events[:0]
	for _, e := range events {
		k := key{e.Date, e.Title}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func isoDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
