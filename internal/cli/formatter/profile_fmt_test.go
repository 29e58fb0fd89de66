package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
)

// stripANSI removes escape sequences so assertions can match plain text.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"Day", "Theme"},
		[][]string{{"monday", "deep work"}, {"fri", "admin"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Day")
	assert.Contains(t, lines[2], "monday")
	assert.True(t, strings.Index(lines[2], "deep work") == strings.Index(lines[3], "admin"),
		"second column starts at the same offset in every row")
}

func TestFormatChecklistCountsRequiredOnly(t *testing.T) {
	out := stripANSI(FormatChecklist([]domain.EvidenceItem{
		{Key: "a", Label: "Letter", Required: true, Done: true},
		{Key: "b", Label: "Return", Required: true},
		{Key: "c", Label: "Log", Required: false, Done: true},
	}))
	assert.Contains(t, out, "1 of 2 required items done")
	assert.Contains(t, out, "[x] Letter")
	assert.Contains(t, out, "[ ] Return")
	assert.Contains(t, out, "(optional)")
}

func TestFormatCadence(t *testing.T) {
	assert.Contains(t, stripANSI(FormatCadence(nil)), "No cadence blocks")

	out := stripANSI(FormatCadence([]domain.CadenceBlock{
		{Day: domain.DayMonday, Theme: "deep work", Minutes: 90},
		{Day: domain.DayFriday, Theme: "admin", Minutes: 30},
	}))
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Total: 120 min/week")
}

func TestFormatSplitWithAmounts(t *testing.T) {
	m := &domain.MoneySplit{OwnerPayPct: 50, TaxPct: 20, ProfitPct: 10, OpexPct: 20}

	plain := stripANSI(FormatSplit(m, nil))
	assert.Contains(t, plain, "Owner pay")
	assert.NotContains(t, plain, "$")

	amounts := m.Allocate(100_000)
	withAmounts := stripANSI(FormatSplit(m, &amounts))
	assert.Contains(t, withAmounts, "$500.00")
}

func TestBandIndicator(t *testing.T) {
	assert.Contains(t, stripANSI(BandIndicator(domain.BandScaling)), "SCALING")
	assert.Contains(t, stripANSI(BandIndicator(domain.BandFoundation)), "FOUNDATION")
}

func TestFormatProfileSections(t *testing.T) {
	p := &domain.Profile{
		UserID:     "u1",
		Confidence: 55,
		Tags:       []domain.Tag{"core.books"},
		Priorities: []domain.Priority{{Title: "Bookkeeping rhythm", Why: "books first"}},
		Watchlist:  []domain.WatchlistItem{{Title: "Nexus check", Consequence: "penalties"}},
		Calendar:   []domain.CalendarEvent{{Title: "Estimated taxes due", Date: "2026-04-15"}},
	}
	out := stripANSI(FormatProfile(p))
	assert.Contains(t, out, "confidence 55/100")
	assert.Contains(t, out, "core.books")
	assert.Contains(t, out, "1. Bookkeeping rhythm")
	assert.Contains(t, out, "Nexus check")
	assert.Contains(t, out, "2026-04-15")
}
