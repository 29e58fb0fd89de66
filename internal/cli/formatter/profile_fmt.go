package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// FormatProfile renders a composed profile for the terminal.
func FormatProfile(p *domain.Profile) string {
	var b strings.Builder

	b.WriteString(Header("Business profile"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n\n",
		Dim("Generated "+p.CreatedAt.Format("2006-01-02")),
		ConfidenceStyle(p.Confidence).Render(fmt.Sprintf("confidence %d/100", p.Confidence)))

	if len(p.Tags) > 0 {
		tags := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			tags = append(tags, string(t))
		}
		fmt.Fprintf(&b, "%s %s\n\n", Bold("Tags:"), Dim(strings.Join(tags, " ")))
	}

	if len(p.Priorities) > 0 {
		b.WriteString(Header("Priorities"))
		b.WriteString("\n")
		for i, pr := range p.Priorities {
			fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)), Bold(pr.Title))
			if pr.Why != "" {
				fmt.Fprintf(&b, "   %s\n", Dim(pr.Why))
			}
		}
		b.WriteString("\n")
	}

	if len(p.Watchlist) > 0 {
		b.WriteString(Header("Watchlist"))
		b.WriteString("\n")
		for _, w := range p.Watchlist {
			fmt.Fprintf(&b, "%s %s\n   %s\n", StyleYellow.Render("!"), Bold(w.Title), Dim(w.Consequence))
		}
		b.WriteString("\n")
	}

	if len(p.Calendar) > 0 {
		b.WriteString(Header("Planning calendar"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(p.Calendar))
		for _, ev := range p.Calendar {
			note := ev.Note
			rows = append(rows, []string{ev.Date, ev.Title, Dim(note)})
		}
		b.WriteString(RenderTable([]string{"Date", "Event", "Note"}, rows))
		b.WriteString("\n")
	}

	if len(p.Questions) > 0 {
		b.WriteString(Header("Ask your advisor"))
		b.WriteString("\n")
		for _, q := range p.Questions {
			fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render("?"), q.Prompt)
		}
	}

	return b.String()
}

// FormatChecklist renders the evidence checklist with progress.
func FormatChecklist(items []domain.EvidenceItem) string {
	var b strings.Builder

	done, required := 0, 0
	for _, it := range items {
		if it.Required {
			required++
			if it.Done {
				done++
			}
		}
	}

	b.WriteString(Header("Evidence checklist"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n\n", Dim(fmt.Sprintf("%d of %d required items done", done, required)))

	for _, it := range items {
		label := it.Label
		if !it.Required {
			label += " " + Dim("(optional)")
		}
		fmt.Fprintf(&b, "%s %s  %s\n", Check(it.Done), label, Dim(it.Key))
	}
	return b.String()
}

// FormatCadence renders the weekly cadence plan.
func FormatCadence(blocks []domain.CadenceBlock) string {
	if len(blocks) == 0 {
		return Dim("No cadence blocks planned yet.")
	}
	rows := make([][]string, 0, len(blocks))
	total := 0
	for _, blk := range blocks {
		rows = append(rows, []string{
			capitalize(string(blk.Day)),
			blk.Theme,
			fmt.Sprintf("%d min", blk.Minutes),
		})
		total += blk.Minutes
	}
	return RenderTable([]string{"Day", "Theme", "Time"}, rows) +
		"\n" + Dim(fmt.Sprintf("Total: %d min/week", total))
}

// FormatSplit renders a money split, optionally with allocated amounts.
func FormatSplit(m *domain.MoneySplit, amounts *domain.SplitAmounts) string {
	rows := [][]string{
		{"Owner pay", fmt.Sprintf("%d%%", m.OwnerPayPct)},
		{"Tax", fmt.Sprintf("%d%%", m.TaxPct)},
		{"Profit", fmt.Sprintf("%d%%", m.ProfitPct)},
		{"Operating", fmt.Sprintf("%d%%", m.OpexPct)},
	}
	headers := []string{"Bucket", "Share"}
	if amounts != nil {
		headers = append(headers, "Amount")
		dollars := []int64{amounts.OwnerPayCents, amounts.TaxCents, amounts.ProfitCents, amounts.OpexCents}
		for i := range rows {
			rows[i] = append(rows[i], fmt.Sprintf("$%.2f", float64(dollars[i])/100))
		}
	}
	return RenderTable(headers, rows)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatAssessment renders a stored readiness result.
func FormatAssessment(r *domain.AssessmentResult, maxScore int) string {
	return fmt.Sprintf("%s  %s\n%s",
		BandIndicator(r.Band),
		Bold(fmt.Sprintf("%d/%d", r.Score, maxScore)),
		Dim("Taken "+r.TakenAt.Format("2006-01-02")))
}
