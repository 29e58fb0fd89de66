// Package export renders profiles and memos as plain markdown for
// sharing outside the terminal.
package export

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// MemoInput is everything the memo renderer needs. The renderer is pure:
// versioning and persistence happen in the service layer.
type MemoInput struct {
	Topic      string
	Version    int
	Date       string
	BestFit    string
	Decision   string
	Decided    bool
	Confidence int
	Intake     *domain.Intake
	Watchlist  []domain.WatchlistItem
}

// MemoTitle derives the memo heading from its topic.
func MemoTitle(topic string) string {
	t := strings.TrimSpace(topic)
	if t == "" {
		return "Decision memo"
	}
	return strings.ToUpper(t[:1]) + t[1:] + " decision memo"
}

// Memo renders a decision memo body as markdown.
func Memo(in MemoInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", MemoTitle(in.Topic))
	fmt.Fprintf(&b, "_Version %d, %s_\n\n", in.Version, in.Date)

	b.WriteString("## Outcome\n\n")
	if in.Decided {
		fmt.Fprintf(&b, "Chosen: **%s**\n\n", in.Decision)
		if in.BestFit != "" && in.BestFit != in.Decision {
			fmt.Fprintf(&b, "Note: the rule catalog suggested **%s** instead. Document why you diverged.\n\n", in.BestFit)
		}
	} else if in.BestFit != "" {
		fmt.Fprintf(&b, "Suggested best fit: **%s** (no decision recorded yet)\n\n", in.BestFit)
	} else {
		b.WriteString("No suggestion matched this intake and no decision was recorded.\n\n")
	}
	fmt.Fprintf(&b, "Confidence: %d/100\n\n", in.Confidence)

	if in.Intake != nil {
		b.WriteString("## Business snapshot\n\n")
		writeIntake(&b, in.Intake)
	}

	if len(in.Watchlist) > 0 {
		b.WriteString("## Watch items\n\n")
		for _, w := range in.Watchlist {
			fmt.Fprintf(&b, "- **%s**: %s\n", w.Title, w.Consequence)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\nThis memo is a planning aid, not tax advice. Review it with your advisor.\n")
	return b.String()
}

// Profile renders a composed profile as a markdown report.
func Profile(p *domain.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Business profile for %s\n\n", p.UserID)
	fmt.Fprintf(&b, "_Generated %s, confidence %d/100_\n\n",
		p.CreatedAt.Format("2006-01-02"), p.Confidence)

	b.WriteString("## Snapshot\n\n")
	writeIntake(&b, &p.Intake)

	if len(p.Priorities) > 0 {
		b.WriteString("## Priorities\n\n")
		for i, pr := range p.Priorities {
			fmt.Fprintf(&b, "%d. **%s**", i+1, pr.Title)
			if pr.Why != "" {
				fmt.Fprintf(&b, " - %s", pr.Why)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(p.Watchlist) > 0 {
		b.WriteString("## Watchlist\n\n")
		for _, w := range p.Watchlist {
			fmt.Fprintf(&b, "- **%s**: %s\n", w.Title, w.Consequence)
		}
		b.WriteString("\n")
	}

	if len(p.Calendar) > 0 {
		b.WriteString("## Planning calendar\n\n")
		b.WriteString("| Date | Event |\n|------|-------|\n")
		for _, ev := range p.Calendar {
			fmt.Fprintf(&b, "| %s | %s |\n", ev.Date, ev.Title)
		}
		b.WriteString("\n")
	}

	if len(p.Questions) > 0 {
		b.WriteString("## Questions for your advisor\n\n")
		for _, q := range p.Questions {
			fmt.Fprintf(&b, "- %s\n", q.Prompt)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeIntake(b *strings.Builder, in *domain.Intake) {
	pairs := []struct{ label, value string }{
		{"Legal form", in.EntityLegalForm},
		{"Tax classification", in.TaxClassification},
		{"Industry", in.Industry},
		{"Revenue", in.RevenueBracket},
		{"W-2 payroll", in.PayrollW2Bracket},
		{"States", strings.Join(in.StateCodes, ", ")},
		{"Inventory", yesNo(in.HasInventory)},
		{"Multi-state", yesNo(in.MultiState)},
		{"International", yesNo(in.International)},
	}
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		fmt.Fprintf(b, "- %s: %s\n", p.label, p.value)
	}
	b.WriteString("\n")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
