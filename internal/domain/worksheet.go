package domain

import (
	"fmt"
	"time"
)

// OfferDraft is the offer-builder worksheet: one row per user,
// last write wins.
type OfferDraft struct {
	UserID       string
	Name         string
	Promise      string
	PriceUSD     int
	Deliverables []string
	UpdatedAt    time.Time
}

// CadenceBlock is one weekly working block from the cadence planner,
// keyed by (user, day).
type CadenceBlock struct {
	UserID    string
	Day       CadenceDay
	Theme     string
	Minutes   int
	UpdatedAt time.Time
}

// SOPDoc is a standard-operating-procedure worksheet, keyed by
// (user, slug).
type SOPDoc struct {
	UserID    string
	Slug      string
	Title     string
	Steps     []string
	UpdatedAt time.Time
}

// MoneySplit is the money-split calculator worksheet: percentage
// allocations of revenue across the four buckets.
type MoneySplit struct {
	UserID      string
	OwnerPayPct int
	TaxPct      int
	ProfitPct   int
	OpexPct     int
	UpdatedAt   time.Time
}

// Validate checks that the four allocations cover exactly 100% and that
// no bucket is negative.
func (m *MoneySplit) Validate() error {
	for name, pct := range map[string]int{
		"owner_pay": m.OwnerPayPct,
		"tax":       m.TaxPct,
		"profit":    m.ProfitPct,
		"opex":      m.OpexPct,
	} {
		if pct < 0 {
			return fmt.Errorf("%s allocation must not be negative (got %d)", name, pct)
		}
	}
	sum := m.OwnerPayPct + m.TaxPct + m.ProfitPct + m.OpexPct
	if sum != 100 {
		return fmt.Errorf("allocations must sum to 100%% (got %d%%)", sum)
	}
	return nil
}

// SplitAmounts holds dollar amounts (in cents) after applying a split to a
// revenue figure.
type SplitAmounts struct {
	OwnerPayCents int64
	TaxCents      int64
	ProfitCents   int64
	OpexCents     int64
}

// Allocate applies the split to revenueCents. Rounding remainders from the
// first three buckets land in opex so the four amounts always sum to the
// input exactly.
func (m *MoneySplit) Allocate(revenueCents int64) SplitAmounts {
	owner := revenueCents * int64(m.OwnerPayPct) / 100
	tax := revenueCents * int64(m.TaxPct) / 100
	profit := revenueCents * int64(m.ProfitPct) / 100
	return SplitAmounts{
		OwnerPayCents: owner,
		TaxCents:      tax,
		ProfitCents:   profit,
		OpexCents:     revenueCents - owner - tax - profit,
	}
}

// AssessmentResult is one completed readiness quiz, keyed by user.
type AssessmentResult struct {
	UserID  string
	Score   int
	Band    AssessmentBand
	TakenAt time.Time
}

// BandForScore buckets a raw quiz score into a readiness band.
// Scores run 0..maxScore.
func BandForScore(score, maxScore int) AssessmentBand {
	if maxScore <= 0 {
		return BandFoundation
	}
	pct := score * 100 / maxScore
	switch {
	case pct >= 70:
		return BandScaling
	case pct >= 40:
		return BandBuilding
	default:
		return BandFoundation
	}
}
