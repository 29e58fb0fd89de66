package testutil

import (
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// Intake options
type IntakeOption func(*domain.Intake)

func WithEntityLegalForm(s string) IntakeOption {
	return func(in *domain.Intake) {
		in.EntityLegalForm = s
	}
}

func WithTaxClassification(s string) IntakeOption {
	return func(in *domain.Intake) {
		in.TaxClassification = s
	}
}

func WithStateCodes(codes ...string) IntakeOption {
	return func(in *domain.Intake) {
		in.StateCodes = codes
	}
}

func WithIndustry(s string) IntakeOption {
	return func(in *domain.Intake) {
		in.Industry = s
	}
}

func WithRevenueBracket(s string) IntakeOption {
	return func(in *domain.Intake) {
		in.RevenueBracket = s
	}
}

func WithPayrollBracket(s string) IntakeOption {
	return func(in *domain.Intake) {
		in.PayrollW2Bracket = s
	}
}

func WithInventory() IntakeOption {
	return func(in *domain.Intake) {
		in.HasInventory = true
	}
}

func WithMultiState() IntakeOption {
	return func(in *domain.Intake) {
		in.MultiState = true
	}
}

func WithInternational() IntakeOption {
	return func(in *domain.Intake) {
		in.International = true
	}
}

// NewTestIntake returns a defaulted intake for userID with options applied.
func NewTestIntake(userID string, opts ...IntakeOption) *domain.Intake {
	in := domain.NewIntake(userID)
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// NewSCorpIntake returns the canonical S-corp-with-payroll intake used
// across scenario tests.
func NewSCorpIntake(userID string) *domain.Intake {
	return NewTestIntake(userID,
		WithEntityLegalForm("S corporation (Inc./Corp. or LLC that elected S status)"),
		WithTaxClassification("s_corp"),
		WithStateCodes("NC", "SC"),
		WithIndustry("Consulting"),
		WithRevenueBracket("250k-1m"),
		WithPayrollBracket("4-5"),
		WithMultiState(),
	)
}

// NewTestCatalog returns a small but fully populated advisory catalog.
func NewTestCatalog() *domain.Catalog {
	return &domain.Catalog{
		Priorities: []domain.Priority{
			{ID: "books", Title: "Bookkeeping rhythm", Tags: []domain.Tag{"core.books"}},
			{ID: "cash", Title: "Cash reserve discipline", Tags: []domain.Tag{"core.cash"}},
		},
		Watchlist: []domain.WatchlistItem{
			{
				ID:          "scorp_salary",
				Title:       "Reasonable salary review",
				Consequence: "IRS can reclassify distributions as wages.",
				When: &domain.RuleGroup{All: []domain.Rule{
					{Field: domain.FieldEntityLegalForm, Op: domain.OpContains, Value: "s corp"},
				}},
			},
			{
				ID:          "nexus",
				Title:       "Nexus registration check",
				Consequence: "Unregistered state activity accrues penalties.",
				When: &domain.RuleGroup{Any: []domain.Rule{
					{Field: domain.FieldMultiState, Op: domain.OpIsTruthy},
					{Field: domain.FieldStateCodes, Op: domain.OpIsTruthy},
				}},
			},
		},
		Actions: []domain.RecurringAction{
			{ID: "reconcile", Title: "Reconcile accounts", Frequency: domain.FreqMonthly},
			{ID: "sales_tax", Title: "Sales tax filing", Frequency: domain.FreqQuarterly},
		},
		Suggestions: []domain.SuggestionRule{
			{
				ID: "scorp", Value: "s_corp",
				When: &domain.RuleGroup{All: []domain.Rule{
					{Field: domain.FieldEntityLegalForm, Op: domain.OpContains, Value: "s corp"},
				}},
			},
			{ID: "default", Value: "sole_prop", When: &domain.RuleGroup{All: []domain.Rule{}}},
		},
		Questions: []domain.Question{
			{ID: "q_books", Prompt: "Who closes your books each month?"},
			{ID: "q_salary", Prompt: "How did you set your salary?", Tags: []domain.Tag{"entity.s_corp"}},
		},
	}
}

// EvidenceOption mutates a test evidence item.
type EvidenceOption func(*domain.EvidenceItem)

func WithDone() EvidenceOption {
	return func(e *domain.EvidenceItem) {
		e.Done = true
	}
}

func WithOptional() EvidenceOption {
	return func(e *domain.EvidenceItem) {
		e.Required = false
	}
}

// NewTestEvidence returns a required, not-done evidence item.
func NewTestEvidence(userID, key string, opts ...EvidenceOption) *domain.EvidenceItem {
	e := &domain.EvidenceItem{
		UserID:   userID,
		Key:      key,
		Label:    key,
		Required: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FixedNow is the deterministic clock used by scenario tests.
var FixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
