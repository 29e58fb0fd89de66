package catalog

import "github.com/alexanderramin/groundwork/internal/domain"

// Default returns the shipped advisory catalog. It seeds storage on first
// run and is the fallback whenever no external catalog file is configured.
// Section order is load-bearing: priorities rank and suggestions resolve
// first-match-wins in the order written here.
func Default() *Bundle {
	return &Bundle{
		Catalog: &domain.Catalog{
			Priorities:  defaultPriorities,
			Watchlist:   defaultWatchlist,
			Actions:     defaultActions,
			Suggestions: defaultSuggestions,
			Questions:   defaultQuestions,
		},
		Evidence:   defaultEvidence,
		Assessment: defaultAssessment,
	}
}

var defaultPriorities = []domain.Priority{
	{
		ID:    "books",
		Title: "Bookkeeping rhythm",
		Why:   "Clean monthly books are the foundation every other decision sits on.",
		Tags:  []domain.Tag{"core.books"},
	},
	{
		ID:    "cash",
		Title: "Cash reserve discipline",
		Why:   "A cash buffer turns tax season from a crisis into a line item.",
		Tags:  []domain.Tag{"core.cash"},
	},
	{
		ID:    "owner_pay",
		Title: "Owner pay plan",
		Why:   "S corporation owners need a defensible reasonable-salary split.",
		Tags:  []domain.Tag{"entity.s_corp"},
	},
	{
		ID:    "payroll_filings",
		Title: "Payroll filings",
		Why:   "W-2 payroll brings quarterly filing and deposit obligations.",
		Tags:  []domain.Tag{"payroll.yes"},
	},
	{
		ID:    "cogs",
		Title: "COGS tracking",
		Why:   "Inventory businesses live or die on cost-of-goods accuracy.",
		Tags:  []domain.Tag{"inventory.yes"},
	},
	{
		ID:    "multi_state",
		Title: "Multi-state watch",
		Why:   "Crossing state lines can create registration and nexus duties.",
		Tags:  []domain.Tag{"multistate.yes", "states.multi"},
	},
	{
		ID:    "cross_border",
		Title: "Cross-border vendors",
		Why:   "International activity adds reporting forms with steep penalties.",
		Tags:  []domain.Tag{"international.yes"},
	},
}

var defaultWatchlist = []domain.WatchlistItem{
	{
		ID:          "scorp_salary",
		Title:       "Reasonable salary review",
		Consequence: "The IRS can reclassify S corporation distributions as wages and assess back payroll tax.",
		When: &domain.RuleGroup{Any: []domain.Rule{
			{Field: domain.FieldEntityLegalForm, Op: domain.OpContains, Value: "s corp"},
			{Field: domain.FieldTaxClassification, Op: domain.OpEquals, Value: "s_corp"},
		}},
	},
	{
		ID:          "payroll_deposits",
		Title:       "Payroll deposit schedule",
		Consequence: "Late federal payroll deposits carry penalties that start at 2% and climb fast.",
		When: &domain.RuleGroup{All: []domain.Rule{
			{Field: domain.FieldPayrollW2Bracket, Op: domain.OpIsTruthy},
		}},
	},
	{
		ID:          "state_nexus",
		Title:       "Nexus registration check",
		Consequence: "Selling or hiring across state lines without registering accrues penalties per state.",
		When: &domain.RuleGroup{Any: []domain.Rule{
			{Field: domain.FieldMultiState, Op: domain.OpIsTruthy},
			{Field: domain.FieldStateCodes, Op: domain.OpIsTruthy},
		}},
	},
	{
		ID:          "inventory_method",
		Title:       "Inventory accounting method",
		Consequence: "An inconsistent costing method invites an exam adjustment of prior-year income.",
		When: &domain.RuleGroup{All: []domain.Rule{
			{Field: domain.FieldHasInventory, Op: domain.OpIsTruthy},
		}},
	},
	{
		ID:          "foreign_reporting",
		Title:       "Foreign reporting forms",
		Consequence: "Missing an international information return can cost $10,000 per form, per year.",
		When: &domain.RuleGroup{All: []domain.Rule{
			{Field: domain.FieldInternational, Op: domain.OpIsTruthy},
		}},
	},
	{
		ID:          "revenue_threshold",
		Title:       "Entity structure checkup",
		Consequence: "Past the mid six figures, the default structure often stops being the cheapest one.",
		When: &domain.RuleGroup{All: []domain.Rule{
			{Field: domain.FieldRevenueBracket, Op: domain.OpIn, Values: []string{"250k-1m", "1m+"}},
		}},
	},
}

var defaultActions = []domain.RecurringAction{
	{ID: "reconcile", Title: "Reconcile all accounts", Frequency: domain.FreqMonthly, Note: "Bank, credit card, and loan balances against the books."},
	{ID: "owner_draw", Title: "Run owner pay", Frequency: domain.FreqMonthly, Note: "Pay yourself on schedule, not when cash feels loose."},
	{ID: "cash_review", Title: "Cash position review", Frequency: domain.FreqMonthly},
	{ID: "payroll_941", Title: "Quarterly payroll filing", Frequency: domain.FreqQuarterly, Note: "Form 941 and state equivalents."},
	{ID: "sales_tax", Title: "Sales tax filing", Frequency: domain.FreqQuarterly},
	{ID: "annual_report", Title: "State annual report", Frequency: domain.FreqAnnual, Note: "Registered-agent and franchise filings."},
	{ID: "year_end_close", Title: "Year-end close with advisor", Frequency: domain.FreqAnnual},
}

var defaultSuggestions = []domain.SuggestionRule{
	{
		ID: "elected_s_corp", Value: "s_corp",
		When: &domain.RuleGroup{Any: []domain.Rule{
			{Field: domain.FieldTaxClassification, Op: domain.OpEquals, Value: "s_corp"},
			{Field: domain.FieldEntityLegalForm, Op: domain.OpContains, Value: "s corp"},
		}},
	},
	{
		ID: "c_corp", Value: "c_corp",
		When: &domain.RuleGroup{Any: []domain.Rule{
			{Field: domain.FieldTaxClassification, Op: domain.OpEquals, Value: "c_corp"},
			{Field: domain.FieldEntityLegalForm, Op: domain.OpContains, Value: "c corp"},
		}},
	},
	{
		ID: "partnership", Value: "partnership",
		When: &domain.RuleGroup{Any: []domain.Rule{
			{Field: domain.FieldTaxClassification, Op: domain.OpEquals, Value: "partnership"},
			{Field: domain.FieldEntityLegalForm, Op: domain.OpContains, Value: "partnership"},
		}},
	},
	{
		ID: "scorp_candidate", Value: "s_corp_candidate",
		When: &domain.RuleGroup{All: []domain.Rule{
			{Field: domain.FieldRevenueBracket, Op: domain.OpIn, Values: []string{"100k-250k", "250k-1m", "1m+"}},
			{Field: domain.FieldPayrollW2Bracket, Op: domain.OpIsFalsy},
		}},
	},
	{
		// Catch-all: an empty ALL branch matches every intake.
		ID: "default_sole_prop", Value: "sole_prop",
		When: &domain.RuleGroup{All: []domain.Rule{}},
	},
}

var defaultQuestions = []domain.Question{
	{ID: "q_books_owner", Prompt: "Who closes your books each month, and by what day?"},
	{ID: "q_cash_floor", Prompt: "What is the minimum cash balance you refuse to go below?"},
	{ID: "q_advisor", Prompt: "When did a tax advisor last review your structure end to end?"},
	{ID: "q_salary_basis", Prompt: "How did you arrive at your salary number?", Tags: []domain.Tag{"entity.s_corp"}},
	{ID: "q_distributions", Prompt: "How do you document shareholder distributions?", Tags: []domain.Tag{"entity.s_corp"}},
	{ID: "q_payroll_provider", Prompt: "Who files your payroll returns, and who checks them?", Tags: []domain.Tag{"payroll.yes"}},
	{ID: "q_contractor_mix", Prompt: "Which of your contractors would survive a worker-classification test?", Tags: []domain.Tag{"payroll.yes"}},
	{ID: "q_inventory_count", Prompt: "When did you last do a full physical inventory count?", Tags: []domain.Tag{"inventory.yes"}},
	{ID: "q_costing", Prompt: "What costing method are you using, and is it written down?", Tags: []domain.Tag{"inventory.yes"}},
	{ID: "q_state_registrations", Prompt: "Which states are you registered in versus operating in?", Tags: []domain.Tag{"states.multi", "multistate.yes"}},
	{ID: "q_apportionment", Prompt: "How do you split income between states today?", Tags: []domain.Tag{"states.multi", "multistate.yes"}},
	{ID: "q_foreign_forms", Prompt: "Which international information returns did you file last year?", Tags: []domain.Tag{"international.yes"}},
}

var defaultEvidence = []EvidenceSpec{
	{Key: "operating_agreement", Label: "Operating agreement or bylaws", Required: true},
	{Key: "ein_letter", Label: "EIN assignment letter", Required: true},
	{Key: "prior_return", Label: "Most recent filed tax return", Required: true},
	{Key: "bank_statements", Label: "Last three months of bank statements", Required: true},
	{Key: "payroll_reports", Label: "Latest payroll summary report", Required: true},
	{Key: "election_confirmation", Label: "Entity election confirmation (CP261 or equivalent)", Required: false},
	{Key: "state_registrations", Label: "State registration certificates", Required: false},
	{Key: "mileage_log", Label: "Vehicle mileage log", Required: false},
}

var defaultAssessment = []AssessmentQuestion{
	{
		ID: "a_books", Prompt: "How current are your books?",
		Options: []AssessmentOption{
			{Label: "Closed monthly within two weeks", Points: 3},
			{Label: "Caught up each quarter", Points: 2},
			{Label: "Cleaned up once a year at tax time", Points: 0},
		},
	},
	{
		ID: "a_separation", Prompt: "How separate are business and personal money?",
		Options: []AssessmentOption{
			{Label: "Separate accounts, no crossover", Points: 3},
			{Label: "Separate accounts, occasional crossover", Points: 1},
			{Label: "One account for everything", Points: 0},
		},
	},
	{
		ID: "a_owner_pay", Prompt: "How do you pay yourself?",
		Options: []AssessmentOption{
			{Label: "Fixed schedule and amount", Points: 3},
			{Label: "Irregular draws when cash allows", Points: 1},
			{Label: "I don't take pay yet", Points: 0},
		},
	},
	{
		ID: "a_cash", Prompt: "How much operating cash do you keep in reserve?",
		Options: []AssessmentOption{
			{Label: "Two months of expenses or more", Points: 3},
			{Label: "About one month", Points: 2},
			{Label: "Less than one month", Points: 0},
		},
	},
	{
		ID: "a_tax_set_aside", Prompt: "Do you set money aside for taxes as revenue comes in?",
		Options: []AssessmentOption{
			{Label: "A fixed percentage, automatically", Points: 3},
			{Label: "Sometimes, when I remember", Points: 1},
			{Label: "No, I find the money at filing time", Points: 0},
		},
	},
	{
		ID: "a_pricing", Prompt: "When did you last raise or restructure your prices?",
		Options: []AssessmentOption{
			{Label: "Within the last year, deliberately", Points: 3},
			{Label: "More than a year ago", Points: 1},
			{Label: "Never, I charge what I started with", Points: 0},
		},
	},
	{
		ID: "a_sops", Prompt: "Could someone else run your core delivery from written steps?",
		Options: []AssessmentOption{
			{Label: "Yes, the key processes are documented", Points: 3},
			{Label: "Partially, some notes exist", Points: 1},
			{Label: "No, it is all in my head", Points: 0},
		},
	},
	{
		ID: "a_advisor", Prompt: "How often do you talk to an accountant or tax advisor?",
		Options: []AssessmentOption{
			{Label: "Quarterly or more", Points: 3},
			{Label: "Once a year at filing", Points: 1},
			{Label: "I don't have one", Points: 0},
		},
	},
}
