package engine

import (
	"testing"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
)

// testPriorityCatalog mirrors the shipped ranking: two always-on core
// entries followed by tag-gated ones.
var testPriorityCatalog = []domain.Priority{
	{ID: "books", Title: "Bookkeeping rhythm", Tags: []domain.Tag{TagCoreBooks}},
	{ID: "cash", Title: "Cash reserve discipline", Tags: []domain.Tag{TagCoreCash}},
	{ID: "owner_pay", Title: "Owner pay plan", Tags: []domain.Tag{TagEntitySCorp}},
	{ID: "payroll_filings", Title: "Payroll filings", Tags: []domain.Tag{"payroll.yes"}},
	{ID: "cogs", Title: "COGS tracking", Tags: []domain.Tag{"inventory.yes"}},
	{ID: "multi_state", Title: "Multi-state watch", Tags: []domain.Tag{"multistate.yes", "states.multi"}},
	{ID: "cross_border", Title: "Cross-border vendors", Tags: []domain.Tag{"international.yes"}},
}

func TestBuildPrioritiesBaselineAlwaysPresent(t *testing.T) {
	priorities := BuildPriorities(testPriorityCatalog, DeriveTags(domain.NewIntake("u1")))

	assert.GreaterOrEqual(t, len(priorities), 2)
	assert.Equal(t, "books", priorities[0].ID)
	assert.Equal(t, "cash", priorities[1].ID)
}

func TestBuildPrioritiesTruncatesToSix(t *testing.T) {
	// Every gate tag at once: seven catalog entries match, six survive.
	tags := []domain.Tag{
		TagCoreBooks, TagCoreCash, TagEntitySCorp, "payroll.yes",
		"inventory.yes", "multistate.yes", "international.yes",
	}
	priorities := BuildPriorities(testPriorityCatalog, tags)

	assert.Len(t, priorities, MaxPriorities)
	// Catalog order, not tag order: cross_border is the entry that falls off.
	ids := make([]string, 0, len(priorities))
	for _, p := range priorities {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"books", "cash", "owner_pay", "payroll_filings", "cogs", "multi_state"}, ids)
}

func TestBuildPrioritiesOrderIgnoresTagOrder(t *testing.T) {
	reversed := []domain.Tag{"payroll.yes", TagEntitySCorp, TagCoreCash, TagCoreBooks}
	priorities := BuildPriorities(testPriorityCatalog, reversed)

	ids := make([]string, 0, len(priorities))
	for _, p := range priorities {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"books", "cash", "owner_pay", "payroll_filings"}, ids)
}

func TestSelectModules(t *testing.T) {
	in := testIntake()
	modules := SelectModules(DeriveTags(in))

	assert.Equal(t, []string{"bookkeeping", "cash", "entity", "payroll", "nexus"}, modules)
}

func TestFilterQuestions(t *testing.T) {
	questions := []domain.Question{
		{ID: "q1", Prompt: "untagged applies to everyone"},
		{ID: "q2", Prompt: "s corp only", Tags: []domain.Tag{TagEntitySCorp}},
		{ID: "q3", Prompt: "inventory only", Tags: []domain.Tag{"inventory.yes"}},
	}
	tags := []domain.Tag{TagCoreBooks, TagEntitySCorp}

	filtered := FilterQuestions(questions, tags)

	assert.Len(t, filtered, 2)
	assert.Equal(t, "q1", filtered[0].ID)
	assert.Equal(t, "q2", filtered[1].ID)
}

func TestFilterQuestionsTruncates(t *testing.T) {
	questions := make([]domain.Question, MaxQuestions+10)
	for i := range questions {
		questions[i] = domain.Question{ID: string(rune('a' + i)), Prompt: "p"}
	}
	assert.Len(t, FilterQuestions(questions, nil), MaxQuestions)
}

func TestFilterWatchlist(t *testing.T) {
	in := testIntake()
	items := []domain.WatchlistItem{
		{ID: "w1", Title: "fires", When: &domain.RuleGroup{
			All: []domain.Rule{{Field: domain.FieldMultiState, Op: domain.OpIsTruthy}},
		}},
		{ID: "w2", Title: "does not fire", When: &domain.RuleGroup{
			All: []domain.Rule{{Field: domain.FieldInternational, Op: domain.OpIsTruthy}},
		}},
		{ID: "w3", Title: "nil trigger is excluded"},
	}

	hits := FilterWatchlist(items, in)

	assert.Len(t, hits, 1)
	assert.Equal(t, "w1", hits[0].ID)
}
