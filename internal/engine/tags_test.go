package engine

import (
	"testing"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeriveTagsBaseline(t *testing.T) {
	tags := DeriveTags(domain.NewIntake("u1"))

	assert.True(t, HasTag(tags, TagCoreBooks))
	assert.True(t, HasTag(tags, TagCoreCash))
}

func TestDeriveTagsEntityMarkers(t *testing.T) {
	tests := []struct {
		name      string
		legalForm string
		want      []domain.Tag
		absent    []domain.Tag
	}{
		{
			name:      "s corporation long form",
			legalForm: "S corporation (Inc./Corp. or LLC that elected S status)",
			want:      []domain.Tag{TagEntitySCorp},
			absent:    []domain.Tag{TagEntityCCorp, TagEntityPartnership},
		},
		{
			name:      "plain llc gets only the generic tag",
			legalForm: "LLC",
			want:      []domain.Tag{"entity.llc"},
			absent:    []domain.Tag{TagEntitySCorp, TagEntityCCorp, TagEntitySoleProp},
		},
		{
			name:      "multi-member llc reads as partnership",
			legalForm: "Multi-member LLC",
			want:      []domain.Tag{TagEntityPartnership},
			absent:    []domain.Tag{TagEntitySCorp},
		},
		{
			name:      "sole proprietor",
			legalForm: "Sole proprietorship",
			want:      []domain.Tag{TagEntitySoleProp},
			absent:    []domain.Tag{TagEntityPartnership},
		},
		{
			name:      "nonprofit",
			legalForm: "Nonprofit corporation",
			want:      []domain.Tag{TagEntityNonprofit},
			absent:    []domain.Tag{TagEntityTrust},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.NewIntake("u1")
			in.EntityLegalForm = tt.legalForm
			tags := DeriveTags(in)
			for _, w := range tt.want {
				assert.True(t, HasTag(tags, w), "expected %s in %v", w, tags)
			}
			for _, a := range tt.absent {
				assert.False(t, HasTag(tags, a), "did not expect %s in %v", a, tags)
			}
		})
	}
}

func TestDeriveTagsYesNoPairsAreExclusive(t *testing.T) {
	pairs := [][2]domain.Tag{
		{"payroll.yes", "payroll.no"},
		{"inventory.yes", "inventory.no"},
		{"multistate.yes", "multistate.no"},
		{"international.yes", "international.no"},
	}
	intakes := []*domain.Intake{
		domain.NewIntake("u1"),
		testIntake(),
		{UserID: "u2", PayrollW2Bracket: "0", HasInventory: true, International: true},
		{UserID: "u3", PayrollW2Bracket: "none"},
		{UserID: "u4", PayrollW2Bracket: "10+", MultiState: true},
	}
	for _, in := range intakes {
		tags := DeriveTags(in)
		for _, pair := range pairs {
			yes, no := HasTag(tags, pair[0]), HasTag(tags, pair[1])
			assert.True(t, yes != no, "exactly one of %s/%s must be present, got yes=%v no=%v", pair[0], pair[1], yes, no)
		}
	}
}

func TestDeriveTagsPayrollBracket(t *testing.T) {
	in := domain.NewIntake("u1")
	in.PayrollW2Bracket = "0"
	assert.True(t, HasTag(DeriveTags(in), "payroll.no"), `bracket "0" means no payroll`)

	in.PayrollW2Bracket = " None "
	assert.True(t, HasTag(DeriveTags(in), "payroll.no"))

	in.PayrollW2Bracket = "4-5"
	assert.True(t, HasTag(DeriveTags(in), "payroll.yes"))
}

func TestDeriveTagsStates(t *testing.T) {
	in := domain.NewIntake("u1")
	tags := DeriveTags(in)
	assert.False(t, HasTag(tags, "states.multi"))

	in.StateCodes = []string{"NC"}
	tags = DeriveTags(in)
	assert.True(t, HasTag(tags, "states.nc"))
	assert.False(t, HasTag(tags, "states.multi"))

	in.StateCodes = []string{"NC", "SC"}
	tags = DeriveTags(in)
	assert.True(t, HasTag(tags, "states.multi"))
	assert.False(t, HasTag(tags, "states.nc"))
}

func TestDeriveTagsOptionalNamespaces(t *testing.T) {
	in := domain.NewIntake("u1")
	tags := DeriveTags(in)
	for _, tag := range tags {
		assert.NotContains(t, string(tag), "industry.", "empty industry emits no tag")
		assert.NotContains(t, string(tag), "revenue.", "empty revenue emits no tag")
	}

	in.Industry = " E-commerce "
	in.RevenueBracket = "100k-250k"
	tags = DeriveTags(in)
	assert.True(t, HasTag(tags, "industry.e_commerce"))
	assert.True(t, HasTag(tags, "revenue.100k_250k"))
}

func TestDeriveTagsDeterministicSet(t *testing.T) {
	in := testIntake()
	first := DeriveTags(in)
	for i := 0; i < 5; i++ {
		assert.ElementsMatch(t, first, DeriveTags(in))
	}

	// No duplicates.
	seen := map[domain.Tag]bool{}
	for _, tag := range first {
		assert.False(t, seen[tag], "duplicate tag %s", tag)
		seen[tag] = true
	}
}

// Scenario from the coaching program: an S-corp owner running multi-state
// payroll with no inventory and no international activity.
func TestDeriveTagsSCorpMultiStateScenario(t *testing.T) {
	in := &domain.Intake{
		UserID:           "u1",
		EntityLegalForm:  "S corporation (Inc./Corp. or LLC that elected S status)",
		PayrollW2Bracket: "4-5",
		StateCodes:       []string{"NC", "SC"},
		HasInventory:     false,
		MultiState:       true,
		International:    false,
	}
	tags := DeriveTags(in)

	for _, want := range []domain.Tag{
		TagEntitySCorp, "payroll.yes", "states.multi",
		"multistate.yes", "inventory.no", "international.no",
	} {
		assert.True(t, HasTag(tags, want), "expected %s in %v", want, tags)
	}

	priorities := BuildPriorities(testPriorityCatalog, tags)
	titles := make([]string, 0, len(priorities))
	for _, p := range priorities {
		titles = append(titles, p.Title)
	}
	assert.Contains(t, titles, "Owner pay plan")
	assert.Contains(t, titles, "Payroll filings")
	assert.Contains(t, titles, "Multi-state watch")
	assert.NotContains(t, titles, "COGS tracking")
	assert.NotContains(t, titles, "Cross-border vendors")
}
