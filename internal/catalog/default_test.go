package catalog

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/groundwork/internal/engine"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The shipped catalog must survive its own validation pipeline: encode it
// as a catalog file, parse it back, and require zero dropped rows. This
// keeps a typo in the default content from silently shrinking the catalog.
func TestDefaultCatalogValidates(t *testing.T) {
	def := Default()
	f := File{
		Version:     "1",
		Priorities:  def.Catalog.Priorities,
		Watchlist:   def.Catalog.Watchlist,
		Actions:     def.Catalog.Actions,
		Suggestions: def.Catalog.Suggestions,
		Questions:   def.Catalog.Questions,
		Evidence:    def.Evidence,
		Assessment:  def.Assessment,
	}
	data, err := json.Marshal(f)
	require.NoError(t, err)

	parsed, warnings, err := Parse(data)
	require.NoError(t, err)
	assert.Empty(t, warnings, "default catalog rows must all validate")
	assert.Len(t, parsed.Catalog.Priorities, len(def.Catalog.Priorities))
	assert.Len(t, parsed.Catalog.Watchlist, len(def.Catalog.Watchlist))
	assert.Len(t, parsed.Catalog.Suggestions, len(def.Catalog.Suggestions))
}

func TestDefaultSuggestionsEndWithCatchAll(t *testing.T) {
	suggestions := Default().Catalog.Suggestions
	require.NotEmpty(t, suggestions)

	last := suggestions[len(suggestions)-1]
	require.NotNil(t, last.When)
	require.NotNil(t, last.When.All)
	assert.Len(t, last.When.All, 0, "the final suggestion matches every intake")

	// Any intake therefore resolves to some value.
	got := engine.GuessBestFit(testutil.NewTestIntake("u1"), suggestions)
	assert.Equal(t, "sole_prop", got)
}

func TestDefaultBestFitForSCorp(t *testing.T) {
	got := engine.GuessBestFit(testutil.NewSCorpIntake("u1"), Default().Catalog.Suggestions)
	assert.Equal(t, "s_corp", got)
}

func TestDefaultAssessmentMaxScore(t *testing.T) {
	def := Default()
	assert.Equal(t, 24, def.MaxScore())
	for _, q := range def.Assessment {
		assert.GreaterOrEqual(t, len(q.Options), 2, "question %s", q.ID)
	}
}

func TestDefaultQuestionGatesUseDerivableTags(t *testing.T) {
	// Every tag a default question gates on must be one the deriver can
	// actually emit, otherwise the question can never surface.
	derivable := map[string]bool{
		"core.books": true, "core.cash": true,
		"entity.s_corp": true, "entity.c_corp": true, "entity.partnership": true,
		"payroll.yes": true, "inventory.yes": true,
		"multistate.yes": true, "states.multi": true,
		"international.yes": true,
	}
	for _, q := range Default().Catalog.Questions {
		for _, tag := range q.Tags {
			assert.True(t, derivable[string(tag)], "question %s gates on unreachable tag %s", q.ID, tag)
		}
	}
}
