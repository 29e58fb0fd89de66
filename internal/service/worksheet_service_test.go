package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/groundwork/internal/catalog"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferServiceValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewOfferService(repository.NewSQLiteOfferRepo(database))
	ctx := context.Background()

	assert.Error(t, svc.Save(ctx, &domain.OfferDraft{Name: "no user"}))
	assert.Error(t, svc.Save(ctx, &domain.OfferDraft{UserID: "u1", Name: "  "}))
	assert.Error(t, svc.Save(ctx, &domain.OfferDraft{UserID: "u1", Name: "x", PriceUSD: -5}))

	offer := &domain.OfferDraft{UserID: "u1", Name: "Retainer", PriceUSD: 500}
	require.NoError(t, svc.Save(ctx, offer))
	assert.False(t, offer.UpdatedAt.IsZero())

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Retainer", got.Name)
}

func TestCadenceServiceValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCadenceService(repository.NewSQLiteCadenceRepo(database))
	ctx := context.Background()

	assert.Error(t, svc.SetBlock(ctx, &domain.CadenceBlock{Day: domain.DayMonday, Minutes: 60}))
	assert.Error(t, svc.SetBlock(ctx, &domain.CadenceBlock{UserID: "u1", Day: "someday", Minutes: 60}))
	assert.Error(t, svc.SetBlock(ctx, &domain.CadenceBlock{UserID: "u1", Day: domain.DayMonday, Minutes: 0}))

	require.NoError(t, svc.SetBlock(ctx, &domain.CadenceBlock{
		UserID: "u1", Day: domain.DayMonday, Theme: "deep work", Minutes: 90,
	}))

	week, err := svc.Week(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, week, 1)

	require.NoError(t, svc.ClearDay(ctx, "u1", domain.DayMonday))
	week, err = svc.Week(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, week)
}

func TestSOPServiceValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewSOPService(repository.NewSQLiteSOPRepo(database))
	ctx := context.Background()

	assert.Error(t, svc.Save(ctx, &domain.SOPDoc{UserID: "u1", Slug: "x", Title: "t"}))
	assert.Error(t, svc.Save(ctx, &domain.SOPDoc{UserID: "u1", Title: "t", Steps: []string{"a"}}))

	require.NoError(t, svc.Save(ctx, &domain.SOPDoc{
		UserID: "u1", Slug: "onboarding", Title: "Client onboarding", Steps: []string{"contract", "kickoff"},
	}))

	docs, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestMoneySplitServicePreview(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewMoneySplitService(repository.NewSQLiteMoneySplitRepo(database))
	ctx := context.Background()

	assert.Error(t, svc.Save(ctx, &domain.MoneySplit{
		UserID: "u1", OwnerPayPct: 50, TaxPct: 30, ProfitPct: 10, OpexPct: 20,
	}), "percentages over 100 are rejected")

	require.NoError(t, svc.Save(ctx, &domain.MoneySplit{
		UserID: "u1", OwnerPayPct: 50, TaxPct: 20, ProfitPct: 10, OpexPct: 20,
	}))

	_, amounts, err := svc.Preview(ctx, "u1", 100_000)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000), amounts.OwnerPayCents)
	assert.Equal(t, int64(100_000),
		amounts.OwnerPayCents+amounts.TaxCents+amounts.ProfitCents+amounts.OpexCents)

	_, _, err = svc.Preview(ctx, "u1", -1)
	assert.Error(t, err)

	_, _, err = svc.Preview(ctx, "nobody", 100)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssessmentServiceScoring(t *testing.T) {
	database := testutil.NewTestDB(t)
	questions := catalog.Default().Assessment
	svc := NewAssessmentService(repository.NewSQLiteAssessmentRepo(database), questions)
	ctx := context.Background()

	_, err := svc.Score(ctx, "u1", []int{1, 2})
	assert.Error(t, err, "answer count must match question count")

	top := make([]int, len(questions))
	for i := range top {
		top[i] = 3
	}
	res, err := svc.Score(ctx, "u1", top)
	require.NoError(t, err)
	assert.Equal(t, domain.BandScaling, res.Band)

	zero := make([]int, len(questions))
	res, err = svc.Score(ctx, "u1", zero)
	require.NoError(t, err)
	assert.Equal(t, domain.BandFoundation, res.Band)

	latest, err := svc.Latest(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, latest.Score, "retake replaces the stored result")
}
