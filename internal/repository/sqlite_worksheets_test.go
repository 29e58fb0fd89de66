package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOfferRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	offer := &domain.OfferDraft{
		UserID:       "u1",
		Name:         "Quarterly books package",
		Promise:      "Clean books and a cash report every month.",
		PriceUSD:     750,
		Deliverables: []string{"monthly close", "cash report", "quarterly review"},
		UpdatedAt:    testutil.FixedNow,
	}
	require.NoError(t, repo.Upsert(ctx, offer))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, offer.Name, got.Name)
	assert.Equal(t, offer.Deliverables, got.Deliverables)
	assert.Equal(t, 750, got.PriceUSD)

	offer.PriceUSD = 900
	offer.Deliverables = nil
	require.NoError(t, repo.Upsert(ctx, offer))

	got, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 900, got.PriceUSD)
	assert.Empty(t, got.Deliverables, "cleared deliverables do not linger")
}

func TestCadenceRepo_ListMondayFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCadenceRepo(db)
	ctx := context.Background()

	for _, b := range []domain.CadenceBlock{
		{UserID: "u1", Day: domain.DayFriday, Theme: "admin", Minutes: 60, UpdatedAt: testutil.FixedNow},
		{UserID: "u1", Day: domain.DayMonday, Theme: "deep work", Minutes: 120, UpdatedAt: testutil.FixedNow},
		{UserID: "u1", Day: domain.DayWednesday, Theme: "clients", Minutes: 90, UpdatedAt: testutil.FixedNow},
	} {
		require.NoError(t, repo.Upsert(ctx, &b))
	}

	blocks, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, domain.DayMonday, blocks[0].Day)
	assert.Equal(t, domain.DayWednesday, blocks[1].Day)
	assert.Equal(t, domain.DayFriday, blocks[2].Day)
}

func TestCadenceRepo_UpsertReplacesDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCadenceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.CadenceBlock{
		UserID: "u1", Day: domain.DayMonday, Theme: "deep work", Minutes: 120, UpdatedAt: testutil.FixedNow,
	}))
	require.NoError(t, repo.Upsert(ctx, &domain.CadenceBlock{
		UserID: "u1", Day: domain.DayMonday, Theme: "sales", Minutes: 45, UpdatedAt: testutil.FixedNow,
	}))

	blocks, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "sales", blocks[0].Theme)
	assert.Equal(t, 45, blocks[0].Minutes)
}

func TestCadenceRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCadenceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.CadenceBlock{
		UserID: "u1", Day: domain.DayMonday, Theme: "deep work", Minutes: 120, UpdatedAt: testutil.FixedNow,
	}))
	require.NoError(t, repo.Delete(ctx, "u1", domain.DayMonday))

	blocks, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, blocks)

	assert.ErrorIs(t, repo.Delete(ctx, "u1", domain.DayMonday), ErrNotFound)
}

func TestSOPRepo_RoundTripAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSOPRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1", "onboarding")
	assert.ErrorIs(t, err, ErrNotFound)

	docs := []*domain.SOPDoc{
		{UserID: "u1", Slug: "onboarding", Title: "Client onboarding", Steps: []string{"send contract", "collect W-9", "kickoff call"}, UpdatedAt: testutil.FixedNow},
		{UserID: "u1", Slug: "billing", Title: "Monthly billing", Steps: []string{"draft invoices", "send", "chase"}, UpdatedAt: testutil.FixedNow},
	}
	for _, d := range docs {
		require.NoError(t, repo.Upsert(ctx, d))
	}

	got, err := repo.Get(ctx, "u1", "onboarding")
	require.NoError(t, err)
	assert.Equal(t, "Client onboarding", got.Title)
	assert.Equal(t, docs[0].Steps, got.Steps)

	all, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, "u1", "billing"))
	all, err = repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "onboarding", all[0].Slug)

	assert.ErrorIs(t, repo.Delete(ctx, "u1", "billing"), ErrNotFound)
}

func TestMoneySplitRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMoneySplitRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	split := &domain.MoneySplit{
		UserID: "u1", OwnerPayPct: 50, TaxPct: 20, ProfitPct: 10, OpexPct: 20,
		UpdatedAt: testutil.FixedNow,
	}
	require.NoError(t, repo.Upsert(ctx, split))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 50, got.OwnerPayPct)
	assert.Equal(t, 20, got.OpexPct)

	split.OwnerPayPct, split.ProfitPct = 45, 15
	require.NoError(t, repo.Upsert(ctx, split))

	got, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 45, got.OwnerPayPct)
	assert.Equal(t, 15, got.ProfitPct)
}

func TestAssessmentRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	res := &domain.AssessmentResult{
		UserID: "u1", Score: 14, Band: domain.BandBuilding, TakenAt: testutil.FixedNow,
	}
	require.NoError(t, repo.Upsert(ctx, res))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Score)
	assert.Equal(t, domain.BandBuilding, got.Band)

	res.Score, res.Band = 22, domain.BandScaling
	require.NoError(t, repo.Upsert(ctx, res))

	got, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.BandScaling, got.Band)
}
