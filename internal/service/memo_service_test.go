package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/groundwork/internal/catalog"
	"github.com/alexanderramin/groundwork/internal/contract"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoFixture struct {
	intakes repository.IntakeRepo
	svc     MemoService
}

func newMemoFixture(t *testing.T) *memoFixture {
	t.Helper()
	database := testutil.NewTestDB(t)

	intakes := repository.NewSQLiteIntakeRepo(database)
	catalogs := repository.NewSQLiteCatalogRepo(database)
	require.NoError(t, catalogs.ReplaceAll(context.Background(), catalog.Default().Catalog))

	return &memoFixture{
		intakes: intakes,
		svc: NewMemoService(
			intakes,
			catalogs,
			repository.NewSQLiteEvidenceRepo(database),
			repository.NewSQLiteMemoRepo(database),
		),
	}
}

func memoReq(userID, topic string) contract.ComposeMemoRequest {
	now := testutil.FixedNow
	return contract.ComposeMemoRequest{UserID: userID, Topic: topic, Now: &now}
}

func TestComposeMemoUndecidedUsesBestFit(t *testing.T) {
	f := newMemoFixture(t)
	ctx := context.Background()
	require.NoError(t, f.intakes.Upsert(ctx, testutil.NewSCorpIntake("u1")))

	resp, err := f.svc.Compose(ctx, memoReq("u1", "entity"))
	require.NoError(t, err)

	assert.Equal(t, "s_corp", resp.BestFit)
	assert.False(t, resp.Decided)
	assert.Equal(t, 1, resp.Memo.Version)
	assert.Contains(t, resp.Memo.Body, "Suggested best fit: **s_corp**")
	assert.Contains(t, resp.Memo.Body, "Reasonable salary review")
}

func TestComposeMemoDecisionOverridesAndScoresHigher(t *testing.T) {
	f := newMemoFixture(t)
	ctx := context.Background()
	require.NoError(t, f.intakes.Upsert(ctx, testutil.NewSCorpIntake("u1")))

	undecided, err := f.svc.Compose(ctx, memoReq("u1", "entity"))
	require.NoError(t, err)

	req := memoReq("u1", "entity")
	req.Decision = "c_corp"
	decided, err := f.svc.Compose(ctx, req)
	require.NoError(t, err)

	assert.True(t, decided.Decided)
	assert.Equal(t, "s_corp", decided.BestFit, "suggestion is reported even when overridden")
	assert.Contains(t, decided.Memo.Body, "Chosen: **c_corp**")
	assert.Contains(t, decided.Memo.Body, "suggested **s_corp** instead")
	assert.Equal(t, undecided.Confidence+10, decided.Confidence)
}

func TestComposeMemoVersionsIncrementPerTopic(t *testing.T) {
	f := newMemoFixture(t)
	ctx := context.Background()
	require.NoError(t, f.intakes.Upsert(ctx, testutil.NewSCorpIntake("u1")))

	first, err := f.svc.Compose(ctx, memoReq("u1", "entity"))
	require.NoError(t, err)
	second, err := f.svc.Compose(ctx, memoReq("u1", "entity"))
	require.NoError(t, err)
	other, err := f.svc.Compose(ctx, memoReq("u1", "payroll"))
	require.NoError(t, err)

	assert.Equal(t, 1, first.Memo.Version)
	assert.Equal(t, 2, second.Memo.Version)
	assert.Equal(t, 1, other.Memo.Version)

	latest, err := f.svc.GetLatest(ctx, "u1", "entity")
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Version)
}

func TestComposeMemoValidation(t *testing.T) {
	f := newMemoFixture(t)
	ctx := context.Background()

	var merr *contract.MemoError

	_, err := f.svc.Compose(ctx, memoReq("", "entity"))
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, contract.MemoErrMissingUser, merr.Code)

	_, err = f.svc.Compose(ctx, memoReq("u1", "   "))
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, contract.MemoErrEmptyTopic, merr.Code)

	_, err = f.svc.Compose(ctx, memoReq("stranger", "entity"))
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, contract.MemoErrMissingIntake, merr.Code)
}
