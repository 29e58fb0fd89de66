package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvidenceRepo_ListEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEvidenceRepo(db)

	items, err := repo.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestEvidenceRepo_UpsertAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEvidenceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestEvidence("u1", "operating_agreement")))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestEvidence("u1", "bank_account", testutil.WithDone())))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestEvidence("u2", "bank_account")))

	items, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, "u1", it.UserID)
		assert.True(t, it.Required)
	}
}

func TestEvidenceRepo_UpsertReplacesByKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEvidenceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestEvidence("u1", "ein_letter")))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestEvidence("u1", "ein_letter", testutil.WithOptional(), testutil.WithDone())))

	items, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Required)
	assert.True(t, items[0].Done)
}

func TestEvidenceRepo_SetDone(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEvidenceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestEvidence("u1", "ein_letter")))
	require.NoError(t, repo.SetDone(ctx, "u1", "ein_letter", true))

	items, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Done)

	require.NoError(t, repo.SetDone(ctx, "u1", "ein_letter", false))
	items, err = repo.List(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, items[0].Done)
}

func TestEvidenceRepo_SetDoneUnknownKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEvidenceRepo(db)

	err := repo.SetDone(context.Background(), "u1", "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}
