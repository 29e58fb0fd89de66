package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMemo(userID, topic string, version int) *domain.Memo {
	return &domain.Memo{
		ID:         userID + "-" + topic + "-" + string(rune('0'+version)),
		UserID:     userID,
		Topic:      topic,
		Version:    version,
		Title:      "Entity election review",
		Body:       "# Entity election review\n\nBest fit: s_corp.",
		BestFit:    "s_corp",
		Confidence: 68,
		CreatedAt:  testutil.FixedNow.Add(time.Duration(version) * time.Minute),
	}
}

func TestMemoRepo_GetLatestNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMemoRepo(db)

	_, err := repo.GetLatest(context.Background(), "u1", "entity")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoRepo_CreateAndGetLatest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMemoRepo(db)
	ctx := context.Background()

	want := testMemo("u1", "entity", 1)
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.GetLatest(ctx, "u1", "entity")
	require.NoError(t, err)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Body, got.Body)
	assert.Equal(t, "s_corp", got.BestFit)
	assert.Equal(t, 68, got.Confidence)
	assert.Equal(t, want.CreatedAt, got.CreatedAt.UTC())
}

func TestMemoRepo_GetLatestPicksHighestVersion(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMemoRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testMemo("u1", "entity", 1)))
	require.NoError(t, repo.Create(ctx, testMemo("u1", "entity", 2)))
	require.NoError(t, repo.Create(ctx, testMemo("u1", "payroll", 5)))

	got, err := repo.GetLatest(ctx, "u1", "entity")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
}

func TestMemoRepo_NextVersion(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMemoRepo(db)
	ctx := context.Background()

	v, err := repo.NextVersion(ctx, "u1", "entity")
	require.NoError(t, err)
	assert.Equal(t, 1, v, "an unseen topic starts at version 1")

	require.NoError(t, repo.Create(ctx, testMemo("u1", "entity", 1)))
	require.NoError(t, repo.Create(ctx, testMemo("u1", "entity", 2)))

	v, err = repo.NextVersion(ctx, "u1", "entity")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = repo.NextVersion(ctx, "u2", "entity")
	require.NoError(t, err)
	assert.Equal(t, 1, v, "versions are scoped per user and topic")
}

func TestMemoRepo_DuplicateVersionRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMemoRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testMemo("u1", "entity", 1)))
	dup := testMemo("u1", "entity", 1)
	dup.ID = "other-id"
	assert.Error(t, repo.Create(ctx, dup))
}
