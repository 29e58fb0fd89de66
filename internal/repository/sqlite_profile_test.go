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

func testProfile(userID, id string, createdAt time.Time) *domain.Profile {
	return &domain.Profile{
		ID:        id,
		UserID:    userID,
		Version:   domain.ProfileVersion,
		CreatedAt: createdAt,
		Intake:    *testutil.NewSCorpIntake(userID),
		Tags:      []domain.Tag{"core.books", "entity.s_corp"},
		Modules:   []string{"bookkeeping", "entity"},
		Priorities: []domain.Priority{
			{ID: "books", Title: "Bookkeeping rhythm"},
		},
		Calendar: []domain.CalendarEvent{
			{Title: "Estimated taxes due", Date: "2026-04-15"},
		},
		Confidence: 72,
	}
}

func TestProfileRepo_GetLatestNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)

	_, err := repo.GetLatest(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_SaveAndGetLatest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	want := testProfile("u1", "p1", testutil.FixedNow)
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.GetLatest(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, want.Tags, got.Tags)
	assert.Equal(t, want.Modules, got.Modules)
	assert.Equal(t, want.Calendar, got.Calendar)
	assert.Equal(t, 72, got.Confidence)
	assert.Equal(t, want.Intake.EntityLegalForm, got.Intake.EntityLegalForm)
}

func TestProfileRepo_GetLatestPicksNewest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testProfile("u1", "p1", testutil.FixedNow)))
	require.NoError(t, repo.Save(ctx, testProfile("u1", "p2", testutil.FixedNow.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, testProfile("u2", "p3", testutil.FixedNow.Add(2*time.Hour))))

	got, err := repo.GetLatest(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "p2", got.ID)
}

func TestProfileRepo_ListByUserNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	for i, id := range []string{"p1", "p2", "p3"} {
		p := testProfile("u1", id, testutil.FixedNow.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Save(ctx, p))
	}

	all, err := repo.ListByUser(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "p3", all[0].ID)
	assert.Equal(t, "p1", all[2].ID)

	limited, err := repo.ListByUser(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "p3", limited[0].ID)
}
