package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamereviews/backend/internal/apperror"
	"gamereviews/backend/internal/models"
	"gamereviews/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db    *gorm.DB
	store *Store
	zelda *models.Game
	hades *models.Game
	ana   *models.User
	ben   *models.User
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	return fixture{
		db:    db,
		store: New(db),
		zelda: testutil.SeedGame(t, db, "Breath of the Wild", "Adventure", "Switch", 60),
		hades: testutil.SeedGame(t, db, "Hades", "Roguelike", "PC", 25),
		ana:   testutil.SeedUser(t, db, "Ana"),
		ben:   testutil.SeedUser(t, db, "Ben"),
	}
}

func countReviews(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Review{}).Count(&n).Error)
	return n
}

func TestListGamesInIDOrderWithReviews(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	testutil.SeedReview(t, f.db, f.zelda.ID, f.ben.ID, 7, "long")
	testutil.SeedReview(t, f.db, f.zelda.ID, f.ana.ID, 9, "great")

	games, err := f.store.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Breath of the Wild", games[0].Title)
	assert.Equal(t, "Hades", games[1].Title)

	require.Len(t, games[0].Reviews, 2)
	assert.Equal(t, "long", games[0].Reviews[0].Comment)
	require.NotNil(t, games[0].Reviews[0].User)
	assert.Equal(t, "Ben", games[0].Reviews[0].User.Name)
	assert.Empty(t, games[1].Reviews)

	users := games[0].Users()
	require.Len(t, users, 2)
	assert.Equal(t, "Ben", users[0].Name)
	assert.Equal(t, "Ana", users[1].Name)
}

func TestGetGame(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	g, err := f.store.GetGame(ctx, f.hades.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hades", g.Title)
	assert.Equal(t, 25, g.Price)
	assert.False(t, g.CreatedAt.IsZero())

	_, err = f.store.GetGame(ctx, 999)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestCreateGameRejectsDuplicateTitle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	err := f.store.CreateGame(ctx, &models.Game{Title: "Hades", Genre: "Roguelike"})
	assert.True(t, errors.Is(err, apperror.ErrIntegrity))

	celeste := &models.Game{Title: "Celeste", Genre: "Platformer", Platform: "PC", Price: 20}
	require.NoError(t, f.store.CreateGame(ctx, celeste))
	assert.NotZero(t, celeste.ID)
}

func TestUsersWithGames(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	testutil.SeedReview(t, f.db, f.hades.ID, f.ana.ID, 10, "again")
	testutil.SeedReview(t, f.db, f.zelda.ID, f.ana.ID, 9, "vast")

	users, err := f.store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	games := users[0].Games()
	require.Len(t, games, 2)
	assert.Equal(t, "Hades", games[0].Title)
	assert.Equal(t, "Breath of the Wild", games[1].Title)
	assert.Empty(t, users[1].Games())

	u, err := f.store.GetUser(ctx, f.ben.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ben", u.Name)

	_, err = f.store.GetUser(ctx, 404)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	cleo := &models.User{Name: "Cleo"}
	require.NoError(t, f.store.CreateUser(ctx, cleo))
	assert.NotZero(t, cleo.ID)
}

func TestCreateReview(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	r, err := f.store.CreateReview(ctx, ReviewFields{Score: 8, Comment: "fun", GameID: f.zelda.ID, UserID: f.ana.ID})
	require.NoError(t, err)
	assert.NotZero(t, r.ID)
	assert.Equal(t, 8, r.Score)
	assert.False(t, r.CreatedAt.IsZero())
	require.NotNil(t, r.Game)
	require.NotNil(t, r.User)
	assert.Equal(t, "Breath of the Wild", r.Game.Title)
	assert.Equal(t, "Ana", r.User.Name)
}

func TestCreateReviewWithMissingReferences(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		gameID uint
		userID uint
	}{
		{"missing game", 999, f.ana.ID},
		{"missing user", f.zelda.ID, 999},
		{"both missing", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.store.CreateReview(ctx, ReviewFields{Score: 1, GameID: tc.gameID, UserID: tc.userID})
			assert.True(t, errors.Is(err, apperror.ErrIntegrity), err)
			assert.Zero(t, countReviews(t, f.db))
		})
	}
}

func TestListAndGetReview(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	first := testutil.SeedReview(t, f.db, f.hades.ID, f.ben.ID, 6, "hard")
	testutil.SeedReview(t, f.db, f.zelda.ID, f.ana.ID, 9, "vast")

	reviews, err := f.store.ListReviews(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, first.ID, reviews[0].ID)
	assert.Equal(t, "Hades", reviews[0].Game.Title)
	assert.Equal(t, "Ben", reviews[0].User.Name)

	r, err := f.store.GetReview(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "hard", r.Comment)

	_, err = f.store.GetReview(ctx, 77)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestUpdateReviewOnlyTouchesSubmittedFields(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	seeded := testutil.SeedReview(t, f.db, f.zelda.ID, f.ana.ID, 5, "meh")

	past := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, f.db.Model(&models.Review{}).Where("id = ?", seeded.ID).
		UpdateColumns(map[string]any{"created_at": past, "updated_at": past}).Error)

	comment := "grew on me"
	r, err := f.store.UpdateReview(ctx, seeded.ID, ReviewPatch{Comment: &comment})
	require.NoError(t, err)

	assert.Equal(t, "grew on me", r.Comment)
	assert.Equal(t, 5, r.Score)
	assert.Equal(t, f.zelda.ID, r.GameID)
	assert.Equal(t, f.ana.ID, r.UserID)
	assert.True(t, r.CreatedAt.Equal(past), "created_at changed: %v", r.CreatedAt)
	assert.True(t, r.UpdatedAt.After(past), "updated_at not refreshed: %v", r.UpdatedAt)
}

func TestUpdateReviewMovesToAnotherGame(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	seeded := testutil.SeedReview(t, f.db, f.zelda.ID, f.ana.ID, 5, "meh")

	r, err := f.store.UpdateReview(ctx, seeded.ID, ReviewPatch{GameID: &f.hades.ID})
	require.NoError(t, err)
	assert.Equal(t, "Hades", r.Game.Title)

	missing := uint(999)
	_, err = f.store.UpdateReview(ctx, seeded.ID, ReviewPatch{UserID: &missing})
	assert.True(t, errors.Is(err, apperror.ErrIntegrity))

	r, err = f.store.GetReview(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, f.ana.ID, r.UserID)
}

func TestUpdateMissingReview(t *testing.T) {
	f := setup(t)
	score := 3
	_, err := f.store.UpdateReview(context.Background(), 12, ReviewPatch{Score: &score})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDeleteReview(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	doomed := testutil.SeedReview(t, f.db, f.zelda.ID, f.ben.ID, 2, "no")
	testutil.SeedReview(t, f.db, f.zelda.ID, f.ana.ID, 9, "yes")

	require.NoError(t, f.store.DeleteReview(ctx, doomed.ID))

	reviews, err := f.store.ListReviews(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.NotEqual(t, doomed.ID, reviews[0].ID)

	g, err := f.store.GetGame(ctx, f.zelda.ID)
	require.NoError(t, err)
	for _, u := range g.Users() {
		assert.NotEqual(t, "Ben", u.Name)
	}

	ben, err := f.store.GetUser(ctx, f.ben.ID)
	require.NoError(t, err)
	assert.Empty(t, ben.Games())

	err = f.store.DeleteReview(ctx, doomed.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestReset(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	testutil.SeedReview(t, f.db, f.zelda.ID, f.ben.ID, 2, "no")

	require.NoError(t, f.store.Reset(ctx))

	games, err := f.store.ListGames(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)
	users, err := f.store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Zero(t, countReviews(t, f.db))
}
