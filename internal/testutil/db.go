// Package testutil provides a fresh, migrated in-memory database per test.
package testutil

import (
	"testing"

	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns an empty, migrated SQLite database that is closed when the
// test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("file::memory:", &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// SeedGame inserts a game row directly.
func SeedGame(t *testing.T, db *gorm.DB, title, genre, platform string, price int) *models.Game {
	t.Helper()
	g := &models.Game{Title: title, Genre: genre, Platform: platform, Price: price}
	require.NoError(t, db.Create(g).Error)
	return g
}

// SeedUser inserts a user row directly.
func SeedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{Name: name}
	require.NoError(t, db.Create(u).Error)
	return u
}

// SeedReview inserts a review row directly, bypassing the store's checks.
func SeedReview(t *testing.T, db *gorm.DB, gameID, userID uint, score int, comment string) *models.Review {
	t.Helper()
	r := &models.Review{GameID: gameID, UserID: userID, Score: score, Comment: comment}
	require.NoError(t, db.Create(r).Error)
	return r
}
