package main

import (
	"context"
	"fmt"
	"log/slog"

	"gamereviews/backend/internal/config"
	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/models"
	"gamereviews/backend/internal/store"

	"github.com/spf13/cobra"
)

var sampleGames = []models.Game{
	{Title: "The Legend of Zelda: Breath of the Wild", Genre: "Action-adventure", Platform: "Switch", Price: 60},
	{Title: "Hades", Genre: "Roguelike", Platform: "PC", Price: 25},
	{Title: "Stardew Valley", Genre: "Simulation", Platform: "PC", Price: 15},
	{Title: "Celeste", Genre: "Platformer", Platform: "Switch", Price: 20},
	{Title: "Elden Ring", Genre: "Action RPG", Platform: "PlayStation 5", Price: 60},
}

var sampleUsers = []string{"ana", "ben", "cleo", "dev"}

// sampleReviews index into sampleGames and sampleUsers.
var sampleReviews = []struct {
	game, user, score int
	comment           string
}{
	{0, 0, 10, "Endless things to find."},
	{1, 0, 9, "One more run, every time."},
	{1, 1, 8, "Hard but fair."},
	{2, 2, 9, "Relaxing."},
	{3, 1, 7, "Tough climb, great music."},
	{4, 3, 8, "Brutal and beautiful."},
	{0, 3, 6, "Weapons break too often."},
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with sample games, users and reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(config.AppConfig)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			return seed(cmd.Context(), store.New(db))
		},
	}
}

func seed(ctx context.Context, s *store.Store) error {
	if err := s.Reset(ctx); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}

	games := make([]*models.Game, 0, len(sampleGames))
	for _, g := range sampleGames {
		game := g
		if err := s.CreateGame(ctx, &game); err != nil {
			return fmt.Errorf("seed game %q: %w", g.Title, err)
		}
		games = append(games, &game)
	}

	users := make([]*models.User, 0, len(sampleUsers))
	for _, name := range sampleUsers {
		user := &models.User{Name: name}
		if err := s.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("seed user %q: %w", name, err)
		}
		users = append(users, user)
	}

	for _, r := range sampleReviews {
		_, err := s.CreateReview(ctx, store.ReviewFields{
			Score:   r.score,
			Comment: r.comment,
			GameID:  games[r.game].ID,
			UserID:  users[r.user].ID,
		})
		if err != nil {
			return fmt.Errorf("seed review: %w", err)
		}
	}

	slog.Info("database seeded",
		"games", len(games),
		"users", len(users),
		"reviews", len(sampleReviews),
	)
	return nil
}
