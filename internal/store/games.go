package store

import (
	"context"
	"errors"
	"fmt"

	"gamereviews/backend/internal/apperror"
	"gamereviews/backend/internal/models"

	"gorm.io/gorm"
)

// ListGames returns every game in id order with its reviews and their users.
func (s *Store) ListGames(ctx context.Context) ([]*models.Game, error) {
	var games []*models.Game
	err := s.gameQuery(ctx).Order("id").Find(&games).Error
	if err != nil {
		return nil, translate(err)
	}
	return games, nil
}

// GetGame returns a single game with its reviews and their users.
func (s *Store) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := s.gameQuery(ctx).First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("game", id)
		}
		return nil, translate(err)
	}
	return &game, nil
}

// CreateGame inserts a game. Titles are unique.
func (s *Store) CreateGame(ctx context.Context, game *models.Game) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Game{}).Where("title = ?", game.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("game title %q already taken: %w", game.Title, apperror.ErrIntegrity)
		}
		return tx.Omit("Reviews").Create(game).Error
	})
	return translate(err)
}

func (s *Store) gameQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Reviews", byID).
		Preload("Reviews.User")
}
