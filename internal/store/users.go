package store

import (
	"context"
	"errors"

	"gamereviews/backend/internal/models"

	"gorm.io/gorm"
)

// ListUsers returns every user in id order with their reviews and the
// reviewed games.
func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := s.userQuery(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// GetUser returns a single user with their reviews and the reviewed games.
func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.userQuery(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user", id)
		}
		return nil, translate(err)
	}
	return &user, nil
}

// CreateUser inserts a user.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Omit("Reviews").Create(user).Error)
}

func (s *Store) userQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Reviews", byID).
		Preload("Reviews.Game")
}
