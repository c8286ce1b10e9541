// Package store reads and writes games, users and reviews.
//
// Every operation runs in its own statement or transaction and is committed
// before it returns. Errors are reported with the apperror taxonomy.
package store

import (
	"context"
	"errors"
	"fmt"

	"gamereviews/backend/internal/apperror"
	"gamereviews/backend/internal/models"

	"gorm.io/gorm"
)

// Store serves every read and write of the API from one gorm handle.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Reset removes every review, game and user. Used by the seed command.
func (s *Store) Reset(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.Review{}, &models.Game{}, &models.User{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translate(err)
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func notFound(kind string, id uint) error {
	return fmt.Errorf("%s %d: %w", kind, id, apperror.ErrNotFound)
}

// exists reports apperror.ErrIntegrity when no row of model has the given id.
func exists(tx *gorm.DB, model any, kind string, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s %d does not exist: %w", kind, id, apperror.ErrIntegrity)
	}
	return nil
}

// translate maps gorm errors onto the apperror taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrNotFound),
		errors.Is(err, apperror.ErrIntegrity),
		errors.Is(err, apperror.ErrValidation):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", apperror.ErrNotFound, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", apperror.ErrIntegrity, err)
	default:
		return err
	}
}
