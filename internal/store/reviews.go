package store

import (
	"context"
	"errors"

	"gamereviews/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewFields are the columns a client supplies when creating a review.
type ReviewFields struct {
	Score   int
	Comment string
	GameID  uint
	UserID  uint
}

// ReviewPatch holds the columns to change. Nil fields are left as they are.
type ReviewPatch struct {
	Score   *int
	Comment *string
	GameID  *uint
	UserID  *uint
}

func (p ReviewPatch) apply(r *models.Review) {
	if p.Score != nil {
		r.Score = *p.Score
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
	if p.GameID != nil {
		r.GameID = *p.GameID
	}
	if p.UserID != nil {
		r.UserID = *p.UserID
	}
}

// ListReviews returns every review in id order with its game and user.
func (s *Store) ListReviews(ctx context.Context) ([]*models.Review, error) {
	var reviews []*models.Review
	if err := s.reviewQuery(ctx).Order("id").Find(&reviews).Error; err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

// GetReview returns a single review with its game and user.
func (s *Store) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := s.reviewQuery(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("review", id)
		}
		return nil, translate(err)
	}
	return &review, nil
}

// CreateReview inserts a review after checking that its game and user exist.
// On failure nothing is written.
func (s *Store) CreateReview(ctx context.Context, in ReviewFields) (*models.Review, error) {
	review := &models.Review{
		Score:   in.Score,
		Comment: in.Comment,
		GameID:  in.GameID,
		UserID:  in.UserID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, review.GameID, review.UserID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(review).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	return s.GetReview(ctx, review.ID)
}

// UpdateReview applies patch to an existing review and refreshes its
// updated_at timestamp. A changed game_id or user_id must still resolve.
func (s *Store) UpdateReview(ctx context.Context, id uint, patch ReviewPatch) (*models.Review, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("review", id)
			}
			return err
		}

		patch.apply(&review)
		if patch.GameID != nil || patch.UserID != nil {
			if err := checkReferences(tx, review.GameID, review.UserID); err != nil {
				return err
			}
		}

		return tx.Omit(clause.Associations).Save(&review).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	return s.GetReview(ctx, id)
}

// DeleteReview removes a review. The game and user it pointed at stay.
func (s *Store) DeleteReview(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("review", id)
	}
	return nil
}

func checkReferences(tx *gorm.DB, gameID, userID uint) error {
	if err := exists(tx, &models.Game{}, "game", gameID); err != nil {
		return err
	}
	return exists(tx, &models.User{}, "user", userID)
}

func (s *Store) reviewQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Game").
		Preload("User")
}
