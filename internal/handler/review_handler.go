package handler

import (
	"fmt"
	"net/http"

	"gamereviews/backend/internal/apperror"
	"gamereviews/backend/internal/serializer"
	"gamereviews/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ReviewInput defines the body for creating a review.
type ReviewInput struct {
	Score   *int   `json:"score" binding:"required" example:"8"`
	Comment string `json:"comment" example:"fun"`
	GameID  *uint  `json:"game_id" binding:"required" example:"1"`
	UserID  *uint  `json:"user_id" binding:"required" example:"1"`
}

// ReviewPatchInput defines the body for updating a review. Omitted fields
// keep their current value.
type ReviewPatchInput struct {
	Score   *int    `json:"score" example:"9"`
	Comment *string `json:"comment" example:"even better the second time"`
	GameID  *uint   `json:"game_id" example:"1"`
	UserID  *uint   `json:"user_id" example:"1"`
}

// endregion

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrValidation, err)
	}
	return nil
}

func respondReview(c *gin.Context, status int, review serializer.Model) {
	response, err := serializer.Serialize(review)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, response)
}

// GetReviews godoc
// @Summary      Get all reviews
// @Description  Lists every review with its game and user embedded.
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews [get]
func GetReviews(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := s.ListReviews(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		response, err := serializer.SerializeAll(reviews)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
	}
}

// CreateReview godoc
// @Summary      Create a review
// @Description  Creates a review of an existing game by an existing user.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        input body ReviewInput true "Review"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Malformed or incomplete body"
// @Failure      422  {object}  ErrorResponse "Game or user does not exist"
// @Router       /reviews [post]
func CreateReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReviewInput
		if err := bindJSON(c, &input); err != nil {
			respondError(c, err)
			return
		}

		review, err := s.CreateReview(c.Request.Context(), store.ReviewFields{
			Score:   *input.Score,
			Comment: input.Comment,
			GameID:  *input.GameID,
			UserID:  *input.UserID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		respondReview(c, http.StatusCreated, review)
	}
}

// GetReviewByID godoc
// @Summary      Get a single review by ID
// @Tags         reviews
// @Produce      json
// @Param        id path int true "Review ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Invalid ID"
// @Failure      404  {object}  ErrorResponse "Review not found"
// @Router       /reviews/{id} [get]
func GetReviewByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, err)
			return
		}

		review, err := s.GetReview(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		respondReview(c, http.StatusOK, review)
	}
}

// UpdateReview godoc
// @Summary      Update a review
// @Description  Changes only the submitted fields of a review.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "Review ID"
// @Param        input body  ReviewPatchInput  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Review not found"
// @Failure      422  {object}  ErrorResponse "Game or user does not exist"
// @Router       /reviews/{id} [patch]
func UpdateReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, err)
			return
		}

		var input ReviewPatchInput
		if err := bindJSON(c, &input); err != nil {
			respondError(c, err)
			return
		}

		review, err := s.UpdateReview(c.Request.Context(), id, store.ReviewPatch{
			Score:   input.Score,
			Comment: input.Comment,
			GameID:  input.GameID,
			UserID:  input.UserID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		respondReview(c, http.StatusOK, review)
	}
}

// DeleteReview godoc
// @Summary      Delete a review
// @Description  Deletes a review. Its game and user are kept.
// @Tags         reviews
// @Param        id path int true "Review ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse "Invalid ID"
// @Failure      404  {object}  ErrorResponse "Review not found"
// @Router       /reviews/{id} [delete]
func DeleteReview(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, err)
			return
		}

		if err := s.DeleteReview(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
