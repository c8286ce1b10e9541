package handler

import (
	"net/http"

	"gamereviews/backend/internal/serializer"
	"gamereviews/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// nestedReviewRules drop the foreign keys of reviews embedded in a game or a
// user; the embedded record already identifies both ends.
var nestedReviewRules = []string{"-reviews.user_id", "-reviews.game_id"}

// GetGames godoc
// @Summary      Get all games
// @Description  Lists every game with its reviews. Each review embeds its user.
// @Tags         games
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func GetGames(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		games, err := s.ListGames(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		response, err := serializer.SerializeAll(games, nestedReviewRules...)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
	}
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves one game with its reviews. include=users adds the reviewers.
// @Tags         games
// @Produce      json
// @Param        id       path   int     true   "Game ID"
// @Param        include  query  string  false  "Derived views to add (users)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Invalid ID"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, err)
			return
		}

		game, err := s.GetGame(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		rules := append(includeRules(c, "users"), nestedReviewRules...)
		response, err := serializer.Serialize(game, rules...)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
	}
}
