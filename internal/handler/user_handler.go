package handler

import (
	"net/http"

	"gamereviews/backend/internal/serializer"
	"gamereviews/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// GetUsers godoc
// @Summary      Get all users
// @Description  Lists every user with their reviews. Each review embeds its game.
// @Tags         users
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func GetUsers(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.ListUsers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		response, err := serializer.SerializeAll(users, nestedReviewRules...)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
	}
}

// GetUserByID godoc
// @Summary      Get a single user by ID
// @Description  Retrieves one user with their reviews. include=games adds the reviewed games.
// @Tags         users
// @Produce      json
// @Param        id       path   int     true   "User ID"
// @Param        include  query  string  false  "Derived views to add (games)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Invalid ID"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /users/{id} [get]
func GetUserByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, err)
			return
		}

		user, err := s.GetUser(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		rules := append(includeRules(c, "games"), nestedReviewRules...)
		response, err := serializer.Serialize(user, rules...)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
	}
}
