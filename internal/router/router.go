package router

import (
	"log/slog"
	"net/http"

	"gamereviews/backend/internal/config"
	"gamereviews/backend/internal/handler"
	"gamereviews/backend/internal/middleware"
	"gamereviews/backend/internal/store"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamereviews/backend/docs" // registers the generated swagger document

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup builds the HTTP routes of the API on top of s.
func Setup(s *store.Store, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		gin.Recovery(),
		middleware.CORS(cfg.Origins()),
	)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Index for Game/Review/User API")
	})

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	gameRoutes := router.Group("/games")
	{
		gameRoutes.GET("", handler.GetGames(s))
		gameRoutes.GET("/:id", handler.GetGameByID(s))
	}

	userRoutes := router.Group("/users")
	{
		userRoutes.GET("", handler.GetUsers(s))
		userRoutes.GET("/:id", handler.GetUserByID(s))
	}

	reviewRoutes := router.Group("/reviews")
	{
		reviewRoutes.GET("", handler.GetReviews(s))
		reviewRoutes.POST("", handler.CreateReview(s))
		reviewRoutes.GET("/:id", handler.GetReviewByID(s))
		reviewRoutes.PATCH("/:id", handler.UpdateReview(s))
		reviewRoutes.DELETE("/:id", handler.DeleteReview(s))
	}

	return router
}
