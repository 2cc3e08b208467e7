package main

import (
	"log"
	"net/http"
	"os"

	"channelhub/config"
	"channelhub/handlers"
	"channelhub/middleware"
	"channelhub/repositories"
	"channelhub/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database and redis
	db := config.InitDB()
	rdb := config.InitRedis()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	channelRepo := repositories.NewChannelRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	tokenRepo := repositories.NewTokenRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenRepo)
	channelService := services.NewChannelService(channelRepo, articleRepo, subscriptionRepo, userRepo)
	articleService := services.NewArticleService(articleRepo, channelRepo, favoriteRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	channelHandler := handlers.NewChannelHandler(channelService)
	articleHandler := handlers.NewArticleHandler(articleService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		// Auth routes (public)
		user := api.Group("/user")
		{
			user.POST("/register", authHandler.Register)
			user.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(tokenRepo))
		{
			protected.GET("/user/logout", authHandler.Logout)
			protected.GET("/user/profile", authHandler.GetProfile)

			// Channels
			protected.GET("/channels", channelHandler.ListChannels)
			protected.GET("/channel/:cid", channelHandler.GetChannel)
			protected.POST("/channel/create", channelHandler.CreateChannel)
			protected.POST("/channel/delete/:cid", channelHandler.DisableChannel)
			protected.GET("/subscribe/:cid", channelHandler.Subscribe)
			protected.GET("/unsubscribe/:cid", channelHandler.Unsubscribe)

			// Articles
			protected.GET("/articles", articleHandler.ListArticles)
			protected.GET("/article/:aid", articleHandler.GetArticle)
			protected.POST("/article/post/:cid", articleHandler.SubmitArticle)
			protected.GET("/article/accept/:aid", articleHandler.AcceptArticle)
			protected.GET("/article/reject/:aid", articleHandler.RejectArticle)
			protected.POST("/article/delete/:aid", articleHandler.DisableArticle)
			protected.GET("/article/requests", articleHandler.ListPendingRequests)
			protected.GET("/article/requests/:cid", articleHandler.ListPendingRequests)
			protected.GET("/like/:aid", articleHandler.Like)
			protected.GET("/unlike/:aid", articleHandler.Unlike)

			// Feeds
			protected.GET("/subscriptions", articleHandler.SubscriptionFeed)
			protected.GET("/favorites/:limit", articleHandler.FavoritesFeed)

			// Comments
			protected.GET("/article/comments/:aid", commentHandler.ListComments)
			protected.POST("/article/comment/:aid", commentHandler.PostComment)
			protected.GET("/article/comments/delete/:aid/:coid", commentHandler.DeleteComment)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
