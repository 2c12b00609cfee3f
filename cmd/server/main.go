package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/auth"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/config"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/database"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/handler"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/service"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/store"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/wall"
)

func init() {
	config.LoadConfig()
}

// @title           Giphy Wall API
// @version         1.0
// @description     This is the API for the giphy wall service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Connect to the database
	db, err := database.Connect(config.AppConfig.DBFile)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users := store.NewUserStore(db, config.AppConfig.UsersLoginColumn)
	friendStore := store.NewFriendStore(db, users)
	gifs := store.NewGiphyStore(db)
	comments := store.NewCommentStore(db)

	identity := service.NewIdentityService(users, logger)
	friends := service.NewFriendService(friendStore, users, logger)
	walls := service.NewWallService(gifs, comments, friends, wall.NewRegistry(), logger)

	h := handler.New(identity, friends, walls)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/login", h.Login)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", h.GetMe)
			userRoutes.GET("/find", h.FindUser)
		}

		// Friend routes (protected)
		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(auth.AuthMiddleware())
		{
			friendRoutes.GET("", h.ListFriends)
			friendRoutes.GET("/requests/incoming", h.ListIncomingRequests)
			friendRoutes.GET("/requests/sent", h.ListSentRequests)
			friendRoutes.POST("/requests", h.SendFriendRequest)
			friendRoutes.POST("/requests/:id/accept", h.AcceptFriendRequest)
			friendRoutes.POST("/requests/:id/decline", h.DeclineFriendRequest)
		}

		// Wall routes (protected)
		wallRoutes := apiV1.Group("/wall")
		wallRoutes.Use(auth.AuthMiddleware())
		{
			wallRoutes.GET("", h.GetWall)
			wallRoutes.POST("/active", h.SetActiveWall)
			wallRoutes.POST("/gifs", h.PostGif)
			wallRoutes.DELETE("/gifs/:uuid", h.DeleteGif)
			wallRoutes.POST("/reactions", h.React)
			wallRoutes.GET("/gifs/:uuid/comments", h.GetComments)
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ListenAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}
