package main

import (
	"os"

	"borccu-api/config"
	"borccu-api/middlewares"
	"borccu-api/models"
	"borccu-api/routes"
	"borccu-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	_ = godotenv.Load()

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Debt{},
		&models.Group{},
		&models.GroupMember{},
		&models.FriendRequest{},
		&models.Friendship{},
		&models.Notification{},
	)

	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.Secret = []byte(s)
	}

	r := gin.Default()
	r.Use(middlewares.Metrics())
	routes.SetupRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "borccu API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
