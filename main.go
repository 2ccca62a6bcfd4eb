package main

import (
	"log"
	"net/http"
	"os"

	"greenvisa-api/config"
	"greenvisa-api/mailer"
	"greenvisa-api/routes"
	"greenvisa-api/workflow"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Outbound mail transport, built once from env and injected everywhere
	smtp := config.LoadSMTP()
	sender, err := mailer.NewSMTPSender(smtp.Host, smtp.Port, smtp.User, smtp.Password, smtp.FromName)
	if err != nil {
		log.Fatal("Failed to configure mail transport:", err)
	}

	wf := workflow.New(config.DB, sender)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "GreenVisa Consultation API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, wf)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
