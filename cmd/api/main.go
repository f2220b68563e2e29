package main

import (
	"fmt"
	"log"
	"os"

	"pv-econ/internal/api/handlers"
	"pv-econ/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	financeHandler := handlers.NewFinanceHandler()
	capacityHandler := handlers.NewCapacityHandler()
	plantHandler := handlers.NewPlantHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/lcoe", financeHandler.ComputeLCOE)
		api.POST("/lcoe/compare", financeHandler.CompareLCOE)
		api.POST("/capex", financeHandler.SolveCapex)

		api.POST("/capacity", capacityHandler.Estimate)

		api.GET("/plants", plantHandler.ListPlants)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
