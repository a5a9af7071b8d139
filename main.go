package main

import (
	"net/http"
	"os"

	"github.com/EGJhon/BackendEsp32/config"
	"github.com/EGJhon/BackendEsp32/controllers"
	"github.com/EGJhon/BackendEsp32/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	godotenv.Load()

	log.SetFormatter(&log.JSONFormatter{})

	// Connect to PostgreSQL database
	db, err := config.Connect(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	config.DB = db
	controllers.MigrateModels(db)

	config.LoadTankConfig()

	// Set up Gin router with CORS configuration
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.RequestID())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "🌱 API Sensores funcionando...")
	})

	// Sensor ingestion and history
	r.POST("/api/sensores", controllers.ReceiveData)
	r.GET("/api/sensores", controllers.GetHistory)
	r.GET("/api/sensores/ultimo", controllers.GetLatestReading)
	r.GET("/api/sensores/planta/:id", controllers.GetPlantHistory)
	r.GET("/api/sensores/nivel-agua", controllers.GetWaterLevel)
	r.GET("/api/sensores/csv", controllers.DownloadCSV)

	// Plant registry
	r.GET("/api/plantas/:correo", controllers.GetPlantsByOwner)
	r.POST("/api/plantas", controllers.RegisterPlant)

	// Live updates
	r.GET("/ws", controllers.HandleWebSocket)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.WithField("port", port).Info("servidor escuchando")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
