package controllers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/EGJhon/BackendEsp32/config"
	"github.com/EGJhon/BackendEsp32/middlewares"
	"github.com/EGJhon/BackendEsp32/models"
	"github.com/EGJhon/BackendEsp32/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Fixed history window sizes, matching what the dashboard requests.
const (
	historyLimit      = 20
	plantHistoryLimit = 50
)

// ReceiveData processes one incoming sensor sample. The reading insert is
// mandatory: the request fails if and only if that write fails. The derived
// water-level and irrigation inserts are best effort, each one's failure is
// logged and swallowed without affecting the other or the response.
func ReceiveData(c *gin.Context) {
	var payload models.SensorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	logger := log.WithFields(log.Fields{
		"request_id": c.GetString(middlewares.RequestIDKey),
		"planta_id":  payload.PlantID,
	})

	now := time.Now()
	reading := models.Reading{
		PlantID:      payload.PlantID,
		Temperature:  *payload.Temperature,
		SoilMoisture: *payload.SoilMoisture,
		Timestamp:    now,
	}

	ctx, cancel := config.QueryContext(c.Request.Context())
	defer cancel()
	if err := config.DB.WithContext(ctx).Create(&reading).Error; err != nil {
		logger.WithError(err).Error("failed to store reading")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	// The cache is updated even when the durable water-level write fails:
	// it only answers "last value the server saw".
	if payload.FillLevelPct != nil {
		config.SetLatestWaterLevel(*payload.FillLevelPct, now)
		storeWaterLevel(c, logger, *payload.FillLevelPct, now)
	}
	if payload.ConsumedWater != nil {
		storeIrrigation(c, logger, payload.PlantID, *payload.ConsumedWater, now)
	}

	BroadcastReading(reading)

	c.JSON(http.StatusOK, gin.H{"message": "Datos guardados ✅", "data": reading})
}

func storeWaterLevel(c *gin.Context, logger *log.Entry, fillLevelPct float64, now time.Time) {
	tankHeight, tankRadius := config.TankGeometry()
	heightCm, volumeLiters := utils.TankState(fillLevelPct, tankHeight, tankRadius)

	level := models.WaterLevel{
		HeightCm:     heightCm,
		VolumeLiters: volumeLiters,
		Timestamp:    now,
	}

	ctx, cancel := config.QueryContext(c.Request.Context())
	defer cancel()
	if err := config.DB.WithContext(ctx).Create(&level).Error; err != nil {
		logger.WithError(err).WithField("nivel_agua", fillLevelPct).Warn("failed to store water level")
		return
	}
	logger.WithField("volumen_litros", volumeLiters).Debug("water level stored")
}

func storeIrrigation(c *gin.Context, logger *log.Entry, plantID string, consumedMl float64, now time.Time) {
	// Zero or negative consumption means the pump did not run.
	if consumedMl <= 0 {
		return
	}

	event := models.Irrigation{
		PlantID:      plantID,
		VolumeLiters: utils.IrrigationLiters(consumedMl),
		Timestamp:    now,
	}

	ctx, cancel := config.QueryContext(c.Request.Context())
	defer cancel()
	if err := config.DB.WithContext(ctx).Create(&event).Error; err != nil {
		logger.WithError(err).WithField("agua_consumida", consumedMl).Warn("failed to store irrigation event")
		return
	}
	logger.WithField("volumen_litros", event.VolumeLiters).Debug("irrigation event stored")
}

// GetHistory returns the most recent readings across all plants.
func GetHistory(c *gin.Context) {
	var records []models.Reading

	ctx, cancel := config.QueryContext(c.Request.Context())
	defer cancel()
	if err := config.DB.WithContext(ctx).Order("fecha desc").Limit(historyLimit).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en la consulta"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetLatestReading returns the newest reading, or an empty object when no
// data has ever been stored.
func GetLatestReading(c *gin.Context) {
	var record models.Reading

	ctx, cancel := config.QueryContext(c.Request.Context())
	defer cancel()
	err := config.DB.WithContext(ctx).Order("fecha desc").First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en la consulta"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetPlantHistory returns the most recent readings for a single plant.
func GetPlantHistory(c *gin.Context) {
	plantID := c.Param("id")
	var records []models.Reading

	ctx, cancel := config.QueryContext(c.Request.Context())
	defer cancel()
	if err := config.DB.WithContext(ctx).Where("planta_id = ?", plantID).
		Order("fecha desc").Limit(plantHistoryLimit).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en la consulta"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetWaterLevel returns the last fill level the server saw. The value lives
// only in memory and is empty right after a restart.
func GetWaterLevel(c *gin.Context) {
	level, receivedAt, ok := config.GetLatestWaterLevel()
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"nivel_agua": nil,
			"mensaje":    "Aún no se han recibido datos de nivel de agua",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nivel_agua": level, "fecha": receivedAt})
}

// DownloadCSV sends the reading history as a CSV file.
func DownloadCSV(c *gin.Context) {
	var records []models.Reading

	ctx, cancel := config.QueryContext(c.Request.Context())
	defer cancel()
	if err := config.DB.WithContext(ctx).Order("fecha desc").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en la consulta"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=lecturas.csv")
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"fecha", "planta_id", "temperatura", "humedad_suelo"})
	for _, record := range records {
		writer.Write([]string{
			record.Timestamp.Format("2006-01-02 15:04:05"),
			record.PlantID,
			fmt.Sprintf("%.2f", record.Temperature),
			fmt.Sprintf("%.2f", record.SoilMoisture),
		})
	}
}
