package controllers

import (
	"net/http"
	"time"

	"github.com/EGJhon/BackendEsp32/config"
	"github.com/EGJhon/BackendEsp32/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RegisterPlant creates a plant for a user.
func RegisterPlant(c *gin.Context) {
	var req models.PlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	plant := models.Plant{
		Name:         req.Name,
		Location:     req.Location,
		TypeID:       req.TypeID,
		OwnerEmail:   req.Email,
		RegisteredAt: time.Now(),
	}

	ctx, cancel := config.QueryContext(c.Request.Context())
	defer cancel()
	if err := config.DB.WithContext(ctx).Create(&plant).Error; err != nil {
		log.WithError(err).WithField("correo", req.Email).Error("failed to register plant")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Planta registrada ✅", "data": plant})
}

// GetPlantsByOwner returns the plants registered under an email, newest first.
func GetPlantsByOwner(c *gin.Context) {
	email := c.Param("correo")
	var plants []models.Plant

	ctx, cancel := config.QueryContext(c.Request.Context())
	defer cancel()
	if err := config.DB.WithContext(ctx).Where("correo = ?", email).
		Order("fecha_registro desc").Find(&plants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en la consulta"})
		return
	}
	c.JSON(http.StatusOK, plants)
}
