package controllers

import (
	"github.com/EGJhon/BackendEsp32/config"
	"github.com/EGJhon/BackendEsp32/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) {
	config.DB = db
	db.AutoMigrate(&models.Reading{}, &models.WaterLevel{}, &models.Irrigation{}, &models.Plant{})
}
