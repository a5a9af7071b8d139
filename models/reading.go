package models

import "time"

// Reading is one temperature/soil-moisture sample from an ESP32.
// Rows are append-only; the ingestion path never updates or deletes them.
type Reading struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	PlantID      string    `json:"planta_id" gorm:"column:planta_id;not null"`
	Temperature  float64   `json:"temperatura" gorm:"column:temperatura"`
	SoilMoisture float64   `json:"humedad_suelo" gorm:"column:humedad_suelo"`
	Timestamp    time.Time `json:"fecha" gorm:"column:fecha"`
}

func (Reading) TableName() string {
	return "lecturas"
}
