package models

import "time"

// WaterLevel is a derived tank observation, stored whenever a sample
// reports a fill level. The table carries no plant id: the current
// deployment monitors a single shared tank, so per-plant water history
// is ambiguous when several devices report.
type WaterLevel struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	HeightCm     float64   `json:"altura_cm" gorm:"column:altura_cm"`
	VolumeLiters float64   `json:"volumen_litros" gorm:"column:volumen_litros"`
	Timestamp    time.Time `json:"fecha" gorm:"column:fecha"`
}

func (WaterLevel) TableName() string {
	return "niveles_agua"
}

// Irrigation records water dispensed to a plant, derived from the
// consumed-milliliters field of a sample. Only positive volumes are stored.
type Irrigation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	PlantID      string    `json:"planta_id" gorm:"column:planta_id;not null"`
	VolumeLiters float64   `json:"volumen_litros" gorm:"column:volumen_litros"`
	Timestamp    time.Time `json:"fecha" gorm:"column:fecha"`
}

func (Irrigation) TableName() string {
	return "riegos"
}
