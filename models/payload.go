package models

// SensorPayload is the raw sample an ESP32 posts to /api/sensores.
// Temperature and soil moisture are pointers so that "field absent" can be
// told apart from a literal zero; both are required. Fill level and
// consumed water are optional and drive the derived writes when present.
// Out-of-range values are stored as reported, no clamping is applied.
type SensorPayload struct {
	PlantID       string   `json:"planta_id" binding:"required"`
	Temperature   *float64 `json:"temperatura" binding:"required"`
	SoilMoisture  *float64 `json:"humedad_suelo" binding:"required"`
	FillLevelPct  *float64 `json:"nivel_agua"`
	ConsumedWater *float64 `json:"agua_consumida"`
}
