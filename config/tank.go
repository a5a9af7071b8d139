package config

import (
	"strconv"
	"sync"
)

// Tank geometry used to derive water volume from the reported fill level.
// The defaults match the deployed tank; override via environment when the
// hardware changes.
const (
	defaultTankHeightCm = 15.0
	defaultTankRadiusCm = 3.0
)

var (
	tankHeightCm float64 = defaultTankHeightCm
	tankRadiusCm float64 = defaultTankRadiusCm
	tankMutex    sync.RWMutex
)

// LoadTankConfig reads TANK_HEIGHT_CM and TANK_RADIUS_CM from the
// environment. Should be called once on application startup.
func LoadTankConfig() {
	tankMutex.Lock()
	defer tankMutex.Unlock()

	if v, err := strconv.ParseFloat(Getenv("TANK_HEIGHT_CM", ""), 64); err == nil && v > 0 {
		tankHeightCm = v
	}
	if v, err := strconv.ParseFloat(Getenv("TANK_RADIUS_CM", ""), 64); err == nil && v > 0 {
		tankRadiusCm = v
	}
}

// TankGeometry returns the configured tank height and radius in centimeters.
func TankGeometry() (heightCm, radiusCm float64) {
	tankMutex.RLock()
	defer tankMutex.RUnlock()
	return tankHeightCm, tankRadiusCm
}
