package utils

import "math"

// TankState converts a reported fill-level percentage into water height and
// volume using the tank geometry. The percentage is taken as-is, values
// outside [0,100] produce proportionally out-of-range results.
func TankState(fillLevelPct, tankHeightCm, tankRadiusCm float64) (heightCm, volumeLiters float64) {
	heightCm = fillLevelPct / 100 * tankHeightCm
	// cylinder volume in cm³, converted to liters
	volumeLiters = math.Pi * tankRadiusCm * tankRadiusCm * heightCm / 1000
	return heightCm, volumeLiters
}

// IrrigationLiters converts consumed milliliters to liters.
func IrrigationLiters(consumedMl float64) float64 {
	return consumedMl / 1000
}
