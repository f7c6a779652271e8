// Package agronomy holds the water-balance formulas: crop coefficients,
// reference evapotranspiration, effective rain and unit conversions.
package agronomy

import (
	"errors"
	"fmt"
	"math"
	"time"

	"irrig/entities"
)

// ErrUnknownCrop marks a configuration defect: a field references a crop
// with no profile row. This is the one hard failure in the pipeline.
var ErrUnknownCrop = errors.New("unknown crop")

// SeasonKc returns the crop coefficient for the date's season bucket:
// months 3-5 spring, 6-8 summer, everything else fall/winter.
func SeasonKc(crop string, date time.Time, crops map[string]entities.CropProfile) (float64, error) {
	cp, ok := crops[crop]
	if !ok {
		return 0, fmt.Errorf("%w: %q not found in crops data", ErrUnknownCrop, crop)
	}
	switch date.Month() {
	case time.March, time.April, time.May:
		return cp.KcSpring, nil
	case time.June, time.July, time.August:
		return cp.KcSummer, nil
	default:
		return cp.KcFall, nil
	}
}

// ET0Hargreaves estimates reference evapotranspiration (mm/day) with the
// simplified Hargreaves-Samani equation. ra is extraterrestrial radiation
// in MJ/m2/day. The temperature range is floored at 0.1 so near-zero or
// inverted ranges never hit a sqrt domain error.
func ET0Hargreaves(tempMax, tempMin, ra float64) float64 {
	tempMean := (tempMax + tempMin) / 2.0
	tempRange := tempMax - tempMin
	et0 := 0.0023 * ra * (tempMean + 17.8) * math.Sqrt(math.Max(0.1, tempRange))
	return math.Max(0.0, et0)
}

// EffectiveRain is the part of forecast rain the crop can actually use:
// never more than what falls, what infiltrates within the window, or the
// unused storage above current moisture.
func EffectiveRain(thetaNow, rainForecastMm, infilRateMmH, freeStorageMm, windowHours float64) float64 {
	infilCapacity := infilRateMmH * windowHours
	eff := math.Min(rainForecastMm, math.Min(infilCapacity, freeStorageMm))
	return math.Max(0.0, eff)
}

// MmToLiters converts irrigation depth (mm) over an area (m2) to volume.
func MmToLiters(mm, areaM2 float64) float64 {
	return mm * areaM2 / 1000.0
}

// LitersToMinutes converts volume to emitter runtime. A non-positive flow
// rate yields 0, never a division by zero.
func LitersToMinutes(liters, emitterLPM float64) float64 {
	if emitterLPM <= 0 {
		return 0.0
	}
	return liters / emitterLPM
}

// MmToMinutes converts irrigation depth directly to runtime.
func MmToMinutes(mm, areaM2, emitterLPM float64) float64 {
	return LitersToMinutes(MmToLiters(mm, areaM2), emitterLPM)
}

// ThetaToMm converts volumetric moisture to water depth over the root zone.
func ThetaToMm(theta, rootDepthMm float64) float64 {
	return theta * rootDepthMm
}

// MmToTheta converts water depth to volumetric moisture. A non-positive
// root depth yields 0.
func MmToTheta(mm, rootDepthMm float64) float64 {
	if rootDepthMm <= 0 {
		return 0.0
	}
	return mm / rootDepthMm
}
