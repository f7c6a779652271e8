// Package needcalc turns soil, crop and forecast state into a clamped
// water requirement per field.
package needcalc

import (
	"log"
	"math"

	"irrig/entities"
	"irrig/pkg/agronomy"
)

type Params struct {
	SafetyMarginMm float64
	WindowHours    float64
}

func DefaultParams() Params {
	return Params{SafetyMarginMm: 1.0, WindowHours: 4.0}
}

// Calculate runs the five-step pipeline for one field:
// soil deficit, crop water use, effective rain, net need, band clamp + cap.
// thetaNow == nil means "no reading", which defaults to field capacity.
func Calculate(
	field entities.Field,
	soil entities.SoilProfile,
	crop entities.CropProfile,
	forecast entities.ForecastSnapshot,
	thetaNow *float64,
	p Params,
) (entities.NeedResult, error) {
	areaM2 := field.AreaM2
	emitterLPM := field.EmitterLPM
	rootDepthMm := crop.ZrMm

	thetaWilt := soil.ThetaWilt
	thetaFC := soil.ThetaFC
	thetaSat := soil.ThetaSat

	// Target moisture with the field's offset, kept inside [wilt, sat].
	thetaTarget := clamp(thetaFC+field.ThetaTargetOffset, thetaWilt, thetaSat)

	// Acceptable band around field capacity.
	thetaMin := math.Max(thetaWilt, thetaFC+crop.BandMinOffset)
	thetaMax := math.Min(thetaSat, thetaFC+crop.BandMaxOffset)

	theta := thetaFC
	if thetaNow != nil {
		theta = *thetaNow
	}
	theta = clamp(theta, thetaWilt, thetaSat)

	// Step 1: soil deficit
	soilDeficitMm := 0.0
	if theta < thetaTarget {
		soilDeficitMm = agronomy.ThetaToMm(thetaTarget-theta, rootDepthMm)
	}

	// Step 2: crop water use at the design ET0 quantile
	kc, err := agronomy.SeasonKc(field.Crop, forecast.Date, map[string]entities.CropProfile{crop.Name: crop})
	if err != nil {
		return entities.NeedResult{}, err
	}
	etcMm := kc * forecast.ET0Design()

	// Step 3: effective rain, conservative rain quantile
	freeStorageMm := agronomy.ThetaToMm(math.Max(0, thetaFC-theta), rootDepthMm)
	effRainMm := agronomy.EffectiveRain(theta, forecast.RainP10, soil.InfilRateMmH, freeStorageMm, p.WindowHours)

	// Step 4: net need
	netETc := math.Max(0.0, etcMm-effRainMm)
	needMm := math.Max(0.0, soilDeficitMm+netETc+p.SafetyMarginMm)

	// Step 5: never push moisture past the band maximum. Moisture already
	// above the band means nothing to add, not a negative need.
	maxAdditionalMm := agronomy.ThetaToMm(thetaMax-theta, rootDepthMm)
	needMm = math.Max(0.0, math.Min(needMm, maxAdditionalMm))

	liters := agronomy.MmToLiters(needMm, areaM2)
	minutes := agronomy.LitersToMinutes(liters, emitterLPM)

	// Daily runtime cap, then re-derive volume from the final minutes so
	// liters and minutes can never disagree.
	if field.DailyMaxMin > 0 {
		minutes = math.Min(minutes, field.DailyMaxMin)
	}
	liters = minutes * emitterLPM
	if areaM2 > 0 {
		needMm = liters / areaM2 * 1000.0
	}

	return entities.NeedResult{
		FieldID:       field.ID,
		NeedMm:        needMm,
		Liters:        liters,
		Minutes:       minutes,
		SoilDeficitMm: soilDeficitMm,
		ETcMm:         etcMm,
		EffRainMm:     effRainMm,
		ThetaNow:      theta,
		ThetaTarget:   thetaTarget,
		ThetaMin:      thetaMin,
		ThetaMax:      thetaMax,
		AreaM2:        areaM2,
		EmitterLPM:    emitterLPM,
	}, nil
}

// CalculateAll runs Calculate for every field. A field with a missing soil
// or crop row is skipped with a warning rather than aborting the batch.
func CalculateAll(
	fields []entities.Field,
	soils map[string]entities.SoilProfile,
	crops map[string]entities.CropProfile,
	forecast entities.ForecastSnapshot,
	thetaNow map[string]float64,
	p Params,
) map[string]entities.NeedResult {
	results := make(map[string]entities.NeedResult, len(fields))

	for _, field := range fields {
		soil, okSoil := soils[field.Soil]
		crop, okCrop := crops[field.Crop]
		if !okSoil || !okCrop {
			log.Printf("[need] warning: missing soil/crop params for field %s", field.ID)
			continue
		}

		var theta *float64
		if v, ok := thetaNow[field.ID]; ok {
			theta = &v
		}

		res, err := Calculate(field, soil, crop, forecast, theta, p)
		if err != nil {
			log.Printf("[need] warning: field %s: %v", field.ID, err)
			continue
		}
		results[field.ID] = res
	}
	return results
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
