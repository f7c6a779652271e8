// Package rules holds the two interchangeable decision controllers: a fixed
// baseline used as the water-savings floor, and the rule-based controller
// layering rain-lock, emergency and heat-bonus policies on calculated needs.
package rules

import (
	"irrig/entities"
	"irrig/pkg/agronomy"
)

type Options struct {
	FixedMinutes     float64 // baseline runtime per field
	RainThresholdMm  float64 // rain_p50 at or above this locks irrigation
	EmergencyTheta   float64 // below this, a field irrigates regardless
	HeatET0Threshold float64 // et0_p90 above this adds the bonus
	HeatBonusMm      float64
}

func DefaultOptions() Options {
	return Options{
		FixedMinutes:     20.0,
		RainThresholdMm:  5.0,
		EmergencyTheta:   0.12,
		HeatET0Threshold: 8.0,
		HeatBonusMm:      1.0,
	}
}

// Baseline ignores all sensed and forecast state and runs every field a
// fixed number of minutes. Reference floor for savings reporting.
func Baseline(fields []entities.Field, fixedMinutes float64) map[string]entities.NeedResult {
	results := make(map[string]entities.NeedResult, len(fields))
	for _, f := range fields {
		results[f.ID] = entities.NeedResult{
			FieldID:    f.ID,
			Minutes:    fixedMinutes,
			Liters:     fixedMinutes * f.EmitterLPM,
			NeedMm:     0.0, // not calculated
			AreaM2:     f.AreaM2,
			EmitterLPM: f.EmitterLPM,
		}
	}
	return results
}

// RuleBased applies the override policies to calculated needs.
//
// Rain-lock is decided once from the aggregate forecast before any field is
// touched, so field order can never change it. Emergency is per field. The
// heat bonus is added after the band clamp in the need calculator and may
// push slightly past it; that is the intended safety override.
func RuleBased(needs map[string]entities.NeedResult, forecast entities.ForecastSnapshot, opt Options) map[string]entities.NeedResult {
	results := make(map[string]entities.NeedResult, len(needs))

	rainLock := forecast.RainP50 >= opt.RainThresholdMm
	heatwave := forecast.ET0Design() > opt.HeatET0Threshold

	for id, need := range needs {
		r := need

		emergency := r.ThetaNow < opt.EmergencyTheta

		if rainLock && !emergency {
			r.Minutes = 0.0
			r.Liters = 0.0
			r.NeedMm = 0.0
			r.RainLocked = true
		} else {
			r.RainLocked = false
		}

		if heatwave && !rainLock {
			r.NeedMm += opt.HeatBonusMm
			r.Liters += agronomy.MmToLiters(opt.HeatBonusMm, r.AreaM2)
			r.Minutes = agronomy.LitersToMinutes(r.Liters, r.EmitterLPM)
		}

		results[id] = r
	}
	return results
}
