// Package forecast is the seam for an external need-estimate model. The
// planner consumes estimates read-only and substitutes the P50 volume for
// its own computed liters before the rule controller runs.
package forecast

import "irrig/entities"

type Estimate struct {
	P10 float64 `json:"p10"`
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
}

type EstimateProvider interface {
	Estimate(forecast entities.ForecastSnapshot, fieldIDs []string) map[string]Estimate
}

// Heuristic is the model-free fallback: a rough ET0-scaled base volume with
// fixed quantile spreads. Stands in when no trained estimator is wired.
type Heuristic struct {
	LitersPerMm float64 // base liters per mm of ET0; zero means the 100 default
}

func (h Heuristic) Estimate(fc entities.ForecastSnapshot, fieldIDs []string) map[string]Estimate {
	perMm := h.LitersPerMm
	if perMm <= 0 {
		perMm = 100.0
	}
	base := fc.ET0P50 * perMm

	out := make(map[string]Estimate, len(fieldIDs))
	for _, id := range fieldIDs {
		out[id] = Estimate{P10: base * 0.7, P50: base, P90: base * 1.3}
	}
	return out
}
