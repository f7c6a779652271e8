// Package weather supplies forecast snapshots for planning: a deterministic
// synthetic generator for offline use and an Open-Meteo HTTP client.
package weather

import (
	"time"

	"irrig/entities"
)

type Source interface {
	Forecast(date time.Time) (entities.ForecastSnapshot, error)
}

// Spread turns single rain/ET0 values into the quantile snapshot the
// planner consumes. The spreads mirror the historical forecast error band:
// rain P10/P90 at 0.7x/1.3x of P50, ET0 P90 at 1.2x of P50.
func Spread(date time.Time, rainMm, et0Mm float64) entities.ForecastSnapshot {
	return entities.ForecastSnapshot{
		Date:    date,
		RainP10: rainMm * 0.7,
		RainP50: rainMm,
		RainP90: rainMm * 1.3,
		ET0P50:  et0Mm,
		ET0P90:  et0Mm * 1.2,
	}
}
