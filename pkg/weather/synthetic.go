package weather

import (
	"math"
	"math/rand"
	"time"

	"irrig/entities"
	"irrig/pkg/agronomy"
)

// Synthetic generates an offline forecast. Seeded from the planning date,
// never the wall clock, so the same date always produces the same snapshot.
type Synthetic struct{}

func (Synthetic) Forecast(date time.Time) (entities.ForecastSnapshot, error) {
	rng := rand.New(rand.NewSource(date.Unix() % 10000))

	// Seasonal base temperature with a diurnal cycle on top.
	dayOfYear := float64(date.YearDay())
	baseTemp := 15 + 10*math.Sin(2*math.Pi*(dayOfYear-80)/365)

	tempMax := math.Inf(-1)
	tempMin := math.Inf(1)
	rainMm := 0.0

	for hour := 0; hour < 24; hour++ {
		tempMean := baseTemp + 5*math.Sin(2*math.Pi*(float64(hour)-6)/24)
		hMax := tempMean + 3 + rng.NormFloat64()
		hMin := tempMean - 3 - rng.NormFloat64()
		tempMax = math.Max(tempMax, hMax)
		tempMin = math.Min(tempMin, hMin)

		// Rain as a sparse process, likelier in the afternoon, capped at
		// 10mm per hour.
		rainProb := 0.05
		if hour >= 12 {
			rainProb = 0.15
		}
		if rng.Float64() < rainProb {
			rainMm += math.Min(2.0*rng.ExpFloat64(), 10.0)
		}
	}

	ra := 15.0 + 5*math.Sin(2*math.Pi*(dayOfYear-80)/365)
	et0 := agronomy.ET0Hargreaves(tempMax, tempMin, ra)

	return Spread(date, rainMm, et0), nil
}
