package entities

import "time"

// ForecastSnapshot is the quantile forecast a planning run works from.
// One snapshot per run; never mutated after creation. Rain quantiles are
// always populated (zero is a real forecast); an ET0 P90 of zero means the
// source produced no high quantile.
type ForecastSnapshot struct {
	Date    time.Time `json:"date"`
	RainP10 float64   `json:"rain_p10"`
	RainP50 float64   `json:"rain_p50"`
	RainP90 float64   `json:"rain_p90"`
	ET0P50  float64   `json:"et0_p50"`
	ET0P90  float64   `json:"et0_p90"`
}

// ET0Design is the atmospheric demand used for crop water use:
// P90 when present, else P50 (assume more demand than the median).
func (f ForecastSnapshot) ET0Design() float64 {
	if f.ET0P90 > 0 {
		return f.ET0P90
	}
	return f.ET0P50
}
