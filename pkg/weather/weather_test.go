package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticDeterministic(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	a, err := Synthetic{}.Forecast(date)
	require.NoError(t, err)
	b, err := Synthetic{}.Forecast(date)
	require.NoError(t, err)

	assert.Equal(t, a, b, "same date must reproduce the same snapshot")
}

func TestSyntheticPlausibleRanges(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		date := time.Date(2025, month, 10, 0, 0, 0, 0, time.UTC)
		fc, err := Synthetic{}.Forecast(date)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, fc.RainP50, 0.0, "%s", month)
		assert.GreaterOrEqual(t, fc.ET0P50, 0.0, "%s", month)
		assert.LessOrEqual(t, fc.ET0P50, 15.0, "%s", month)
		assert.Equal(t, date, fc.Date)
	}
}

func TestSpreadQuantiles(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	fc := Spread(date, 10.0, 5.0)

	assert.InDelta(t, 7.0, fc.RainP10, 1e-9)
	assert.InDelta(t, 10.0, fc.RainP50, 1e-9)
	assert.InDelta(t, 13.0, fc.RainP90, 1e-9)
	assert.InDelta(t, 5.0, fc.ET0P50, 1e-9)
	assert.InDelta(t, 6.0, fc.ET0P90, 1e-9)
}

func TestSpreadET0Design(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 6.0, Spread(date, 0, 5.0).ET0Design(), 1e-9)

	bare := Spread(date, 0, 0)
	bare.ET0P50 = 4.0
	assert.InDelta(t, 4.0, bare.ET0Design(), 1e-9, "falls back to P50 when P90 is absent")
}
