package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irrig/entities"
)

func need(id string, theta, needMm float64) entities.NeedResult {
	liters := needMm * 10000 / 1000.0
	return entities.NeedResult{
		FieldID:    id,
		NeedMm:     needMm,
		Liters:     liters,
		Minutes:    liters / 100.0,
		ThetaNow:   theta,
		AreaM2:     10000,
		EmitterLPM: 100,
	}
}

func forecast(rainP50, et0P90 float64) entities.ForecastSnapshot {
	return entities.ForecastSnapshot{
		Date:    time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		RainP10: rainP50 * 0.7,
		RainP50: rainP50,
		RainP90: rainP50 * 1.3,
		ET0P50:  5.0,
		ET0P90:  et0P90,
	}
}

func TestBaselineFixedMinutes(t *testing.T) {
	fields := []entities.Field{
		{ID: "A", AreaM2: 10000, EmitterLPM: 100},
		{ID: "B", AreaM2: 5000, EmitterLPM: 50},
	}
	out := Baseline(fields, DefaultOptions().FixedMinutes)

	require.Len(t, out, 2)
	assert.Equal(t, 20.0, out["A"].Minutes)
	assert.Equal(t, 2000.0, out["A"].Liters)
	assert.Equal(t, 20.0, out["B"].Minutes)
	assert.Equal(t, 1000.0, out["B"].Liters)
	assert.Equal(t, 0.0, out["A"].NeedMm, "baseline does not calculate need")
}

func TestRainLockZeroesAllButEmergency(t *testing.T) {
	needs := map[string]entities.NeedResult{
		"A": need("A", 0.20, 10),
		"E": need("E", 0.10, 15), // below the 0.12 emergency threshold
	}
	out := RuleBased(needs, forecast(10, 6), DefaultOptions())

	assert.True(t, out["A"].RainLocked)
	assert.Equal(t, 0.0, out["A"].Minutes)
	assert.Equal(t, 0.0, out["A"].Liters)
	assert.Equal(t, 0.0, out["A"].NeedMm)

	assert.False(t, out["E"].RainLocked, "emergency irrigates through the lock")
	assert.Equal(t, 15.0, out["E"].NeedMm)
	assert.Greater(t, out["E"].Minutes, 0.0)
}

func TestRainBelowThresholdDoesNotLock(t *testing.T) {
	needs := map[string]entities.NeedResult{"A": need("A", 0.20, 10)}
	out := RuleBased(needs, forecast(4.9, 6), DefaultOptions())
	assert.False(t, out["A"].RainLocked)
	assert.Equal(t, 10.0, out["A"].NeedMm)
}

func TestHeatBonusBumpsPastBandClamp(t *testing.T) {
	// The need calculator already clamped this field at its band maximum;
	// the heatwave bonus intentionally pushes past that clamp.
	needs := map[string]entities.NeedResult{"A": need("A", 0.25, 12)}
	out := RuleBased(needs, forecast(0, 9), DefaultOptions())

	r := out["A"]
	assert.InDelta(t, 13.0, r.NeedMm, 1e-9)
	assert.InDelta(t, 130.0, r.Liters, 1e-9)
	assert.InDelta(t, 1.3, r.Minutes, 1e-9)
	assert.InDelta(t, r.Minutes*r.EmitterLPM, r.Liters, 1e-9)
}

func TestHeatBonusSuppressedByRainLock(t *testing.T) {
	needs := map[string]entities.NeedResult{"A": need("A", 0.20, 10)}
	out := RuleBased(needs, forecast(10, 9), DefaultOptions())
	assert.Equal(t, 0.0, out["A"].NeedMm, "rain-lock wins over the heat bonus")
}

func TestHeatBonusUsesP50WhenP90Absent(t *testing.T) {
	fc := forecast(0, 0)
	fc.ET0P50 = 9.0
	needs := map[string]entities.NeedResult{"A": need("A", 0.20, 10)}
	out := RuleBased(needs, fc, DefaultOptions())
	assert.InDelta(t, 11.0, out["A"].NeedMm, 1e-9)
}

func TestRainLockIndependentOfFieldOrder(t *testing.T) {
	needs := map[string]entities.NeedResult{}
	for _, id := range []string{"F1", "F2", "F3", "F4", "F5", "F6"} {
		needs[id] = need(id, 0.20, 8)
	}
	out := RuleBased(needs, forecast(10, 6), DefaultOptions())
	for id, r := range out {
		assert.True(t, r.RainLocked, "field %s", id)
		assert.Equal(t, 0.0, r.Minutes, "field %s", id)
	}
}
