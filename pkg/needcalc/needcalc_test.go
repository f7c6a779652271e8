package needcalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irrig/entities"
)

func testField() entities.Field {
	return entities.Field{
		ID: "A", AreaM2: 10000, Soil: "loam", Crop: "greens",
		EmitterLPM: 100, ThetaTargetOffset: 0.0, DailyMaxMin: 180, Priority: 1,
	}
}

func testSoil() entities.SoilProfile {
	return entities.SoilProfile{Name: "loam", ThetaWilt: 0.09, ThetaFC: 0.27, ThetaSat: 0.45, InfilRateMmH: 12}
}

func testCrop() entities.CropProfile {
	return entities.CropProfile{Name: "greens", KcSpring: 0.95, KcSummer: 1.05, KcFall: 0.85, ZrMm: 300, BandMinOffset: -0.05, BandMaxOffset: 0.02}
}

func summerForecast(rainP10 float64) entities.ForecastSnapshot {
	return entities.ForecastSnapshot{
		Date:    time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		RainP10: rainP10,
		RainP50: rainP10 / 0.7,
		ET0P50:  5.0,
		ET0P90:  6.0,
	}
}

func ptr(v float64) *float64 { return &v }

func TestCalculateBasic(t *testing.T) {
	res, err := Calculate(testField(), testSoil(), testCrop(), summerForecast(0), ptr(0.25), DefaultParams())
	require.NoError(t, err)

	// deficit 6mm + ETc 6.3mm + margin 1mm = 13.3, band-clamped to
	// (0.29-0.25)*300 = 12mm
	assert.InDelta(t, 12.0, res.NeedMm, 1e-9)
	assert.InDelta(t, 6.0, res.SoilDeficitMm, 1e-9)
	assert.InDelta(t, 6.3, res.ETcMm, 1e-9)
	assert.GreaterOrEqual(t, res.NeedMm, 0.0)
	assert.GreaterOrEqual(t, res.Minutes, 0.0)
	assert.LessOrEqual(t, res.Minutes, 180.0)
}

func TestCalculateAboveTargetClampsNearZero(t *testing.T) {
	res, err := Calculate(testField(), testSoil(), testCrop(), summerForecast(0), ptr(0.28), DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.SoilDeficitMm)
	// only (0.29-0.28)*300 = 3mm of headroom remains
	assert.LessOrEqual(t, res.NeedMm, 3.0+1e-9)
	assert.GreaterOrEqual(t, res.NeedMm, 0.0)
	assert.LessOrEqual(t, res.Minutes, 180.0)
}

func TestCalculateAboveBandMaxYieldsZero(t *testing.T) {
	res, err := Calculate(testField(), testSoil(), testCrop(), summerForecast(0), ptr(0.32), DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.NeedMm)
	assert.Equal(t, 0.0, res.Minutes)
	assert.Equal(t, 0.0, res.Liters)
}

func TestCalculateRainReducesNeed(t *testing.T) {
	wet, err := Calculate(testField(), testSoil(), testCrop(), summerForecast(14), ptr(0.27), DefaultParams())
	require.NoError(t, err)
	dry, err := Calculate(testField(), testSoil(), testCrop(), summerForecast(0), ptr(0.27), DefaultParams())
	require.NoError(t, err)

	assert.LessOrEqual(t, wet.NeedMm, dry.NeedMm)
}

func TestCalculateRainMonotonic(t *testing.T) {
	prev := -1.0
	for _, rain := range []float64{10, 5, 2, 0} {
		res, err := Calculate(testField(), testSoil(), testCrop(), summerForecast(rain), ptr(0.20), DefaultParams())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.NeedMm, prev, "less rain can only raise or hold need")
		prev = res.NeedMm
	}
}

func TestCalculateLitersMinutesConsistent(t *testing.T) {
	for _, theta := range []float64{0.09, 0.15, 0.20, 0.25, 0.27, 0.30, 0.45} {
		res, err := Calculate(testField(), testSoil(), testCrop(), summerForecast(0), ptr(theta), DefaultParams())
		require.NoError(t, err)
		assert.InDelta(t, res.Minutes*res.EmitterLPM, res.Liters, 1e-9, "theta=%v", theta)
		assert.GreaterOrEqual(t, res.NeedMm, 0.0)
		assert.LessOrEqual(t, res.Minutes, 180.0)
	}
}

func TestCalculateDailyCapRederivesVolume(t *testing.T) {
	f := testField()
	f.DailyMaxMin = 1.0 // force the cap to bite
	res, err := Calculate(f, testSoil(), testCrop(), summerForecast(0), ptr(0.15), DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Minutes)
	assert.InDelta(t, 100.0, res.Liters, 1e-9)
	assert.InDelta(t, 10.0, res.NeedMm, 1e-9) // re-derived from final liters
}

func TestCalculateZeroEmitter(t *testing.T) {
	f := testField()
	f.EmitterLPM = 0
	res, err := Calculate(f, testSoil(), testCrop(), summerForecast(0), ptr(0.20), DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Minutes)
	assert.Equal(t, 0.0, res.Liters)
}

func TestCalculateDefaultsToFieldCapacity(t *testing.T) {
	res, err := Calculate(testField(), testSoil(), testCrop(), summerForecast(0), nil, DefaultParams())
	require.NoError(t, err)
	assert.InDelta(t, 0.27, res.ThetaNow, 1e-9)
	assert.Equal(t, 0.0, res.SoilDeficitMm)
}

func TestCalculateAllSkipsMissingParams(t *testing.T) {
	fields := []entities.Field{
		testField(),
		{ID: "B", AreaM2: 5000, Soil: "peat", Crop: "greens", EmitterLPM: 50, DailyMaxMin: 120},
		{ID: "C", AreaM2: 5000, Soil: "loam", Crop: "kudzu", EmitterLPM: 50, DailyMaxMin: 120},
	}
	soils := map[string]entities.SoilProfile{"loam": testSoil()}
	crops := map[string]entities.CropProfile{"greens": testCrop()}

	results := CalculateAll(fields, soils, crops, summerForecast(0), map[string]float64{"A": 0.25}, DefaultParams())

	require.Contains(t, results, "A")
	assert.NotContains(t, results, "B", "missing soil row is skipped, not fatal")
	assert.NotContains(t, results, "C", "missing crop row is skipped, not fatal")
}
