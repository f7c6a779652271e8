package agronomy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irrig/entities"
)

func testCrops() map[string]entities.CropProfile {
	return map[string]entities.CropProfile{
		"greens": {Name: "greens", KcSpring: 0.95, KcSummer: 1.05, KcFall: 0.85, ZrMm: 300},
	}
}

func TestSeasonKcBuckets(t *testing.T) {
	crops := testCrops()

	kc, err := SeasonKc("greens", time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), crops)
	require.NoError(t, err)
	assert.Equal(t, 0.95, kc)

	kc, err = SeasonKc("greens", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), crops)
	require.NoError(t, err)
	assert.Equal(t, 1.05, kc)

	kc, err = SeasonKc("greens", time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), crops)
	require.NoError(t, err)
	assert.Equal(t, 0.85, kc)

	kc, err = SeasonKc("greens", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), crops)
	require.NoError(t, err)
	assert.Equal(t, 0.85, kc, "winter shares the fall bucket")
}

func TestSeasonKcUnknownCrop(t *testing.T) {
	_, err := SeasonKc("kudzu", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), testCrops())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCrop)
}

func TestET0Hargreaves(t *testing.T) {
	et0 := ET0Hargreaves(30, 18, 15.0)
	assert.Greater(t, et0, 0.0)

	// inverted range must not hit a sqrt domain error
	inverted := ET0Hargreaves(18, 30, 15.0)
	assert.False(t, inverted != inverted, "no NaN")
	assert.GreaterOrEqual(t, inverted, 0.0)

	// deep cold drives the mean term negative; result clamps at zero
	assert.Equal(t, 0.0, ET0Hargreaves(-30, -40, 15.0))
}

func TestEffectiveRainLimits(t *testing.T) {
	// forecast is the binding limit
	assert.InDelta(t, 3.0, EffectiveRain(0.20, 3.0, 12, 20, 4), 1e-9)
	// infiltration capacity binds: 2 mm/h * 4 h = 8
	assert.InDelta(t, 8.0, EffectiveRain(0.20, 30.0, 2, 20, 4), 1e-9)
	// free storage binds
	assert.InDelta(t, 5.0, EffectiveRain(0.20, 30.0, 12, 5, 4), 1e-9)
	// never negative
	assert.Equal(t, 0.0, EffectiveRain(0.20, -1.0, 12, 20, 4))
}

func TestConversionGuards(t *testing.T) {
	assert.Equal(t, 0.0, LitersToMinutes(500, 0))
	assert.Equal(t, 0.0, LitersToMinutes(500, -3))
	assert.Equal(t, 0.0, MmToTheta(10, 0))
	assert.InDelta(t, 60.0, MmToLiters(6, 10000), 1e-9)
	assert.InDelta(t, 6.0, ThetaToMm(0.02, 300), 1e-9)
	assert.InDelta(t, 0.6, MmToMinutes(6, 10000, 100), 1e-9)
}

func TestBucketUpdate(t *testing.T) {
	b := NewBucket(0.20, 0.09, 0.27, 0.45, 300)

	// 6 mm in, no ET: theta rises by 0.02
	step := b.Update(6, 0, 0, 0.1)
	assert.InDelta(t, 0.22, step.Theta, 1e-9)
	assert.Equal(t, 0.0, step.DrainageMm)

	// ET alone cannot pull below wilting point
	b2 := NewBucket(0.10, 0.09, 0.27, 0.45, 300)
	step = b2.Update(0, 0, 50, 0.1)
	assert.InDelta(t, 0.09, step.Theta, 1e-9)

	// excess above field capacity drains
	b3 := NewBucket(0.30, 0.09, 0.27, 0.45, 300)
	step = b3.Update(0, 0, 0, 0.1)
	assert.Less(t, step.Theta, 0.30)
	assert.Greater(t, step.DrainageMm, 0.0)

	// saturation is a hard ceiling
	b4 := NewBucket(0.44, 0.09, 0.27, 0.45, 300)
	step = b4.Update(100, 0, 0, 0.0)
	assert.LessOrEqual(t, step.Theta, 0.45)
}

func TestBucketDeficitAndStorage(t *testing.T) {
	b := NewBucket(0.20, 0.09, 0.27, 0.45, 300)
	assert.InDelta(t, 21.0, b.DeficitMm(0.27), 1e-9)
	assert.InDelta(t, 21.0, b.FreeStorageMm(), 1e-9)

	full := NewBucket(0.28, 0.09, 0.27, 0.45, 300)
	assert.Equal(t, 0.0, full.DeficitMm(0.27))
	assert.Equal(t, 0.0, full.FreeStorageMm())
}
