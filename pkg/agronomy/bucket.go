package agronomy

import "math"

// Bucket is a one-layer soil moisture bucket: water in (irrigation, rain),
// water out (crop ET, drainage above field capacity), clipped to the
// physical range [wilt, sat].
type Bucket struct {
	Theta       float64
	ThetaWilt   float64
	ThetaFC     float64
	ThetaSat    float64
	RootDepthMm float64
}

type BucketStep struct {
	Theta        float64 `json:"theta"`
	DrainageMm   float64 `json:"drainage_mm"`
	WaterAddedMm float64 `json:"water_added_mm"`
	ETcMm        float64 `json:"etc_mm"`
}

func NewBucket(thetaInit, thetaWilt, thetaFC, thetaSat, rootDepthMm float64) *Bucket {
	return &Bucket{Theta: thetaInit, ThetaWilt: thetaWilt, ThetaFC: thetaFC, ThetaSat: thetaSat, RootDepthMm: rootDepthMm}
}

// Update advances the bucket one day. drainageFactor is the fraction of
// excess above field capacity that drains per day.
func (b *Bucket) Update(irrigationMm, rainMm, etcMm, drainageFactor float64) BucketStep {
	waterAddedMm := irrigationMm + rainMm

	b.Theta += MmToTheta(waterAddedMm, b.RootDepthMm)
	b.Theta = math.Max(b.ThetaWilt, b.Theta-MmToTheta(etcMm, b.RootDepthMm))

	drainageMm := 0.0
	if b.Theta > b.ThetaFC {
		drained := (b.Theta - b.ThetaFC) * drainageFactor
		b.Theta -= drained
		drainageMm = ThetaToMm(drained, b.RootDepthMm)
	}

	b.Theta = math.Min(b.ThetaSat, b.Theta)

	return BucketStep{Theta: b.Theta, DrainageMm: drainageMm, WaterAddedMm: waterAddedMm, ETcMm: etcMm}
}

// DeficitMm is the depth of water missing to reach thetaTarget.
func (b *Bucket) DeficitMm(thetaTarget float64) float64 {
	if b.Theta >= thetaTarget {
		return 0.0
	}
	return ThetaToMm(thetaTarget-b.Theta, b.RootDepthMm)
}

// FreeStorageMm is the unused capacity below field capacity.
func (b *Bucket) FreeStorageMm() float64 {
	if b.Theta >= b.ThetaFC {
		return 0.0
	}
	return ThetaToMm(b.ThetaFC-b.Theta, b.RootDepthMm)
}
