package entities

import "time"

type Field struct {
	ID                string  `gorm:"primaryKey" json:"id"`
	Name              string  `json:"name"`
	AreaM2            float64 `json:"area_m2"`
	Soil              string  `json:"soil" gorm:"index"`
	Crop              string  `json:"crop" gorm:"index"`
	EmitterLPM        float64 `json:"emitter_lpm"`
	ThetaTargetOffset float64 `json:"theta_target_offset"`
	DailyMaxMin       float64 `json:"daily_max_min"`
	Priority          int     `json:"priority"` // lower = more urgent

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SoilProfile holds the volumetric moisture landmarks of a soil type.
// Invariant: ThetaWilt <= ThetaFC <= ThetaSat.
type SoilProfile struct {
	Name         string  `gorm:"primaryKey" json:"soil"`
	ThetaWilt    float64 `json:"theta_wilt"`
	ThetaFC      float64 `json:"theta_fc"`
	ThetaSat     float64 `json:"theta_sat"`
	InfilRateMmH float64 `json:"infil_rate_mm_h"`
}

type CropProfile struct {
	Name          string  `gorm:"primaryKey" json:"crop"`
	KcSpring      float64 `json:"kc_spring"`
	KcSummer      float64 `json:"kc_summer"`
	KcFall        float64 `json:"kc_fall"`
	ZrMm          float64 `json:"zr_mm"` // root zone depth
	BandMinOffset float64 `json:"band_min_offset"`
	BandMaxOffset float64 `json:"band_max_offset"`
}
