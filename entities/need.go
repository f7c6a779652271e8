package entities

// NeedResult is the water requirement of one field for one planning date.
// Liters is always re-derived from the final (possibly capped) Minutes, so
// Liters == Minutes * EmitterLPM holds exactly.
type NeedResult struct {
	FieldID       string  `json:"field_id"`
	NeedMm        float64 `json:"need_mm"`
	Liters        float64 `json:"liters"`
	Minutes       float64 `json:"minutes"`
	SoilDeficitMm float64 `json:"soil_deficit_mm"`
	ETcMm         float64 `json:"etc_mm"`
	EffRainMm     float64 `json:"eff_rain_mm"`
	ThetaNow      float64 `json:"theta_now"`
	ThetaTarget   float64 `json:"theta_target"`
	ThetaMin      float64 `json:"theta_min"`
	ThetaMax      float64 `json:"theta_max"`

	// carried along so the controller can re-derive volume after overrides
	AreaM2     float64 `json:"area_m2"`
	EmitterLPM float64 `json:"emitter_lpm"`

	RainLocked bool `json:"rain_locked"`
}
