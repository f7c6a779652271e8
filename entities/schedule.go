package entities

import "time"

// PlanRun is one generated irrigation plan for one calendar date.
type PlanRun struct {
	PlanID          uint      `gorm:"primaryKey" json:"plan_id"`
	Date            time.Time `gorm:"index" json:"date"`
	Controller      string    `json:"controller"` // baseline|rule_based|ml_optimizer
	Solver          string    `json:"solver"`     // strategy actually used: greedy|exact
	TotalLiters     float64   `json:"total_liters"`
	TotalMinutes    float64   `json:"total_minutes"`
	FieldsScheduled int       `json:"fields_scheduled"`
	BaselineLiters  float64   `json:"baseline_liters"`
	SavingsPct      float64   `json:"savings_pct"`
	CreatedAt       time.Time
}

// ScheduleEntry is one field's pump slot inside the daily window.
// StartTS < EndTS always; an entry ending exactly at window close marks a
// field the window could not fully serve.
type ScheduleEntry struct {
	EntryID uint      `gorm:"primaryKey" json:"entry_id"`
	PlanID  uint      `gorm:"index" json:"plan_id"`
	FieldID string    `gorm:"index" json:"field_id"`
	StartTS time.Time `json:"start_ts"`
	EndTS   time.Time `json:"end_ts"`
	Minutes float64   `json:"minutes"`
	Liters  float64   `json:"liters"`

	CreatedAt time.Time
}
