package entities

import "time"

// MoistureReading is a sensed volumetric soil moisture sample for a field.
// The latest reading per field feeds the need calculator as theta_now.
type MoistureReading struct {
	ReadingID uint      `gorm:"primaryKey" json:"reading_id"`
	FieldID   string    `gorm:"index" json:"field_id"`
	Date      time.Time `json:"date"`
	Theta     float64   `json:"theta"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time
}
