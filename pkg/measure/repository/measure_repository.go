package repository

import "irrig/entities"

type MeasureRepository interface {
	Create(m *entities.MoistureReading) error
	Recent(fieldID string, n int) ([]entities.MoistureReading, error)
	// LatestTheta returns the most recent reading per field.
	LatestTheta() (map[string]float64, error)
}
