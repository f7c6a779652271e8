package repository

import (
	"time"

	"irrig/entities"
)

type ScheduleRepository interface {
	BulkInsert(entries []entities.ScheduleEntry) error
	ListByPlan(planID uint) ([]entities.ScheduleEntry, error)
	ListByField(fieldID string, from, to time.Time) ([]entities.ScheduleEntry, error)
}
