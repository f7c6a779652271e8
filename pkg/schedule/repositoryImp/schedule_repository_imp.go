package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"irrig/entities"
	"irrig/pkg/schedule/repository"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) BulkInsert(entries []entities.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}

func (r *schedRepo) ListByPlan(planID uint) ([]entities.ScheduleEntry, error) {
	var out []entities.ScheduleEntry
	if err := r.db.Where("plan_id = ?", planID).Order("start_ts ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) ListByField(fieldID string, from, to time.Time) ([]entities.ScheduleEntry, error) {
	q := r.db.Where("field_id = ?", fieldID)
	if !from.IsZero() {
		q = q.Where("start_ts >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("start_ts <= ?", to)
	}
	var out []entities.ScheduleEntry
	if err := q.Order("start_ts ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
