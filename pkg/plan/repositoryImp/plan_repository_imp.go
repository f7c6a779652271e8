package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"irrig/entities"
	"irrig/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Create(p *entities.PlanRun) error { return r.db.Create(p).Error }

func (r *planRepo) LatestByDate(date time.Time) (*entities.PlanRun, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	var p entities.PlanRun
	err := r.db.Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Order("plan_id DESC").First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) List(limit int) ([]entities.PlanRun, error) {
	if limit <= 0 {
		limit = 30
	}
	var out []entities.PlanRun
	if err := r.db.Order("plan_id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
