package repository

import (
	"time"

	"irrig/entities"
)

type PlanRepository interface {
	Create(p *entities.PlanRun) error
	LatestByDate(date time.Time) (*entities.PlanRun, error)
	List(limit int) ([]entities.PlanRun, error)
}
