package repositoryImp

import (
	"gorm.io/gorm"

	"irrig/entities"
	"irrig/pkg/measure/repository"
)

type measRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MeasureRepository { return &measRepo{db} }

func (r *measRepo) Create(m *entities.MoistureReading) error { return r.db.Create(m).Error }

func (r *measRepo) Recent(fieldID string, n int) ([]entities.MoistureReading, error) {
	var out []entities.MoistureReading
	if err := r.db.Where("field_id = ?", fieldID).Order("date DESC").Limit(n).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *measRepo) LatestTheta() (map[string]float64, error) {
	var rows []entities.MoistureReading
	if err := r.db.Order("field_id ASC, date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := map[string]float64{}
	for _, m := range rows { // ascending date: last write wins
		out[m.FieldID] = m.Theta
	}
	return out, nil
}
