package repositoryImp

import (
	"gorm.io/gorm"

	"irrig/entities"
	"irrig/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }

func (r *fieldRepo) FindByID(id string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) All() ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fieldRepo) Soils() (map[string]entities.SoilProfile, error) {
	var rows []entities.SoilProfile
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]entities.SoilProfile, len(rows))
	for _, s := range rows {
		out[s.Name] = s
	}
	return out, nil
}

func (r *fieldRepo) Crops() (map[string]entities.CropProfile, error) {
	var rows []entities.CropProfile
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]entities.CropProfile, len(rows))
	for _, c := range rows {
		out[c.Name] = c
	}
	return out, nil
}
