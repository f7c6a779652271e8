package repository

import "irrig/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	FindByID(id string) (*entities.Field, error)
	All() ([]entities.Field, error)
	Soils() (map[string]entities.SoilProfile, error)
	Crops() (map[string]entities.CropProfile, error)
}
