package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"irrig/entities"
	"irrig/pkg/field/repository"
)

type FieldCtrl struct{ repo repository.FieldRepository }

func New(repo repository.FieldRepository) *FieldCtrl { return &FieldCtrl{repo} }

type createReq struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	AreaM2            float64 `json:"area_m2"`
	Soil              string  `json:"soil"`
	Crop              string  `json:"crop"`
	EmitterLPM        float64 `json:"emitter_lpm"`
	ThetaTargetOffset float64 `json:"theta_target_offset"`
	DailyMaxMin       float64 `json:"daily_max_min"`
	Priority          int     `json:"priority"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.ID == "" || req.AreaM2 <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id and area_m2 required"})
	}
	f := &entities.Field{
		ID: req.ID, Name: req.Name, AreaM2: req.AreaM2, Soil: req.Soil, Crop: req.Crop,
		EmitterLPM: req.EmitterLPM, ThetaTargetOffset: req.ThetaTargetOffset,
		DailyMaxMin: req.DailyMaxMin, Priority: req.Priority,
	}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	f, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) List(c echo.Context) error {
	fields, err := h.repo.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, fields)
}
