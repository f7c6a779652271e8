package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"irrig/entities"
	"irrig/pkg/measure/repository"
)

type MeasureCtrl struct{ repo repository.MeasureRepository }

func New(repo repository.MeasureRepository) *MeasureCtrl { return &MeasureCtrl{repo} }

type readingReq struct {
	Date  string  `json:"date"` // YYYY-MM-DD, empty = today
	Theta float64 `json:"theta"`
	Note  string  `json:"note"`
}

func (h *MeasureCtrl) Create(c echo.Context) error {
	var req readingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Theta <= 0 || req.Theta >= 1 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "theta must be a volumetric fraction in (0,1)"})
	}
	d := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date"})
		}
		d = parsed
	}
	m := &entities.MoistureReading{FieldID: c.Param("id"), Date: d, Theta: req.Theta, Note: req.Note}
	if err := h.repo.Create(m); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MeasureCtrl) List(c echo.Context) error {
	n, _ := strconv.Atoi(c.QueryParam("n"))
	if n <= 0 {
		n = 14
	}
	out, err := h.repo.Recent(c.Param("id"), n)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
