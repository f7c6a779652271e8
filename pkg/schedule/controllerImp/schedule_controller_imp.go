package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"irrig/pkg/schedule/repository"
)

type ScheduleCtrl struct{ repo repository.ScheduleRepository }

func New(repo repository.ScheduleRepository) *ScheduleCtrl { return &ScheduleCtrl{repo} }

func (h *ScheduleCtrl) List(c echo.Context) error {
	var from, to time.Time
	if v := c.QueryParam("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t.AddDate(0, 0, 1) // inclusive day
		}
	}
	out, err := h.repo.ListByField(c.Param("id"), from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
