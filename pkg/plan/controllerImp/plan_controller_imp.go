package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	planrepo "irrig/pkg/plan/repository"
	"irrig/pkg/plan/service"
	"irrig/pkg/report"
	schedrepo "irrig/pkg/schedule/repository"
)

type PlanCtrl struct {
	svc       service.PlanService
	repoPlan  planrepo.PlanRepository
	repoSched schedrepo.ScheduleRepository
}

func NewPlanCtrl(svc service.PlanService, pr planrepo.PlanRepository, sr schedrepo.ScheduleRepository) *PlanCtrl {
	return &PlanCtrl{svc: svc, repoPlan: pr, repoSched: sr}
}

// Generate creates the plan for /plans/:date. Query params: controller,
// solver, use_api.
func (h *PlanCtrl) Generate(c echo.Context) error {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date, want YYYY-MM-DD"})
	}
	opt := service.GenerateOptions{
		Controller: c.QueryParam("controller"),
		Solver:     c.QueryParam("solver"),
		UseAPI:     c.QueryParam("use_api") == "true",
	}
	run, entries, err := h.svc.Generate(date, opt)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"plan": run, "schedule": entries})
}

func (h *PlanCtrl) Get(c echo.Context) error {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date, want YYYY-MM-DD"})
	}
	run, err := h.repoPlan.LatestByDate(date)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no plan for date"})
	}
	entries, err := h.repoSched.ListByPlan(run.PlanID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"plan": run, "schedule": entries})
}

func (h *PlanCtrl) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	runs, err := h.repoPlan.List(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, runs)
}

// Export streams the day's schedule as an XLSX workbook.
func (h *PlanCtrl) Export(c echo.Context) error {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date, want YYYY-MM-DD"})
	}
	run, err := h.repoPlan.LatestByDate(date)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no plan for date"})
	}
	entries, err := h.repoSched.ListByPlan(run.PlanID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	wb, err := report.ScheduleWorkbook(run, entries)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer wb.Close()

	name := "schedule_" + date.Format("20060102") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	_, err = wb.WriteTo(c.Response())
	return err
}
