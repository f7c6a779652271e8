package serviceImp

import (
	"fmt"
	"log"
	"time"

	"irrig/entities"
	"irrig/pkg/agronomy"
	fieldrepo "irrig/pkg/field/repository"
	"irrig/pkg/forecast"
	measrepo "irrig/pkg/measure/repository"
	"irrig/pkg/needcalc"
	planrepo "irrig/pkg/plan/repository"
	"irrig/pkg/plan/service"
	"irrig/pkg/rules"
	schedrepo "irrig/pkg/schedule/repository"
	"irrig/pkg/scheduler"
	"irrig/pkg/weather"
)

// Config is the pump/window portion of the farm configuration.
type Config struct {
	PumpQmaxLPM  float64
	WindowStart  string
	WindowEnd    string
	SlotMinutes  int
	SolverBudget time.Duration
	SafetyMm     float64
}

type PlanSvc struct {
	repoField fieldrepo.FieldRepository
	repoMeas  measrepo.MeasureRepository
	repoPlan  planrepo.PlanRepository
	repoSched schedrepo.ScheduleRepository
	src       weather.Source // preferred source, may be nil
	offline   weather.Source // always available fallback
	est       forecast.EstimateProvider
	cfg       Config
}

func NewPlanService(
	fr fieldrepo.FieldRepository,
	mr measrepo.MeasureRepository,
	pr planrepo.PlanRepository,
	sr schedrepo.ScheduleRepository,
	src weather.Source,
	est forecast.EstimateProvider,
	cfg Config,
) *PlanSvc {
	return &PlanSvc{
		repoField: fr, repoMeas: mr, repoPlan: pr, repoSched: sr,
		src: src, offline: weather.Synthetic{}, est: est, cfg: cfg,
	}
}

// Generate builds, persists and returns the irrigation plan for one date:
// forecast -> per-field needs -> controller overrides -> pump-window
// scheduling -> stored run with savings against the fixed baseline.
func (s *PlanSvc) Generate(date time.Time, opt service.GenerateOptions) (*entities.PlanRun, []entities.ScheduleEntry, error) {
	fields, err := s.repoField.All()
	if err != nil {
		return nil, nil, fmt.Errorf("load fields: %w", err)
	}
	soils, err := s.repoField.Soils()
	if err != nil {
		return nil, nil, fmt.Errorf("load soils: %w", err)
	}
	crops, err := s.repoField.Crops()
	if err != nil {
		return nil, nil, fmt.Errorf("load crops: %w", err)
	}

	fc := s.forecastFor(date, opt.UseAPI)

	thetaNow, err := s.repoMeas.LatestTheta()
	if err != nil {
		log.Printf("[plan] warning: readings unavailable, using field capacity: %v", err)
		thetaNow = map[string]float64{}
	}

	params := needcalc.Params{SafetyMarginMm: s.cfg.SafetyMm, WindowHours: s.windowHours(date)}
	ropts := rules.DefaultOptions()

	controller := opt.Controller
	if controller == "" {
		controller = service.ControllerMLOptimizer
	}

	var needs map[string]entities.NeedResult
	switch controller {
	case service.ControllerBaseline:
		needs = rules.Baseline(fields, ropts.FixedMinutes)
	case service.ControllerRuleBased:
		raw := needcalc.CalculateAll(fields, soils, crops, fc, thetaNow, params)
		needs = rules.RuleBased(raw, fc, ropts)
	default: // ml_optimizer
		raw := needcalc.CalculateAll(fields, soils, crops, fc, thetaNow, params)
		s.applyEstimates(raw, fields, fc)
		needs = rules.RuleBased(raw, fc, ropts)
	}

	var strat scheduler.Strategy = scheduler.GreedyScheduler{}
	if opt.Solver == service.SolverExact {
		strat = scheduler.ExactScheduler{Budget: s.cfg.SolverBudget}
	}
	entries, used := strat.Schedule(scheduler.Request{
		Needs:       needs,
		Fields:      fields,
		PumpQmaxLPM: s.cfg.PumpQmaxLPM,
		WindowStart: s.cfg.WindowStart,
		WindowEnd:   s.cfg.WindowEnd,
		Date:        date,
		SlotMinutes: s.cfg.SlotMinutes,
	})

	run := s.summarize(date, controller, string(used), fields, entries)
	if err := s.repoPlan.Create(run); err != nil {
		return nil, nil, fmt.Errorf("store plan: %w", err)
	}
	for i := range entries {
		entries[i].PlanID = run.PlanID
	}
	if err := s.repoSched.BulkInsert(entries); err != nil {
		return nil, nil, fmt.Errorf("store schedule: %w", err)
	}
	return run, entries, nil
}

// forecastFor prefers the live source when asked for; any failure there
// degrades to the synthetic generator rather than failing the plan.
func (s *PlanSvc) forecastFor(date time.Time, useAPI bool) entities.ForecastSnapshot {
	if useAPI && s.src != nil {
		fc, err := s.src.Forecast(date)
		if err == nil {
			return fc
		}
		log.Printf("[plan] weather source failed, falling back to synthetic: %v", err)
	}
	fc, _ := s.offline.Forecast(date)
	return fc
}

// applyEstimates substitutes the external P50 volume estimate for the
// computed one, re-deriving minutes, before the rule controller runs.
func (s *PlanSvc) applyEstimates(needs map[string]entities.NeedResult, fields []entities.Field, fc entities.ForecastSnapshot) {
	if s.est == nil {
		return
	}
	ids := make([]string, 0, len(fields))
	for _, f := range fields {
		ids = append(ids, f.ID)
	}
	for id, est := range s.est.Estimate(fc, ids) {
		need, ok := needs[id]
		if !ok || est.P50 <= 0 {
			continue
		}
		need.Liters = est.P50
		need.Minutes = agronomy.LitersToMinutes(est.P50, need.EmitterLPM)
		needs[id] = need
	}
}

func (s *PlanSvc) summarize(date time.Time, controller, solver string, fields []entities.Field, entries []entities.ScheduleEntry) *entities.PlanRun {
	totalLiters := 0.0
	totalMinutes := 0.0
	for _, e := range entries {
		totalLiters += e.Liters
		totalMinutes += e.Minutes
	}

	baselineLiters := 0.0
	for _, need := range rules.Baseline(fields, rules.DefaultOptions().FixedMinutes) {
		baselineLiters += need.Liters
	}
	savings := 0.0
	if baselineLiters > 0 {
		savings = (baselineLiters - totalLiters) / baselineLiters * 100.0
	}

	return &entities.PlanRun{
		Date:            date,
		Controller:      controller,
		Solver:          solver,
		TotalLiters:     totalLiters,
		TotalMinutes:    totalMinutes,
		FieldsScheduled: len(entries),
		BaselineLiters:  baselineLiters,
		SavingsPct:      savings,
	}
}

func (s *PlanSvc) windowHours(date time.Time) float64 {
	start, end, err := scheduler.ParseWindow(s.cfg.WindowStart, s.cfg.WindowEnd, date)
	if err != nil {
		return 4.0
	}
	return end.Sub(start).Hours()
}
