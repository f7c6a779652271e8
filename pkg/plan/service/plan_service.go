package service

import (
	"time"

	"irrig/entities"
)

const (
	ControllerBaseline    = "baseline"
	ControllerRuleBased   = "rule_based"
	ControllerMLOptimizer = "ml_optimizer"

	SolverGreedy = "greedy"
	SolverExact  = "exact"
)

type GenerateOptions struct {
	Controller string // baseline|rule_based|ml_optimizer (default)
	Solver     string // greedy (default)|exact
	UseAPI     bool   // live weather source instead of synthetic
}

type PlanService interface {
	Generate(date time.Time, opt GenerateOptions) (*entities.PlanRun, []entities.ScheduleEntry, error)
}
