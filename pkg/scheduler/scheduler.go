// Package scheduler packs field runtimes into the daily pump window without
// exceeding pump flow capacity. Two strategies share one contract: a greedy
// slot simulation and an exact contiguous-run search that falls back to
// greedy when it cannot produce an answer in time.
package scheduler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"irrig/entities"
)

type StrategyTag string

const (
	StrategyGreedy StrategyTag = "greedy"
	StrategyExact  StrategyTag = "exact"
)

// Request is one scheduling problem: final per-field needs plus the pump
// and window configuration.
type Request struct {
	Needs       map[string]entities.NeedResult
	Fields      []entities.Field
	PumpQmaxLPM float64
	WindowStart string // "HH:MM"
	WindowEnd   string // "HH:MM"; at or before start means overnight
	Date        time.Time
	SlotMinutes int
}

// Strategy produces an ordered schedule and reports which strategy actually
// ran. Implementations never fail; degraded outcomes are expressed through
// the tag and the entries themselves.
type Strategy interface {
	Schedule(req Request) ([]entities.ScheduleEntry, StrategyTag)
}

// ParseWindow resolves the HH:MM window strings against the plan date.
// An end at or before the start is an overnight window and rolls to the
// next day; that is never an error.
func ParseWindow(windowStart, windowEnd string, date time.Time) (time.Time, time.Time, error) {
	start, err := parseHHMM(windowStart, date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("window start: %w", err)
	}
	end, err := parseHHMM(windowEnd, date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("window end: %w", err)
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}

func parseHHMM(s string, date time.Time) (time.Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("bad time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time %q", s)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// candidate is one schedulable field with its final runtime.
type candidate struct {
	FieldID    string
	Minutes    float64
	Liters     float64
	EmitterLPM float64
	Priority   int
	DeficitMm  float64
}

// buildCandidates filters out fields without a need or without runtime and
// orders the rest by ascending priority, ties broken by descending soil
// deficit. This is both the greedy admission order and the exact model's
// canonical field order.
func buildCandidates(req Request) []candidate {
	list := make([]candidate, 0, len(req.Fields))
	for _, f := range req.Fields {
		need, ok := req.Needs[f.ID]
		if !ok {
			continue
		}
		if need.Minutes <= 0 {
			continue
		}
		list = append(list, candidate{
			FieldID:    f.ID,
			Minutes:    need.Minutes,
			Liters:     need.Liters,
			EmitterLPM: f.EmitterLPM,
			Priority:   f.Priority,
			DeficitMm:  need.SoilDeficitMm,
		})
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority < list[j].Priority
		}
		return list[i].DeficitMm > list[j].DeficitMm
	})
	return list
}

func sortEntries(entries []entities.ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].StartTS.Equal(entries[j].StartTS) {
			return entries[i].StartTS.Before(entries[j].StartTS)
		}
		return entries[i].FieldID < entries[j].FieldID
	})
}
