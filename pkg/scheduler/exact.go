package scheduler

import (
	"math"
	"time"

	"irrig/entities"
)

// ExactScheduler searches for a feasible assignment in which every field
// occupies one contiguous run of slots and no slot's combined flow exceeds
// pump capacity. Feasibility is the success criterion; there is no
// objective. The search runs under a wall-clock budget, and on timeout or
// infeasibility the greedy result is returned instead. Neither case is an
// error to the caller.
type ExactScheduler struct {
	Budget time.Duration // zero means the 10s default
}

func (s ExactScheduler) Schedule(req Request) ([]entities.ScheduleEntry, StrategyTag) {
	budget := s.Budget
	if budget <= 0 {
		budget = 10 * time.Second
	}

	startDt, endDt, err := ParseWindow(req.WindowStart, req.WindowEnd, req.Date)
	if err != nil {
		return GreedyScheduler{}.Schedule(req)
	}

	slotMin := req.SlotMinutes
	if slotMin <= 0 {
		slotMin = 5
	}
	windowMinutes := int(endDt.Sub(startDt).Minutes())
	numSlots := windowMinutes / slotMin

	candidates := buildCandidates(req)
	if len(candidates) == 0 {
		return nil, StrategyExact
	}

	// ceil, never floor: a run must cover the full runtime.
	required := make([]int, len(candidates))
	for i, cand := range candidates {
		required[i] = requiredSlots(cand.Minutes, slotMin)
		if required[i] > numSlots {
			// cannot fit even alone; the model is infeasible
			return GreedyScheduler{}.Schedule(req)
		}
	}

	deadline := time.Now().Add(budget)
	load := make([]float64, numSlots)
	starts := make([]int, len(candidates))

	if !assign(0, candidates, required, load, starts, numSlots, req.PumpQmaxLPM, deadline) {
		return GreedyScheduler{}.Schedule(req)
	}

	schedule := make([]entities.ScheduleEntry, 0, len(candidates))
	for i, cand := range candidates {
		startTs := startDt.Add(time.Duration(starts[i]*slotMin) * time.Minute)
		endTs := startDt.Add(time.Duration((starts[i]+required[i])*slotMin) * time.Minute)
		schedule = append(schedule, entities.ScheduleEntry{
			FieldID: cand.FieldID,
			StartTS: startTs,
			EndTS:   endTs,
			Minutes: cand.Minutes,
			Liters:  cand.Liters,
		})
	}
	sortEntries(schedule)
	return schedule, StrategyExact
}

// requiredSlots is the contiguous slot count for a runtime: at least one,
// rounded up so runtime is never under-allocated.
func requiredSlots(minutes float64, slotMin int) int {
	n := int(math.Ceil(minutes / float64(slotMin)))
	if n < 1 {
		n = 1
	}
	return n
}

// assign places candidates[i:] one contiguous run each, earliest start
// first, pruning any start whose covered slots would exceed capacity.
// Returns false on exhaustion or when the deadline passes.
func assign(i int, candidates []candidate, required []int, load []float64, starts []int, numSlots int, qmax float64, deadline time.Time) bool {
	if i == len(candidates) {
		return true
	}
	if time.Now().After(deadline) {
		return false
	}

	cand := candidates[i]
	for start := 0; start+required[i] <= numSlots; start++ {
		fits := true
		for s := start; s < start+required[i]; s++ {
			if load[s]+cand.EmitterLPM > qmax {
				fits = false
				break
			}
		}
		if !fits {
			continue
		}

		for s := start; s < start+required[i]; s++ {
			load[s] += cand.EmitterLPM
		}
		starts[i] = start

		if assign(i+1, candidates, required, load, starts, numSlots, qmax, deadline) {
			return true
		}

		for s := start; s < start+required[i]; s++ {
			load[s] -= cand.EmitterLPM
		}
		if time.Now().After(deadline) {
			return false
		}
	}
	return false
}
