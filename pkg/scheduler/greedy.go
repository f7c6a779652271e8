package scheduler

import (
	"log"
	"time"

	"irrig/entities"
)

// GreedyScheduler is a deterministic slot-by-slot simulation. At each slot
// it admits pending fields in candidate order while the pump has spare
// capacity; an admitted field stays active until its runtime is exhausted.
// Sub-optimal packings are possible, termination is not in question.
type GreedyScheduler struct{}

type activeRun struct {
	start      time.Time
	emitterLPM float64
	remaining  float64
}

func (GreedyScheduler) Schedule(req Request) ([]entities.ScheduleEntry, StrategyTag) {
	startDt, endDt, err := ParseWindow(req.WindowStart, req.WindowEnd, req.Date)
	if err != nil {
		log.Printf("[sched] bad window %q-%q: %v", req.WindowStart, req.WindowEnd, err)
		return nil, StrategyGreedy
	}

	slotMin := req.SlotMinutes
	if slotMin <= 0 {
		slotMin = 5
	}
	windowMinutes := int(endDt.Sub(startDt).Minutes())
	numSlots := windowMinutes / slotMin

	candidates := buildCandidates(req)

	var schedule []entities.ScheduleEntry
	active := make(map[string]*activeRun)

	for slot := 0; slot < numSlots; slot++ {
		slotStart := startDt.Add(time.Duration(slot*slotMin) * time.Minute)
		slotEnd := slotStart.Add(time.Duration(slotMin) * time.Minute)

		load := 0.0
		for _, run := range active {
			load += run.emitterLPM
		}

		// Admit pending fields in priority order while capacity allows.
		for _, cand := range candidates {
			if _, isActive := active[cand.FieldID]; isActive {
				continue
			}
			if done(schedule, cand.FieldID) {
				continue
			}
			if load+cand.EmitterLPM <= req.PumpQmaxLPM {
				active[cand.FieldID] = &activeRun{start: slotStart, emitterLPM: cand.EmitterLPM, remaining: cand.Minutes}
				load += cand.EmitterLPM
			}
		}

		// Burn this slot for every active field; finalize the finished ones.
		// Iterate candidates, not the map, so the outcome is deterministic.
		for _, cand := range candidates {
			run, isActive := active[cand.FieldID]
			if !isActive {
				continue
			}
			run.remaining -= float64(slotMin)
			if run.remaining <= 0 {
				schedule = append(schedule, entities.ScheduleEntry{
					FieldID: cand.FieldID,
					StartTS: run.start,
					EndTS:   slotEnd,
					Minutes: cand.Minutes,
					Liters:  cand.Minutes * run.emitterLPM,
				})
				delete(active, cand.FieldID)
			}
		}
	}

	// Fields still running at window close get their entry clamped to the
	// window end; that is how partial service is reported.
	for _, cand := range candidates {
		run, isActive := active[cand.FieldID]
		if !isActive {
			continue
		}
		schedule = append(schedule, entities.ScheduleEntry{
			FieldID: cand.FieldID,
			StartTS: run.start,
			EndTS:   endDt,
			Minutes: cand.Minutes,
			Liters:  cand.Liters,
		})
	}

	sortEntries(schedule)
	return schedule, StrategyGreedy
}

func done(schedule []entities.ScheduleEntry, fieldID string) bool {
	for _, e := range schedule {
		if e.FieldID == fieldID {
			return true
		}
	}
	return false
}
