package engine

import (
	"sort"
	"time"

	"github.com/rafael/betterlife-api/internal/models"
)

// ObjectiveProgress is the evaluated state of a single objective.
type ObjectiveProgress struct {
	Current  float64 `json:"atual"`
	Target   float64 `json:"meta"`
	Complete bool    `json:"completo"`
}

// EvaluateObjective computes current/target/complete for one objective
// against the full event history. Evaluation never fails: unknown types,
// unresolvable action names and unrecognized areas all produce a
// non-completing placeholder.
func EvaluateObjective(obj models.Objective, events []models.Event, actions []models.Action) ObjectiveProgress {
	pool, ok := windowEvents(obj, events)
	if !ok {
		return ObjectiveProgress{Target: obj.Target()}
	}

	switch obj.Type {
	case models.ObjectiveQuantity:
		return evaluateQuantity(obj, pool, actions)
	case models.ObjectiveStreak:
		return evaluateStreak(obj, pool, actions)
	case models.ObjectiveAreaPoints:
		return evaluateAreaPoints(obj, pool, actions)
	default:
		return ObjectiveProgress{Target: 1}
	}
}

// windowEvents restricts the pool to the objective's rolling window when
// one is configured. The window ends at the most recent dated event in
// history (not the evaluation date) and its start depends on the unit:
// days and weeks subtract n-1 and 7n-1 days so the span covers exactly n
// days or weeks inclusive; months and years use calendar subtraction.
// Returns false when a window is configured but history holds no dated
// events.
func windowEvents(obj models.Objective, events []models.Event) ([]models.Event, bool) {
	if !obj.HasDeadline || obj.IntervalLength <= 0 || obj.IntervalUnit == "" {
		return events, true
	}

	var end time.Time
	for _, ev := range events {
		if ev.Date.IsZero() {
			continue
		}
		d := DateOnly(ev.Date)
		if end.IsZero() || d.After(end) {
			end = d
		}
	}
	if end.IsZero() {
		return nil, false
	}

	n := obj.IntervalLength
	var start time.Time
	switch obj.IntervalUnit {
	case models.IntervalDays:
		start = end.AddDate(0, 0, -(n - 1))
	case models.IntervalWeeks:
		start = end.AddDate(0, 0, -(n*7 - 1))
	case models.IntervalMonths:
		start = end.AddDate(0, -n, 0)
	case models.IntervalYears:
		start = end.AddDate(-n, 0, 0)
	default:
		return events, true
	}

	pool := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if ev.Date.IsZero() {
			continue
		}
		d := DateOnly(ev.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		pool = append(pool, ev)
	}
	return pool, true
}

func evaluateQuantity(obj models.Objective, pool []models.Event, actions []models.Action) ObjectiveProgress {
	target := obj.Target()

	action, ok := findActionByName(actions, obj.EventName)
	if !ok {
		return ObjectiveProgress{Target: target}
	}

	count := 0
	for _, ev := range pool {
		if ev.ActionID == action.ID {
			count++
		}
	}
	return ObjectiveProgress{
		Current:  float64(count),
		Target:   target,
		Complete: count >= obj.Quantity,
	}
}

// evaluateStreak measures the longest run of consecutive active days with
// no negative contribution to the objective's area. Days without events
// neither break nor extend the run; the streak is counted over dates that
// have events only.
func evaluateStreak(obj models.Objective, pool []models.Event, actions []models.Action) ObjectiveProgress {
	target := obj.Target()
	if !models.ValidArea(obj.Area) {
		return ObjectiveProgress{Target: target}
	}

	catalog := indexActions(actions)

	byDay := make(map[time.Time][]models.Event)
	for _, ev := range pool {
		if ev.Date.IsZero() {
			continue
		}
		d := DateOnly(ev.Date)
		byDay[d] = append(byDay[d], ev)
	}

	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	maxRun, run := 0, 0
	for _, d := range days {
		negative := false
		for _, ev := range byDay[d] {
			action, ok := catalog[ev.ActionID]
			if !ok {
				continue
			}
			if action.AreaDeltas[obj.Area] < 0 {
				negative = true
				break
			}
		}
		if negative {
			run = 0
		} else {
			run++
		}
		if run > maxRun {
			maxRun = run
		}
	}

	return ObjectiveProgress{
		Current:  float64(maxRun),
		Target:   target,
		Complete: maxRun >= obj.RequiredDays,
	}
}

// evaluateAreaPoints sums the raw historical deltas for the area over the
// pool. No decay multiplier applies here; this is a cumulative total,
// distinct from the live decayed score.
func evaluateAreaPoints(obj models.Objective, pool []models.Event, actions []models.Action) ObjectiveProgress {
	target := obj.Target()
	if !models.ValidArea(obj.Area) {
		return ObjectiveProgress{Target: target}
	}

	catalog := indexActions(actions)

	points := 0.0
	for _, ev := range pool {
		action, ok := catalog[ev.ActionID]
		if !ok {
			continue
		}
		points += action.AreaDeltas[obj.Area]
	}

	return ObjectiveProgress{
		Current:  points,
		Target:   target,
		Complete: points >= obj.RequiredPoints,
	}
}
