package engine

import (
	"time"

	"github.com/rafael/betterlife-api/internal/models"
)

// ScoreSnapshot is the derived per-day score: one value per area, the
// grand total, and the decay multipliers in effect. Recomputed fully on
// every query, never persisted. Total always equals the sum of PerArea.
type ScoreSnapshot struct {
	Date        time.Time               `json:"date"`
	Total       float64                 `json:"total"`
	PerArea     map[models.Area]float64 `json:"porArea"`
	Multipliers map[models.Area]float64 `json:"multiplicadores"`
}

// ComputeScore folds the events of one calendar day through the catalog
// and the default decay policy. Pure function of its inputs: dangling
// action references and unknown area keys degrade silently to zero
// contribution. Scores keep full float precision; callers round for
// display.
func ComputeScore(date time.Time, events []models.Event, actions []models.Action) ScoreSnapshot {
	return ComputeScoreWithPolicy(DefaultDecayPolicy, date, events, actions)
}

// ComputeScoreWithPolicy is ComputeScore with an explicit decay policy.
func ComputeScoreWithPolicy(policy DecayPolicy, date time.Time, events []models.Event, actions []models.Action) ScoreSnapshot {
	day := DateOnly(date)
	catalog := indexActions(actions)
	multipliers := policy.Multipliers(day, events, catalog)

	perArea := make(map[models.Area]float64, len(models.AllAreas))
	for _, area := range models.AllAreas {
		perArea[area] = 0
	}

	for _, ev := range events {
		if ev.Date.IsZero() || !SameDay(ev.Date, day) {
			continue
		}
		action, ok := catalog[ev.ActionID]
		if !ok {
			continue
		}

		for area, delta := range action.AreaDeltas {
			if _, known := perArea[area]; !known {
				continue
			}
			perArea[area] += delta * multipliers[area]
		}

		// Synergy bonus: +1 to every affected area, also decayed.
		if action.Synergy && len(action.AreaDeltas) >= 2 {
			for area := range action.AreaDeltas {
				if _, known := perArea[area]; !known {
					continue
				}
				perArea[area] += 1 * multipliers[area]
			}
		}

		// Financial penalty, planned vs unplanned. Unset penalties are zero.
		penalty := action.UnplannedPenalty
		if ev.PlannedExpense {
			penalty = action.PlannedPenalty
		}
		perArea[models.AreaFinance] += penalty * multipliers[models.AreaFinance]
	}

	total := 0.0
	for _, v := range perArea {
		total += v
	}

	return ScoreSnapshot{
		Date:        day,
		Total:       total,
		PerArea:     perArea,
		Multipliers: multipliers,
	}
}

// ScoreHistory computes a snapshot for each of the trailing days up to and
// including end, oldest first.
func ScoreHistory(end time.Time, days int, events []models.Event, actions []models.Action) []ScoreSnapshot {
	endDay := DateOnly(end)
	history := make([]ScoreSnapshot, 0, days+1)
	for i := days; i >= 0; i-- {
		history = append(history, ComputeScore(endDay.AddDate(0, 0, -i), events, actions))
	}
	return history
}
