package engine

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/rafael/betterlife-api/internal/models"
)

func checkAdditivity(t *testing.T, snap ScoreSnapshot) {
	t.Helper()
	sum := 0.0
	for _, v := range snap.PerArea {
		sum += v
	}
	if math.Abs(snap.Total-sum) > 1e-9 {
		t.Errorf("Total = %v, sum(PerArea) = %v", snap.Total, sum)
	}
}

func TestComputeScoreSingleAction(t *testing.T) {
	run := newAction("Run 5k", map[models.Area]float64{models.AreaHealth: 10})
	today := day(t, "2024-06-15")
	events := []models.Event{eventOn(run, today)}

	snap := ComputeScore(today, events, []models.Action{run})

	if snap.Total != 10 {
		t.Errorf("Total = %v, want 10", snap.Total)
	}
	if snap.PerArea[models.AreaHealth] != 10 {
		t.Errorf("Health = %v, want 10", snap.PerArea[models.AreaHealth])
	}
	if snap.Multipliers[models.AreaHealth] != 1.0 {
		t.Errorf("Health multiplier = %v, want 1.0", snap.Multipliers[models.AreaHealth])
	}
	for _, area := range models.AllAreas {
		if area == models.AreaHealth {
			continue
		}
		if snap.PerArea[area] != 0 {
			t.Errorf("area %s = %v, want 0", area, snap.PerArea[area])
		}
	}
	checkAdditivity(t, snap)
}

func TestComputeScoreSynergy(t *testing.T) {
	dinner := newAction("Dinner with family", map[models.Area]float64{
		models.AreaRelationships: 5,
		models.AreaHobbies:       3,
	})
	dinner.Synergy = true
	today := day(t, "2024-06-15")
	events := []models.Event{eventOn(dinner, today)}

	snap := ComputeScore(today, events, []models.Action{dinner})

	if snap.PerArea[models.AreaRelationships] != 6 {
		t.Errorf("Relationships = %v, want 6 (5 + synergy)", snap.PerArea[models.AreaRelationships])
	}
	if snap.PerArea[models.AreaHobbies] != 4 {
		t.Errorf("Hobbies = %v, want 4 (3 + synergy)", snap.PerArea[models.AreaHobbies])
	}
	if snap.Total != 10 {
		t.Errorf("Total = %v, want 10", snap.Total)
	}
	checkAdditivity(t, snap)
}

func TestSynergyNeedsTwoAreas(t *testing.T) {
	solo := newAction("Read a book", map[models.Area]float64{models.AreaMind: 4})
	solo.Synergy = true
	today := day(t, "2024-06-15")

	snap := ComputeScore(today, []models.Event{eventOn(solo, today)}, []models.Action{solo})

	if snap.PerArea[models.AreaMind] != 4 {
		t.Errorf("Mind = %v, want 4 (no bonus for a single area)", snap.PerArea[models.AreaMind])
	}
}

func TestComputeScoreNoEvents(t *testing.T) {
	run := newAction("Run 5k", map[models.Area]float64{models.AreaHealth: 10})
	today := day(t, "2024-06-15")

	snap := ComputeScore(today, nil, []models.Action{run})

	if snap.Total != 0 {
		t.Errorf("Total = %v, want 0", snap.Total)
	}
	for _, area := range models.AllAreas {
		if snap.PerArea[area] != 0 {
			t.Errorf("area %s = %v, want 0", area, snap.PerArea[area])
		}
	}
}

func TestComputeScoreDanglingAction(t *testing.T) {
	run := newAction("Run 5k", map[models.Area]float64{models.AreaHealth: 10})
	today := day(t, "2024-06-15")
	orphan := models.Event{ID: uuid.New(), ActionID: uuid.New(), Date: today}

	snap := ComputeScore(today, []models.Event{orphan, eventOn(run, today)}, []models.Action{run})

	if snap.Total != 10 {
		t.Errorf("Total = %v, want 10 (orphan contributes nothing)", snap.Total)
	}
}

func TestComputeScoreOtherDayExcluded(t *testing.T) {
	run := newAction("Run 5k", map[models.Area]float64{models.AreaHealth: 10})
	events := []models.Event{eventOn(run, day(t, "2024-06-14"))}

	snap := ComputeScore(day(t, "2024-06-15"), events, []models.Action{run})

	if snap.PerArea[models.AreaHealth] != 0 {
		t.Errorf("Health = %v, want 0 (yesterday's event must not score today)", snap.PerArea[models.AreaHealth])
	}
}

func TestComputeScoreDecayApplied(t *testing.T) {
	run := newAction("Run 5k", map[models.Area]float64{models.AreaHealth: 10})
	junk := newAction("Junk food", map[models.Area]float64{models.AreaHealth: -5})
	actions := []models.Action{run, junk}
	today := day(t, "2024-06-15")

	// Last positive Health contribution 10 days ago, a negative event today.
	events := []models.Event{
		eventOn(run, day(t, "2024-06-05")),
		eventOn(junk, today),
	}

	snap := ComputeScore(today, events, actions)

	if snap.Multipliers[models.AreaHealth] != 0.8 {
		t.Fatalf("Health multiplier = %v, want 0.8", snap.Multipliers[models.AreaHealth])
	}
	if snap.PerArea[models.AreaHealth] != -4 {
		t.Errorf("Health = %v, want -4 (-5 * 0.8)", snap.PerArea[models.AreaHealth])
	}
}

func TestComputeScoreFinancePenalty(t *testing.T) {
	spend := newAction("Shopping", map[models.Area]float64{models.AreaHobbies: 2})
	spend.PlannedPenalty = -2
	spend.UnplannedPenalty = -8
	today := day(t, "2024-06-15")

	planned := eventOn(spend, today)
	planned.PlannedExpense = true
	snap := ComputeScore(today, []models.Event{planned}, []models.Action{spend})
	// Finance has no positive history, so its multiplier is 0.8.
	if got := snap.PerArea[models.AreaFinance]; math.Abs(got-(-1.6)) > 1e-9 {
		t.Errorf("planned: Finance = %v, want -1.6", got)
	}

	unplanned := eventOn(spend, today)
	snap = ComputeScore(today, []models.Event{unplanned}, []models.Action{spend})
	if got := snap.PerArea[models.AreaFinance]; math.Abs(got-(-6.4)) > 1e-9 {
		t.Errorf("unplanned: Finance = %v, want -6.4", got)
	}
	checkAdditivity(t, snap)
}

func TestComputeScoreUnknownAreaInert(t *testing.T) {
	odd := newAction("Mystery", map[models.Area]float64{
		"Astral":          50,
		models.AreaHealth: 3,
	})
	today := day(t, "2024-06-15")

	snap := ComputeScore(today, []models.Event{eventOn(odd, today)}, []models.Action{odd})

	if _, ok := snap.PerArea["Astral"]; ok {
		t.Errorf("unknown area leaked into PerArea")
	}
	if snap.PerArea[models.AreaHealth] != 3 {
		t.Errorf("Health = %v, want 3", snap.PerArea[models.AreaHealth])
	}
	checkAdditivity(t, snap)
}

func TestComputeScoreMalformedDateExcluded(t *testing.T) {
	run := newAction("Run 5k", map[models.Area]float64{models.AreaHealth: 10})
	undated := models.Event{ID: uuid.New(), ActionID: run.ID}

	snap := ComputeScore(day(t, "2024-06-15"), []models.Event{undated}, []models.Action{run})

	if snap.Total != 0 {
		t.Errorf("Total = %v, want 0 (undated events are unorderable)", snap.Total)
	}
}

func TestScoreHistory(t *testing.T) {
	run := newAction("Run 5k", map[models.Area]float64{models.AreaHealth: 10})
	events := []models.Event{eventOn(run, day(t, "2024-06-14"))}

	history := ScoreHistory(day(t, "2024-06-15"), 2, events, []models.Action{run})

	if len(history) != 3 {
		t.Fatalf("len(history) = %d, want 3", len(history))
	}
	if !history[0].Date.Equal(day(t, "2024-06-13")) {
		t.Errorf("history starts at %v, want 2024-06-13", history[0].Date)
	}
	if history[1].Total != 10 {
		t.Errorf("2024-06-14 total = %v, want 10", history[1].Total)
	}
	if history[2].Total != 0 {
		t.Errorf("2024-06-15 total = %v, want 0", history[2].Total)
	}
}
