package engine

import (
	"testing"

	"github.com/rafael/betterlife-api/internal/models"
)

func TestEvaluateTrophyAllComplete(t *testing.T) {
	run := newAction("Run 5k", map[models.Area]float64{models.AreaHealth: 10})
	actions := []models.Action{run}
	trophy := models.Trophy{
		Name: "Runner",
		Objectives: []models.Objective{
			{Type: models.ObjectiveQuantity, EventName: "Run 5k", Quantity: 2},
			{Type: models.ObjectiveAreaPoints, Area: models.AreaHealth, RequiredPoints: 20},
		},
	}

	events := []models.Event{
		eventOn(run, day(t, "2024-06-01")),
		eventOn(run, day(t, "2024-06-02")),
	}

	got := EvaluateTrophy(trophy, events, actions)
	if !got.Complete || got.Percent != 100 {
		t.Errorf("got complete=%v percent=%d, want true 100", got.Complete, got.Percent)
	}
	if len(got.Objectives) != 2 {
		t.Fatalf("len(Objectives) = %d, want 2", len(got.Objectives))
	}
}

func TestEvaluateTrophyPartial(t *testing.T) {
	run := newAction("Run 5k", map[models.Area]float64{models.AreaHealth: 10})
	actions := []models.Action{run}
	trophy := models.Trophy{
		Name: "Triathlete",
		Objectives: []models.Objective{
			{Type: models.ObjectiveQuantity, EventName: "Run 5k", Quantity: 1},
			{Type: models.ObjectiveQuantity, EventName: "Swim 1k", Quantity: 1},
			{Type: models.ObjectiveQuantity, EventName: "Ride 20k", Quantity: 1},
		},
	}

	events := []models.Event{eventOn(run, day(t, "2024-06-01"))}

	got := EvaluateTrophy(trophy, events, actions)
	if got.Complete {
		t.Errorf("trophy complete with unmet objectives")
	}
	if got.Percent != 33 {
		t.Errorf("percent = %d, want 33", got.Percent)
	}
	// Output order follows the declared objective order.
	if !got.Objectives[0].Complete || got.Objectives[1].Complete || got.Objectives[2].Complete {
		t.Errorf("objective order not preserved: %+v", got.Objectives)
	}
}

func TestEvaluateTrophyNoObjectives(t *testing.T) {
	got := EvaluateTrophy(models.Trophy{Name: "Empty"}, nil, nil)
	if got.Complete {
		t.Errorf("trophy with no objectives must not be complete")
	}
	if got.Percent != 0 {
		t.Errorf("percent = %d, want 0", got.Percent)
	}
}
