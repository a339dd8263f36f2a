package engine

import (
	"math"

	"github.com/rafael/betterlife-api/internal/models"
)

// TrophyProgress summarizes a trophy's objectives. Objectives are in the
// trophy's declared order so the client can bind them to its checklist.
type TrophyProgress struct {
	Objectives []ObjectiveProgress `json:"objetivos"`
	Complete   bool                `json:"completo"`
	Percent    int                 `json:"percent"`
}

// EvaluateTrophy applies EvaluateObjective to each objective of a trophy.
// A trophy with no objectives is never complete and sits at 0%.
func EvaluateTrophy(trophy models.Trophy, events []models.Event, actions []models.Action) TrophyProgress {
	objectives := make([]ObjectiveProgress, 0, len(trophy.Objectives))
	done := 0
	for _, obj := range trophy.Objectives {
		p := EvaluateObjective(obj, events, actions)
		if p.Complete {
			done++
		}
		objectives = append(objectives, p)
	}

	complete := len(objectives) > 0 && done == len(objectives)
	percent := 0
	if len(objectives) > 0 {
		percent = int(math.Round(100 * float64(done) / float64(len(objectives))))
	}

	return TrophyProgress{
		Objectives: objectives,
		Complete:   complete,
		Percent:    percent,
	}
}
