package engine

import (
	"github.com/google/uuid"

	"github.com/rafael/betterlife-api/internal/models"
)

// indexActions builds an id lookup for the catalog. Events referencing an
// id outside the map are dangling and contribute nothing to score.
func indexActions(actions []models.Action) map[uuid.UUID]models.Action {
	catalog := make(map[uuid.UUID]models.Action, len(actions))
	for _, a := range actions {
		catalog[a.ID] = a
	}
	return catalog
}

// findActionByName resolves an action by its name field, returning the
// first catalog match. Quantity objectives match by name so that trophy
// definitions survive catalog re-seeds where ids change.
func findActionByName(actions []models.Action, name string) (models.Action, bool) {
	for _, a := range actions {
		if a.Name == name {
			return a, true
		}
	}
	return models.Action{}, false
}
