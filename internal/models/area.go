package models

// Area is one of the fixed life dimensions that accumulate score
// independently. Keys outside AllAreas are inert everywhere: they never
// contribute points and never complete an area-scoped objective.
type Area string

const (
	AreaHealth        Area = "Health"
	AreaRelationships Area = "Relationships"
	AreaCareer        Area = "Career"
	AreaHobbies       Area = "Hobbies"
	AreaSpirit        Area = "Spirit"
	AreaMind          Area = "Mind"
	AreaFinance       Area = "Finance"
)

// AllAreas is the canonical area list, defined once and consumed by the
// decay policy, the score engine and the progress aggregator.
var AllAreas = []Area{
	AreaHealth,
	AreaRelationships,
	AreaCareer,
	AreaHobbies,
	AreaSpirit,
	AreaMind,
	AreaFinance,
}

// ValidArea reports whether a belongs to the fixed area set.
func ValidArea(a Area) bool {
	for _, known := range AllAreas {
		if a == known {
			return true
		}
	}
	return false
}
