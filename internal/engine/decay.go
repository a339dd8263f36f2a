package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafael/betterlife-api/internal/models"
)

// DecayRule tightens the decay multiplier for a single area beyond the
// general staleness rule. A rule returns the cap it wants to apply and
// whether it applies at all; caps only ever lower the multiplier.
type DecayRule interface {
	Area() models.Area
	Cap(day time.Time, events []models.Event, catalog map[uuid.UUID]models.Action) (float64, bool)
}

// DecayPolicy computes per-area multipliers in (0, 1] for an evaluation
// date. The general rule caps an area at StaleMultiplier when its last
// positive contribution is StaleDays or more days old (or never happened);
// area-specific rules are combined on top by minimum.
type DecayPolicy struct {
	StaleDays       int
	StaleMultiplier float64
	Rules           []DecayRule
}

// DefaultDecayPolicy is the policy used by ComputeScore: 0.8 after a week
// of neglect, plus the spiritual practice rule for the Spirit area.
var DefaultDecayPolicy = DecayPolicy{
	StaleDays:       7,
	StaleMultiplier: 0.8,
	Rules: []DecayRule{
		SpiritPracticeRule{
			ServiceNames:  []string{"Worship Service", "Mass", "Church Service"},
			PrayerKeyword: "prayer",
		},
	},
}

// Multipliers returns a multiplier for every area in the fixed set.
func (p DecayPolicy) Multipliers(date time.Time, events []models.Event, catalog map[uuid.UUID]models.Action) map[models.Area]float64 {
	day := DateOnly(date)

	// Most recent day each area received a positive contribution.
	lastPositive := make(map[models.Area]time.Time)
	for _, ev := range events {
		if ev.Date.IsZero() {
			continue
		}
		action, ok := catalog[ev.ActionID]
		if !ok {
			continue
		}
		evDay := DateOnly(ev.Date)
		for area, delta := range action.AreaDeltas {
			if delta <= 0 {
				continue
			}
			if last, seen := lastPositive[area]; !seen || evDay.After(last) {
				lastPositive[area] = evDay
			}
		}
	}

	multipliers := make(map[models.Area]float64, len(models.AllAreas))
	for _, area := range models.AllAreas {
		multipliers[area] = 1.0
		last, seen := lastPositive[area]
		if !seen || DaysBetween(last, day) >= p.StaleDays {
			multipliers[area] = p.StaleMultiplier
		}
	}

	for _, rule := range p.Rules {
		area := rule.Area()
		current, ok := multipliers[area]
		if !ok {
			continue
		}
		if limit, applies := rule.Cap(day, events, catalog); applies && limit < current {
			multipliers[area] = limit
		}
	}

	return multipliers
}

// SpiritPracticeRule caps the Spirit multiplier when no service-attendance
// event appears in the trailing 30 days. Regular prayer softens the cap:
// three or more prayer events in the trailing week cap at 0.7 instead of
// 0.5.
type SpiritPracticeRule struct {
	ServiceNames  []string // action-name substrings that count as attending a service
	PrayerKeyword string   // case-insensitive action-name substring for prayer
}

func (SpiritPracticeRule) Area() models.Area { return models.AreaSpirit }

func (r SpiritPracticeRule) Cap(day time.Time, events []models.Event, catalog map[uuid.UUID]models.Action) (float64, bool) {
	attended := false
	prayers := 0

	for _, ev := range events {
		if ev.Date.IsZero() {
			continue
		}
		diff := DaysBetween(ev.Date, day)
		if diff < 0 || diff >= 30 {
			continue
		}
		action, ok := catalog[ev.ActionID]
		if !ok {
			continue
		}
		for _, name := range r.ServiceNames {
			if strings.Contains(action.Name, name) {
				attended = true
				break
			}
		}
		if diff < 7 && strings.Contains(strings.ToLower(action.Name), r.PrayerKeyword) {
			prayers++
		}
	}

	if attended {
		return 0, false
	}
	if prayers >= 3 {
		return 0.7, true
	}
	return 0.5, true
}
