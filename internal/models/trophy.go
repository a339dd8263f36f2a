package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ObjectiveType discriminates the objective payload. Unknown values are
// tolerated at evaluation time and produce a non-completing placeholder.
type ObjectiveType string

const (
	ObjectiveQuantity   ObjectiveType = "quantity_of_event"
	ObjectiveStreak     ObjectiveType = "streak_without_negative"
	ObjectiveAreaPoints ObjectiveType = "area_points"
)

// IntervalUnit sizes an objective's optional rolling window.
type IntervalUnit string

const (
	IntervalDays   IntervalUnit = "days"
	IntervalWeeks  IntervalUnit = "weeks"
	IntervalMonths IntervalUnit = "months"
	IntervalYears  IntervalUnit = "years"
)

// Objective is one checkable condition inside a trophy or goal, stored as
// a tagged variant: Type selects which of the payload fields apply.
//
// Quantity objectives match the target action by NAME, not id. Renaming an
// action therefore detaches existing trophy definitions that reference the
// old name. This mirrors how trophies were always defined and is kept as
// documented behavior.
type Objective struct {
	Type ObjectiveType `json:"type"`

	// quantity_of_event
	EventName string `json:"eventName,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`

	// streak_without_negative / area_points
	Area           Area    `json:"area,omitempty"`
	RequiredDays   int     `json:"requiredDays,omitempty"`
	RequiredPoints float64 `json:"requiredPoints,omitempty"`

	// Optional rolling window, anchored at the most recent event in history.
	HasDeadline    bool         `json:"hasDeadline,omitempty"`
	IntervalLength int          `json:"intervalLength,omitempty"`
	IntervalUnit   IntervalUnit `json:"intervalUnit,omitempty"`
}

// Target returns the objective's declared goal value, falling back to 1
// so progress bars never divide by zero.
func (o Objective) Target() float64 {
	switch o.Type {
	case ObjectiveQuantity:
		if o.Quantity > 0 {
			return float64(o.Quantity)
		}
	case ObjectiveStreak:
		if o.RequiredDays > 0 {
			return float64(o.RequiredDays)
		}
	case ObjectiveAreaPoints:
		if o.RequiredPoints > 0 {
			return o.RequiredPoints
		}
	}
	return 1
}

// RewardType tags a reward attached to a trophy or goal.
type RewardType string

const (
	RewardGrantTrophy    RewardType = "grant_trophy"
	RewardUnlockTrophy   RewardType = "unlock_trophy"
	RewardAreaMultiplier RewardType = "area_multiplier"
	RewardExperience     RewardType = "xp"
)

// Reward is declarative metadata on a trophy. Experience rewards are
// applied when the trophy is awarded; the other kinds are surfaced to the
// client as-is.
type Reward struct {
	Type       RewardType `json:"type"`
	TrophyName string     `json:"trophyName,omitempty"`
	Area       Area       `json:"area,omitempty"`
	Multiplier float64    `json:"multiplier,omitempty"`
	Experience int        `json:"experience,omitempty"`
}

const (
	TrophyKindTrophy = "trophy"
	TrophyKindGoal   = "goal"
)

// Trophy is a named achievement composed of ordered objectives and
// optional rewards. Completion is always derived from the objectives,
// never stored.
type Trophy struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Kind        string         `json:"kind" gorm:"not null;default:'trophy'"` // trophy, goal
	Objectives  []Objective    `json:"objectives" gorm:"serializer:json"`
	Rewards     []Reward       `json:"rewards" gorm:"serializer:json"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (t *Trophy) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// UserTrophy records that a user has earned a trophy. One row per pair.
type UserTrophy struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex:uq_user_trophy;not null"`
	TrophyID uuid.UUID `json:"trophyId" gorm:"type:uuid;uniqueIndex:uq_user_trophy;not null"`
	EarnedAt time.Time `json:"earnedAt"`

	Trophy Trophy `json:"trophy,omitempty" gorm:"foreignKey:TrophyID"`
}

func (ut *UserTrophy) BeforeCreate(tx *gorm.DB) error {
	if ut.ID == uuid.Nil {
		ut.ID = uuid.New()
	}
	if ut.EarnedAt.IsZero() {
		ut.EarnedAt = time.Now()
	}
	return nil
}

type CreateTrophyRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	Kind        string      `json:"kind"`
	Objectives  []Objective `json:"objectives"`
	Rewards     []Reward    `json:"rewards"`
}

type UpdateTrophyRequest struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Kind        *string      `json:"kind"`
	Objectives  *[]Objective `json:"objectives"`
	Rewards     *[]Reward    `json:"rewards"`
}
