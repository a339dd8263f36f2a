package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Action is a catalog template defining how much score an event of that
// kind grants per life area. Admin-edited; the engine treats the catalog
// as immutable during a single computation.
type Action struct {
	ID               uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string           `json:"name" gorm:"not null"`
	AreaDeltas       map[Area]float64 `json:"areas" gorm:"serializer:json"`
	Synergy          bool             `json:"synergy" gorm:"default:false"`
	PlannedPenalty   float64          `json:"plannedPenalty" gorm:"default:0"`
	UnplannedPenalty float64          `json:"unplannedPenalty" gorm:"default:0"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt   `json:"-" gorm:"index"`
}

func (a *Action) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type CreateActionRequest struct {
	Name             string           `json:"name" validate:"required"`
	AreaDeltas       map[Area]float64 `json:"areas"`
	Synergy          bool             `json:"synergy"`
	PlannedPenalty   float64          `json:"plannedPenalty"`
	UnplannedPenalty float64          `json:"unplannedPenalty"`
}

type UpdateActionRequest struct {
	Name             *string           `json:"name"`
	AreaDeltas       *map[Area]float64 `json:"areas"`
	Synergy          *bool             `json:"synergy"`
	PlannedPenalty   *float64          `json:"plannedPenalty"`
	UnplannedPenalty *float64          `json:"unplannedPenalty"`
}
