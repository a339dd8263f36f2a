package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a dated, logged occurrence of a user performing an action.
// ActionID may dangle after the referenced action is deleted; a dangling
// event contributes zero score but stays in history for objective
// evaluation.
type Event struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	ActionID       uuid.UUID      `json:"actionId" gorm:"type:uuid;index"`
	Date           time.Time      `json:"date" gorm:"index;not null"`
	Note           string         `json:"note"`
	PlannedExpense bool           `json:"plannedExpense" gorm:"default:false"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Event DTOs. Date travels as "YYYY-MM-DD"; handlers parse and validate it.
type CreateEventRequest struct {
	ActionID       uuid.UUID `json:"actionId" validate:"required"`
	Date           string    `json:"date" validate:"required"`
	Note           string    `json:"note"`
	PlannedExpense bool      `json:"plannedExpense"`
}

type UpdateEventRequest struct {
	ActionID       *uuid.UUID `json:"actionId"`
	Date           *string    `json:"date"`
	Note           *string    `json:"note"`
	PlannedExpense *bool      `json:"plannedExpense"`
}
