package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	Password     string         `json:"-"`
	Name         string         `json:"name"`
	Level        int            `json:"level" gorm:"default:1"`
	Experience   int            `json:"experience" gorm:"default:0"`
	NextLevelExp int            `json:"nextLevelExp" gorm:"default:1000"`
	FCMToken     string         `json:"-" gorm:"column:fcm_token"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// GainExperience adds xp and advances the level while the threshold is
// met. The threshold grows 1.2x per level. Returns whether at least one
// level was gained.
func (u *User) GainExperience(xp int) bool {
	u.Experience += xp
	leveled := false
	for u.NextLevelExp > 0 && u.Experience >= u.NextLevelExp {
		u.Level++
		u.Experience -= u.NextLevelExp
		u.NextLevelExp = int(float64(u.NextLevelExp) * 1.2)
		leveled = true
	}
	return leveled
}

// Auth DTOs
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type DeviceTokenRequest struct {
	Token string `json:"token" validate:"required"`
}
