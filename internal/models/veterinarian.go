package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Veterinarian struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	FullName  string `gorm:"size:100;not null" json:"full_name"`
	Specialty string `gorm:"size:100" json:"specialty"`

	// Global on/off switch; vets flipped off never appear in availability.
	IsAvailable bool `gorm:"default:true" json:"is_available"`

	Schedules []WeeklySchedule `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"schedules,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Veterinarian) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
