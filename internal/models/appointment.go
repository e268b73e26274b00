package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment occupies [Date, Date + Service.DurationMinutes) on its
// veterinarian's calendar. Cancelled rows are kept for history.
type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	PetID string `gorm:"type:uuid;index;not null" json:"pet_id"`
	Pet   Pet    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pet"`

	// Services and vets are deactivated, never deleted, while history
	// references them.
	ServiceID string  `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	VeterinarianID string       `gorm:"type:uuid;index;not null" json:"veterinarian_id"`
	Veterinarian   Veterinarian `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"veterinarian"`

	Date  time.Time `gorm:"index;not null" json:"date"`
	Notes string    `gorm:"size:255" json:"notes"`

	Status      string     `gorm:"size:20;default:'scheduled'" json:"status"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
