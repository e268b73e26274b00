package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklySchedule is a veterinarian's recurring working window for one
// day of the week. DayOfWeek follows time.Weekday: 0=Sunday .. 6=Saturday.
type WeeklySchedule struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	VeterinarianID string `gorm:"type:uuid;index;not null" json:"veterinarian_id"`

	DayOfWeek int    `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"size:5" json:"start_time"` // "HH:MM"
	EndTime   string `gorm:"size:5" json:"end_time"`   // "HH:MM"

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ws *WeeklySchedule) BeforeCreate(tx *gorm.DB) error {
	if ws.ID == "" {
		ws.ID = uuid.NewString()
	}
	return nil
}
