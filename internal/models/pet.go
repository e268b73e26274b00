package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pet struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	OwnerID string `gorm:"type:uuid;index;not null" json:"owner_id"`
	Owner   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name    string   `gorm:"size:100;not null" json:"name"`
	Species string   `gorm:"size:50;not null" json:"species"`
	Breed   string   `gorm:"size:100" json:"breed,omitempty"`
	Age     *int     `json:"age,omitempty"`
	Weight  *float64 `json:"weight,omitempty"`

	ImageURL string `gorm:"size:255" json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
