package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is the base struct embedded by every platform entity: uuid primary
// key plus timestamps maintained by gorm.
type Model struct {
	ID        string    `gorm:"primaryKey;type:text;autoIncrement:false" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}
