package model

import (
	"time"

	"gorm.io/gorm"

	"moodwave/pkg/ident"
)

type MoodModel struct {
	ID          string    `gorm:"type:varchar(32);primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Keywords    []string  `gorm:"serializer:json;type:jsonb" json:"keywords"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (MoodModel) TableName() string {
	return "moods"
}

func (m *MoodModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = ident.New("mood")
	}
	return nil
}
