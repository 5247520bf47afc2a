package model

import (
	"time"

	"gorm.io/gorm"

	"moodwave/pkg/ident"
)

type ArtistModel struct {
	ID         string    `gorm:"type:varchar(32);primary_key" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Genre      string    `gorm:"type:varchar(100)" json:"genre"`
	Origin     string    `gorm:"type:varchar(100)" json:"origin"`
	FormedYear int       `json:"formed_year"`
	CreatedBy  string    `gorm:"type:varchar(32);index" json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ArtistModel) TableName() string {
	return "artists"
}

func (a *ArtistModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = ident.New("art")
	}
	return nil
}
