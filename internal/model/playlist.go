package model

import (
	"time"

	"gorm.io/gorm"

	"moodwave/pkg/ident"
)

type PlaylistModel struct {
	ID          string    `gorm:"type:varchar(32);primary_key" json:"id"`
	UserID      string    `gorm:"type:varchar(32);not null;index" json:"user_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	TrackIDs    []string  `gorm:"serializer:json;type:jsonb" json:"track_ids"`
	IsPublic    bool      `gorm:"default:true" json:"is_public"`
	CreatedBy   string    `gorm:"type:varchar(32);index" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (PlaylistModel) TableName() string {
	return "playlists"
}

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = ident.New("pl")
	}
	return nil
}
