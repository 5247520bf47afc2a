package model

import (
	"time"

	"gorm.io/gorm"

	"moodwave/pkg/ident"
)

type TrackModel struct {
	ID          string    `gorm:"type:varchar(32);primary_key" json:"id"`
	ArtistID    string    `gorm:"type:varchar(32);not null;index" json:"artist_id"`
	AlbumID     string    `gorm:"type:varchar(32);index" json:"album_id"`
	Title       string    `gorm:"type:varchar(255);not null;index" json:"title"`
	DurationSec int       `gorm:"default:0" json:"duration_sec"`
	Genre       string    `gorm:"type:varchar(100);index" json:"genre"`
	Mood        []string  `gorm:"serializer:json;type:jsonb" json:"mood"`
	CreatedBy   string    `gorm:"type:varchar(32);index" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (TrackModel) TableName() string {
	return "tracks"
}

func (t *TrackModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = ident.New("trk")
	}
	return nil
}
