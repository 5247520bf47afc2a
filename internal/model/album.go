package model

import (
	"time"

	"gorm.io/gorm"

	"moodwave/pkg/ident"
)

type AlbumModel struct {
	ID          string    `gorm:"type:varchar(32);primary_key" json:"id"`
	ArtistID    string    `gorm:"type:varchar(32);not null;index" json:"artist_id"`
	Title       string    `gorm:"type:varchar(255);not null;index" json:"title"`
	ReleaseYear int       `json:"release_year"`
	Genre       string    `gorm:"type:varchar(100)" json:"genre"`
	TrackCount  int       `gorm:"default:0" json:"track_count"`
	DurationMin int       `gorm:"default:0" json:"duration_min"`
	CreatedBy   string    `gorm:"type:varchar(32);index" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (AlbumModel) TableName() string {
	return "albums"
}

func (a *AlbumModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = ident.New("alb")
	}
	return nil
}
