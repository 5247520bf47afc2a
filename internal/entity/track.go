package entity

import "time"

type Track struct {
	TrackID     string    `json:"trackId"`
	ArtistID    string    `json:"artistId"`
	AlbumID     string    `json:"albumId,omitempty"`
	Title       string    `json:"title"`
	DurationSec int       `json:"duration_sec"`
	Genre       string    `json:"genre"`
	Mood        []string  `json:"mood"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
