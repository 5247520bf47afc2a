package entity

import "time"

type Album struct {
	AlbumID     string    `json:"albumId"`
	ArtistID    string    `json:"artistId"`
	Title       string    `json:"title"`
	ReleaseYear int       `json:"releaseYear,omitempty"`
	Genre       string    `json:"genre"`
	TrackCount  int       `json:"trackCount"`
	DurationMin int       `json:"duration_min"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
