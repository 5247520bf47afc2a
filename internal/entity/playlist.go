package entity

import "time"

type Playlist struct {
	PlaylistID  string    `json:"playlistId"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TrackIDs    []string  `json:"trackIds"`
	IsPublic    bool      `json:"isPublic"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
