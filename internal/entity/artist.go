package entity

import "time"

type Artist struct {
	ArtistID   string    `json:"artistId"`
	Name       string    `json:"name"`
	Genre      string    `json:"genre"`
	Origin     string    `json:"origin"`
	FormedYear int       `json:"formedYear,omitempty"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
