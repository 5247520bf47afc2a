package entity

// Recommendation is a track enriched with its mood-overlap score and a
// human-readable reason.
type Recommendation struct {
	Track
	SharedMoods int    `json:"sharedMoods"`
	Reason      string `json:"reason"`
}

// GenreCount is one bucket of the genre statistics aggregation.
type GenreCount struct {
	Genre string `json:"_id"`
	Count int    `json:"count"`
}

// TrackLikeCount pairs a track with how many users like it.
type TrackLikeCount struct {
	TrackID   string `json:"trackId"`
	LikeCount int    `json:"likeCount"`
}
