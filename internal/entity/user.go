package entity

import "time"

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

func ValidRole(r string) bool {
	switch UserRole(r) {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	Role           UserRole  `json:"role"`
	IsActive       bool      `json:"isActive"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	FavoriteGenres []string  `json:"favoriteGenres"`
	PreferredMoods []string  `json:"preferredMoods"`
	Following      []string  `json:"following"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
