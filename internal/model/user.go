package model

import (
	"time"

	"gorm.io/gorm"

	"moodwave/pkg/ident"
)

type UserModel struct {
	ID             string    `gorm:"type:varchar(32);primary_key" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	Role           string    `gorm:"type:varchar(20);default:'user'" json:"role"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	AvatarURL      string    `gorm:"type:varchar(500)" json:"avatar_url"`
	FavoriteGenres []string  `gorm:"serializer:json;type:jsonb" json:"favorite_genres"`
	PreferredMoods []string  `gorm:"serializer:json;type:jsonb" json:"preferred_moods"`
	Following      []string  `gorm:"serializer:json;type:jsonb" json:"following"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = ident.New("user")
	}
	return nil
}
