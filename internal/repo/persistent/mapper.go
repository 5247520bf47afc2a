package persistent

import (
	"moodwave/internal/entity"
	"moodwave/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		UserID:         m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Password:       m.Password,
		Role:           entity.UserRole(m.Role),
		IsActive:       m.IsActive,
		AvatarURL:      m.AvatarURL,
		FavoriteGenres: m.FavoriteGenres,
		PreferredMoods: m.PreferredMoods,
		Following:      m.Following,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:             e.UserID,
		Name:           e.Name,
		Email:          e.Email,
		Password:       e.Password,
		Role:           string(e.Role),
		IsActive:       e.IsActive,
		AvatarURL:      e.AvatarURL,
		FavoriteGenres: e.FavoriteGenres,
		PreferredMoods: e.PreferredMoods,
		Following:      e.Following,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToArtistEntity(m *model.ArtistModel) *entity.Artist {
	if m == nil {
		return nil
	}

	return &entity.Artist{
		ArtistID:   m.ID,
		Name:       m.Name,
		Genre:      m.Genre,
		Origin:     m.Origin,
		FormedYear: m.FormedYear,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToArtistModel(e *entity.Artist) *model.ArtistModel {
	if e == nil {
		return nil
	}

	return &model.ArtistModel{
		ID:         e.ArtistID,
		Name:       e.Name,
		Genre:      e.Genre,
		Origin:     e.Origin,
		FormedYear: e.FormedYear,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToAlbumEntity(m *model.AlbumModel) *entity.Album {
	if m == nil {
		return nil
	}

	return &entity.Album{
		AlbumID:     m.ID,
		ArtistID:    m.ArtistID,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		Genre:       m.Genre,
		TrackCount:  m.TrackCount,
		DurationMin: m.DurationMin,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToAlbumModel(e *entity.Album) *model.AlbumModel {
	if e == nil {
		return nil
	}

	return &model.AlbumModel{
		ID:          e.AlbumID,
		ArtistID:    e.ArtistID,
		Title:       e.Title,
		ReleaseYear: e.ReleaseYear,
		Genre:       e.Genre,
		TrackCount:  e.TrackCount,
		DurationMin: e.DurationMin,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToTrackEntity(m *model.TrackModel) *entity.Track {
	if m == nil {
		return nil
	}

	return &entity.Track{
		TrackID:     m.ID,
		ArtistID:    m.ArtistID,
		AlbumID:     m.AlbumID,
		Title:       m.Title,
		DurationSec: m.DurationSec,
		Genre:       m.Genre,
		Mood:        m.Mood,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToTrackModel(e *entity.Track) *model.TrackModel {
	if e == nil {
		return nil
	}

	return &model.TrackModel{
		ID:          e.TrackID,
		ArtistID:    e.ArtistID,
		AlbumID:     e.AlbumID,
		Title:       e.Title,
		DurationSec: e.DurationSec,
		Genre:       e.Genre,
		Mood:        e.Mood,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToMoodEntity(m *model.MoodModel) *entity.Mood {
	if m == nil {
		return nil
	}

	return &entity.Mood{
		MoodID:      m.ID,
		Name:        m.Name,
		Description: m.Description,
		Keywords:    m.Keywords,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToMoodModel(e *entity.Mood) *model.MoodModel {
	if e == nil {
		return nil
	}

	return &model.MoodModel{
		ID:          e.MoodID,
		Name:        e.Name,
		Description: e.Description,
		Keywords:    e.Keywords,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToPlaylistEntity(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}

	return &entity.Playlist{
		PlaylistID:  m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		TrackIDs:    m.TrackIDs,
		IsPublic:    m.IsPublic,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPlaylistModel(e *entity.Playlist) *model.PlaylistModel {
	if e == nil {
		return nil
	}

	return &model.PlaylistModel{
		ID:          e.PlaylistID,
		UserID:      e.UserID,
		Name:        e.Name,
		Description: e.Description,
		TrackIDs:    e.TrackIDs,
		IsPublic:    e.IsPublic,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
