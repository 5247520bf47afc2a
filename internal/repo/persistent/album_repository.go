package persistent

import (
	"moodwave/internal/entity"
	"moodwave/internal/model"

	"gorm.io/gorm"
)

type AlbumRepository interface {
	Create(album *entity.Album) error
	GetByID(id string) (*entity.Album, error)
	GetByTitleAndArtist(title, artistID string) (*entity.Album, error)
	List(artistID, genre string, limit, offset int) ([]*entity.Album, error)
	Update(album *entity.Album) error
	Delete(id string) error
}

type albumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &albumRepository{db: db}
}

func (r *albumRepository) Create(album *entity.Album) error {
	albumModel := ToAlbumModel(album)
	if err := r.db.Create(albumModel).Error; err != nil {
		return err
	}
	*album = *ToAlbumEntity(albumModel)
	return nil
}

func (r *albumRepository) GetByID(id string) (*entity.Album, error) {
	var albumModel model.AlbumModel
	if err := r.db.Where("id = ?", id).First(&albumModel).Error; err != nil {
		return nil, err
	}
	return ToAlbumEntity(&albumModel), nil
}

// GetByTitleAndArtist matches the title case-insensitively within one
// artist's discography, used for duplicate detection.
func (r *albumRepository) GetByTitleAndArtist(title, artistID string) (*entity.Album, error) {
	var albumModel model.AlbumModel
	err := r.db.Where("LOWER(title) = LOWER(?) AND artist_id = ?", title, artistID).First(&albumModel).Error
	if err != nil {
		return nil, err
	}
	return ToAlbumEntity(&albumModel), nil
}

func (r *albumRepository) List(artistID, genre string, limit, offset int) ([]*entity.Album, error) {
	var albumModels []model.AlbumModel
	query := r.db.Order("created_at DESC")
	if artistID != "" {
		query = query.Where("artist_id = ?", artistID)
	}
	if genre != "" {
		query = query.Where("LOWER(genre) = LOWER(?)", genre)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&albumModels).Error; err != nil {
		return nil, err
	}

	albums := make([]*entity.Album, len(albumModels))
	for i := range albumModels {
		albums[i] = ToAlbumEntity(&albumModels[i])
	}
	return albums, nil
}

func (r *albumRepository) Update(album *entity.Album) error {
	return r.db.Save(ToAlbumModel(album)).Error
}

func (r *albumRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.AlbumModel{}).Error
}
