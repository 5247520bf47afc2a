package persistent

import (
	"moodwave/internal/entity"
	"moodwave/internal/model"

	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(artist *entity.Artist) error
	GetByID(id string) (*entity.Artist, error)
	GetByName(name string) (*entity.Artist, error)
	List(genre string, limit, offset int) ([]*entity.Artist, error)
	Update(artist *entity.Artist) error
	Delete(id string) error
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(artist *entity.Artist) error {
	artistModel := ToArtistModel(artist)
	if err := r.db.Create(artistModel).Error; err != nil {
		return err
	}
	*artist = *ToArtistEntity(artistModel)
	return nil
}

func (r *artistRepository) GetByID(id string) (*entity.Artist, error) {
	var artistModel model.ArtistModel
	if err := r.db.Where("id = ?", id).First(&artistModel).Error; err != nil {
		return nil, err
	}
	return ToArtistEntity(&artistModel), nil
}

// GetByName matches case-insensitively, used for duplicate detection.
func (r *artistRepository) GetByName(name string) (*entity.Artist, error) {
	var artistModel model.ArtistModel
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&artistModel).Error; err != nil {
		return nil, err
	}
	return ToArtistEntity(&artistModel), nil
}

func (r *artistRepository) List(genre string, limit, offset int) ([]*entity.Artist, error) {
	var artistModels []model.ArtistModel
	query := r.db.Order("created_at DESC")
	if genre != "" {
		query = query.Where("LOWER(genre) = LOWER(?)", genre)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&artistModels).Error; err != nil {
		return nil, err
	}

	artists := make([]*entity.Artist, len(artistModels))
	for i := range artistModels {
		artists[i] = ToArtistEntity(&artistModels[i])
	}
	return artists, nil
}

func (r *artistRepository) Update(artist *entity.Artist) error {
	return r.db.Save(ToArtistModel(artist)).Error
}

func (r *artistRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.ArtistModel{}).Error
}
