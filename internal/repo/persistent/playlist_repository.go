package persistent

import (
	"moodwave/internal/entity"
	"moodwave/internal/model"

	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(playlist *entity.Playlist) error
	GetByID(id string) (*entity.Playlist, error)
	ListByUser(userID string, includePrivate bool) ([]*entity.Playlist, error)
	ListAll(limit, offset int) ([]*entity.Playlist, error)
	ListPublic(limit, offset int) ([]*entity.Playlist, error)
	ListPublicByUsers(userIDs []string) ([]*entity.Playlist, error)
	Update(playlist *entity.Playlist) error
	Delete(id string) error
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *entity.Playlist) error {
	playlistModel := ToPlaylistModel(playlist)
	if err := r.db.Create(playlistModel).Error; err != nil {
		return err
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

func (r *playlistRepository) GetByID(id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	if err := r.db.Where("id = ?", id).First(&playlistModel).Error; err != nil {
		return nil, err
	}
	return ToPlaylistEntity(&playlistModel), nil
}

func (r *playlistRepository) ListByUser(userID string, includePrivate bool) ([]*entity.Playlist, error) {
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if !includePrivate {
		query = query.Where("is_public = ?", true)
	}

	var playlistModels []model.PlaylistModel
	if err := query.Find(&playlistModels).Error; err != nil {
		return nil, err
	}
	return toPlaylistEntities(playlistModels), nil
}

func (r *playlistRepository) ListAll(limit, offset int) ([]*entity.Playlist, error) {
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var playlistModels []model.PlaylistModel
	if err := query.Find(&playlistModels).Error; err != nil {
		return nil, err
	}
	return toPlaylistEntities(playlistModels), nil
}

func (r *playlistRepository) ListPublic(limit, offset int) ([]*entity.Playlist, error) {
	query := r.db.Where("is_public = ?", true).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var playlistModels []model.PlaylistModel
	if err := query.Find(&playlistModels).Error; err != nil {
		return nil, err
	}
	return toPlaylistEntities(playlistModels), nil
}

func (r *playlistRepository) ListPublicByUsers(userIDs []string) ([]*entity.Playlist, error) {
	if len(userIDs) == 0 {
		return []*entity.Playlist{}, nil
	}

	var playlistModels []model.PlaylistModel
	err := r.db.Where("user_id IN ? AND is_public = ?", userIDs, true).
		Order("created_at DESC").
		Find(&playlistModels).Error
	if err != nil {
		return nil, err
	}
	return toPlaylistEntities(playlistModels), nil
}

func (r *playlistRepository) Update(playlist *entity.Playlist) error {
	return r.db.Save(ToPlaylistModel(playlist)).Error
}

func (r *playlistRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.PlaylistModel{}).Error
}

func toPlaylistEntities(models []model.PlaylistModel) []*entity.Playlist {
	playlists := make([]*entity.Playlist, len(models))
	for i := range models {
		playlists[i] = ToPlaylistEntity(&models[i])
	}
	return playlists
}
