package persistent

import (
	"encoding/json"

	"moodwave/internal/entity"
	"moodwave/internal/model"

	"gorm.io/gorm"
)

type TrackRepository interface {
	Create(track *entity.Track) error
	GetByID(id string) (*entity.Track, error)
	GetByIDs(ids []string) ([]*entity.Track, error)
	GetDuplicate(title, artistID, albumID string) (*entity.Track, error)
	List(artistID, albumID, genre, mood string, limit, offset int) ([]*entity.Track, error)
	Update(track *entity.Track) error
	Delete(id string) error
	RemoveMoodFromAll(name string) error
}

type trackRepository struct {
	db *gorm.DB
}

func NewTrackRepository(db *gorm.DB) TrackRepository {
	return &trackRepository{db: db}
}

// moodPattern builds the jsonb containment argument for a single mood name.
func moodPattern(name string) string {
	pattern, _ := json.Marshal([]string{name})
	return string(pattern)
}

func (r *trackRepository) Create(track *entity.Track) error {
	trackModel := ToTrackModel(track)
	if err := r.db.Create(trackModel).Error; err != nil {
		return err
	}
	*track = *ToTrackEntity(trackModel)
	return nil
}

func (r *trackRepository) GetByID(id string) (*entity.Track, error) {
	var trackModel model.TrackModel
	if err := r.db.Where("id = ?", id).First(&trackModel).Error; err != nil {
		return nil, err
	}
	return ToTrackEntity(&trackModel), nil
}

func (r *trackRepository) GetByIDs(ids []string) ([]*entity.Track, error) {
	if len(ids) == 0 {
		return []*entity.Track{}, nil
	}

	var trackModels []model.TrackModel
	if err := r.db.Where("id IN ?", ids).Find(&trackModels).Error; err != nil {
		return nil, err
	}

	tracks := make([]*entity.Track, len(trackModels))
	for i := range trackModels {
		tracks[i] = ToTrackEntity(&trackModels[i])
	}
	return tracks, nil
}

// GetDuplicate looks up a track with the same title (case-insensitive) on the
// same artist and album. An empty albumID matches tracks without an album.
func (r *trackRepository) GetDuplicate(title, artistID, albumID string) (*entity.Track, error) {
	var trackModel model.TrackModel
	query := r.db.Where("LOWER(title) = LOWER(?) AND artist_id = ?", title, artistID)
	if albumID != "" {
		query = query.Where("album_id = ?", albumID)
	} else {
		query = query.Where("album_id = ''")
	}
	if err := query.First(&trackModel).Error; err != nil {
		return nil, err
	}
	return ToTrackEntity(&trackModel), nil
}

func (r *trackRepository) List(artistID, albumID, genre, mood string, limit, offset int) ([]*entity.Track, error) {
	var trackModels []model.TrackModel
	query := r.db.Order("created_at DESC")
	if artistID != "" {
		query = query.Where("artist_id = ?", artistID)
	}
	if albumID != "" {
		query = query.Where("album_id = ?", albumID)
	}
	if genre != "" {
		query = query.Where("LOWER(genre) = LOWER(?)", genre)
	}
	if mood != "" {
		query = query.Where("mood @> ?", moodPattern(mood))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&trackModels).Error; err != nil {
		return nil, err
	}

	tracks := make([]*entity.Track, len(trackModels))
	for i := range trackModels {
		tracks[i] = ToTrackEntity(&trackModels[i])
	}
	return tracks, nil
}

func (r *trackRepository) Update(track *entity.Track) error {
	return r.db.Save(ToTrackModel(track)).Error
}

func (r *trackRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.TrackModel{}).Error
}

// RemoveMoodFromAll strips the given mood name from every track that carries
// it. Used when a mood is deleted from the vocabulary.
func (r *trackRepository) RemoveMoodFromAll(name string) error {
	var trackModels []model.TrackModel
	if err := r.db.Where("mood @> ?", moodPattern(name)).Find(&trackModels).Error; err != nil {
		return err
	}

	for i := range trackModels {
		kept := make([]string, 0, len(trackModels[i].Mood))
		for _, m := range trackModels[i].Mood {
			if m != name {
				kept = append(kept, m)
			}
		}
		err := r.db.Model(&trackModels[i]).Update("mood", kept).Error
		if err != nil {
			return err
		}
	}
	return nil
}
