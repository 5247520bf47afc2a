package persistent

import (
	"moodwave/internal/entity"
	"moodwave/internal/model"

	"gorm.io/gorm"
)

type MoodRepository interface {
	Create(mood *entity.Mood) error
	GetByID(id string) (*entity.Mood, error)
	GetByName(name string) (*entity.Mood, error)
	List() ([]*entity.Mood, error)
	Update(mood *entity.Mood) error
	Delete(id string) error
}

type moodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) Create(mood *entity.Mood) error {
	moodModel := ToMoodModel(mood)
	if err := r.db.Create(moodModel).Error; err != nil {
		return err
	}
	*mood = *ToMoodEntity(moodModel)
	return nil
}

func (r *moodRepository) GetByID(id string) (*entity.Mood, error) {
	var moodModel model.MoodModel
	if err := r.db.Where("id = ?", id).First(&moodModel).Error; err != nil {
		return nil, err
	}
	return ToMoodEntity(&moodModel), nil
}

func (r *moodRepository) GetByName(name string) (*entity.Mood, error) {
	var moodModel model.MoodModel
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&moodModel).Error; err != nil {
		return nil, err
	}
	return ToMoodEntity(&moodModel), nil
}

func (r *moodRepository) List() ([]*entity.Mood, error) {
	var moodModels []model.MoodModel
	if err := r.db.Order("name ASC").Find(&moodModels).Error; err != nil {
		return nil, err
	}

	moods := make([]*entity.Mood, len(moodModels))
	for i := range moodModels {
		moods[i] = ToMoodEntity(&moodModels[i])
	}
	return moods, nil
}

func (r *moodRepository) Update(mood *entity.Mood) error {
	return r.db.Save(ToMoodModel(mood)).Error
}

func (r *moodRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.MoodModel{}).Error
}
