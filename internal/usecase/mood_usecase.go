package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"moodwave/internal/entity"
	"moodwave/internal/repo/graph"
	"moodwave/internal/repo/persistent"
	"moodwave/pkg/logger"
)

type MoodInput struct {
	Name        string
	Description string
	Keywords    []string
}

type MoodUpdateInput struct {
	Name        *string
	Description *string
	Keywords    []string
}

type MoodUseCase interface {
	Create(input MoodInput) (*entity.Mood, error)
	List() ([]*entity.Mood, error)
	Get(moodID string) (*entity.Mood, error)
	Update(moodID string, input MoodUpdateInput) (*entity.Mood, error)
	Delete(moodID string) error
}

type moodUseCase struct {
	moodRepo  persistent.MoodRepository
	trackRepo persistent.TrackRepository
	graph     graph.Adapter
	logger    *logger.Logger
}

func NewMoodUseCase(
	moodRepo persistent.MoodRepository,
	trackRepo persistent.TrackRepository,
	graphAdapter graph.Adapter,
	logger *logger.Logger,
) MoodUseCase {
	return &moodUseCase{moodRepo: moodRepo, trackRepo: trackRepo, graph: graphAdapter, logger: logger}
}

func (uc *moodUseCase) Create(input MoodInput) (*entity.Mood, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entity.ErrValidation)
	}

	if _, err := uc.moodRepo.GetByName(name); err == nil {
		return nil, fmt.Errorf("%w: mood %q already exists", entity.ErrConflict, name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	mood := &entity.Mood{
		Name:        name,
		Description: input.Description,
		Keywords:    input.Keywords,
	}
	if err := uc.moodRepo.Create(mood); err != nil {
		return nil, err
	}

	if err := uc.graph.MergeNode(context.Background(), graph.LabelMood, mood.MoodID); err != nil {
		uc.logger.Warn("Graph mirror failed for mood %s: %v", mood.MoodID, err)
	}
	return mood, nil
}

func (uc *moodUseCase) List() ([]*entity.Mood, error) {
	return uc.moodRepo.List()
}

func (uc *moodUseCase) Get(moodID string) (*entity.Mood, error) {
	mood, err := uc.moodRepo.GetByID(moodID)
	if err != nil {
		return nil, fmt.Errorf("%w: mood %s", entity.ErrNotFound, moodID)
	}
	return mood, nil
}

func (uc *moodUseCase) Update(moodID string, input MoodUpdateInput) (*entity.Mood, error) {
	mood, err := uc.moodRepo.GetByID(moodID)
	if err != nil {
		return nil, fmt.Errorf("%w: mood %s", entity.ErrNotFound, moodID)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", entity.ErrValidation)
		}
		if existing, err := uc.moodRepo.GetByName(name); err == nil && existing.MoodID != moodID {
			return nil, fmt.Errorf("%w: mood %q already exists", entity.ErrConflict, name)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		mood.Name = name
	}
	if input.Description != nil {
		mood.Description = *input.Description
	}
	if input.Keywords != nil {
		mood.Keywords = input.Keywords
	}

	mood.UpdatedAt = time.Now()
	if err := uc.moodRepo.Update(mood); err != nil {
		return nil, err
	}
	return mood, nil
}

// Delete removes the mood from the vocabulary and cascades: the name is
// pulled from every track's mood array and the graph node is detach-deleted.
func (uc *moodUseCase) Delete(moodID string) error {
	mood, err := uc.moodRepo.GetByID(moodID)
	if err != nil {
		return fmt.Errorf("%w: mood %s", entity.ErrNotFound, moodID)
	}

	if err := uc.moodRepo.Delete(moodID); err != nil {
		return err
	}

	if err := uc.trackRepo.RemoveMoodFromAll(mood.Name); err != nil {
		uc.logger.Error("Failed to strip mood %q from tracks: %v", mood.Name, err)
	}

	if err := uc.graph.DeleteNode(context.Background(), graph.LabelMood, moodID); err != nil {
		uc.logger.Warn("Graph detach failed for mood %s: %v", moodID, err)
	}
	return nil
}
