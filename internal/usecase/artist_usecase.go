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

type ArtistInput struct {
	Name       string
	Genre      string
	Origin     string
	FormedYear int
}

type ArtistUpdateInput struct {
	Name       *string
	Genre      *string
	Origin     *string
	FormedYear *int
}

type ArtistUseCase interface {
	Create(input ArtistInput, creatorID string) (*entity.Artist, error)
	List(genre string, limit, offset int) ([]*entity.Artist, error)
	Get(artistID string) (*entity.Artist, error)
	Update(artistID, requesterID, requesterRole string, input ArtistUpdateInput) (*entity.Artist, error)
	Delete(artistID, requesterID, requesterRole string) error
}

type artistUseCase struct {
	artistRepo persistent.ArtistRepository
	graph      graph.Adapter
	logger     *logger.Logger
}

func NewArtistUseCase(artistRepo persistent.ArtistRepository, graphAdapter graph.Adapter, logger *logger.Logger) ArtistUseCase {
	return &artistUseCase{artistRepo: artistRepo, graph: graphAdapter, logger: logger}
}

// canModify applies the shared catalog ownership rule.
func canModify(createdBy, requesterID, requesterRole string) bool {
	return createdBy == requesterID || requesterRole == string(entity.RoleAdmin)
}

func (uc *artistUseCase) Create(input ArtistInput, creatorID string) (*entity.Artist, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Genre == "" {
		return nil, fmt.Errorf("%w: name and genre are required", entity.ErrValidation)
	}

	if _, err := uc.artistRepo.GetByName(name); err == nil {
		return nil, fmt.Errorf("%w: artist %q already exists", entity.ErrConflict, name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	artist := &entity.Artist{
		Name:       name,
		Genre:      input.Genre,
		Origin:     input.Origin,
		FormedYear: input.FormedYear,
		CreatedBy:  creatorID,
	}
	if err := uc.artistRepo.Create(artist); err != nil {
		return nil, err
	}

	if err := uc.graph.MergeNode(context.Background(), graph.LabelArtist, artist.ArtistID); err != nil {
		uc.logger.Warn("Graph mirror failed for artist %s: %v", artist.ArtistID, err)
	}
	return artist, nil
}

func (uc *artistUseCase) List(genre string, limit, offset int) ([]*entity.Artist, error) {
	return uc.artistRepo.List(genre, limit, offset)
}

func (uc *artistUseCase) Get(artistID string) (*entity.Artist, error) {
	artist, err := uc.artistRepo.GetByID(artistID)
	if err != nil {
		return nil, fmt.Errorf("%w: artist %s", entity.ErrNotFound, artistID)
	}
	return artist, nil
}

func (uc *artistUseCase) Update(artistID, requesterID, requesterRole string, input ArtistUpdateInput) (*entity.Artist, error) {
	artist, err := uc.artistRepo.GetByID(artistID)
	if err != nil {
		return nil, fmt.Errorf("%w: artist %s", entity.ErrNotFound, artistID)
	}
	if !canModify(artist.CreatedBy, requesterID, requesterRole) {
		return nil, fmt.Errorf("%w: not the owner of this artist", entity.ErrForbidden)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", entity.ErrValidation)
		}
		if existing, err := uc.artistRepo.GetByName(name); err == nil && existing.ArtistID != artistID {
			return nil, fmt.Errorf("%w: artist %q already exists", entity.ErrConflict, name)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		artist.Name = name
	}
	if input.Genre != nil {
		artist.Genre = *input.Genre
	}
	if input.Origin != nil {
		artist.Origin = *input.Origin
	}
	if input.FormedYear != nil {
		artist.FormedYear = *input.FormedYear
	}

	artist.UpdatedAt = time.Now()
	if err := uc.artistRepo.Update(artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (uc *artistUseCase) Delete(artistID, requesterID, requesterRole string) error {
	artist, err := uc.artistRepo.GetByID(artistID)
	if err != nil {
		return fmt.Errorf("%w: artist %s", entity.ErrNotFound, artistID)
	}
	if !canModify(artist.CreatedBy, requesterID, requesterRole) {
		return fmt.Errorf("%w: not the owner of this artist", entity.ErrForbidden)
	}

	if err := uc.artistRepo.Delete(artistID); err != nil {
		return err
	}

	if err := uc.graph.DeleteNode(context.Background(), graph.LabelArtist, artistID); err != nil {
		uc.logger.Warn("Graph detach failed for artist %s: %v", artistID, err)
	}
	return nil
}
