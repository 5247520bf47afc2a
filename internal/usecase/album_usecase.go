package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moodwave/internal/entity"
	"moodwave/internal/repo/graph"
	"moodwave/internal/repo/persistent"
	"moodwave/pkg/logger"
)

type AlbumInput struct {
	ArtistID    string
	Title       string
	ReleaseYear int
	Genre       string
	TrackCount  int
	DurationMin int
}

type AlbumUpdateInput struct {
	Title       *string
	ReleaseYear *int
	Genre       *string
	TrackCount  *int
	DurationMin *int
}

type AlbumUseCase interface {
	Create(input AlbumInput, creatorID string) (*entity.Album, error)
	List(artistID, genre string, limit, offset int) ([]*entity.Album, error)
	Get(albumID string) (*entity.Album, error)
	Update(albumID, requesterID, requesterRole string, input AlbumUpdateInput) (*entity.Album, error)
	Delete(albumID, requesterID, requesterRole string) error
}

type albumUseCase struct {
	albumRepo  persistent.AlbumRepository
	artistRepo persistent.ArtistRepository
	graph      graph.Adapter
	logger     *logger.Logger
}

func NewAlbumUseCase(
	albumRepo persistent.AlbumRepository,
	artistRepo persistent.ArtistRepository,
	graphAdapter graph.Adapter,
	logger *logger.Logger,
) AlbumUseCase {
	return &albumUseCase{albumRepo: albumRepo, artistRepo: artistRepo, graph: graphAdapter, logger: logger}
}

func (uc *albumUseCase) Create(input AlbumInput, creatorID string) (*entity.Album, error) {
	title := strings.TrimSpace(input.Title)
	if input.ArtistID == "" || title == "" {
		return nil, fmt.Errorf("%w: artistId and title are required", entity.ErrValidation)
	}

	if _, err := uc.artistRepo.GetByID(input.ArtistID); err != nil {
		return nil, fmt.Errorf("%w: artist %s", entity.ErrNotFound, input.ArtistID)
	}

	if _, err := uc.albumRepo.GetByTitleAndArtist(title, input.ArtistID); err == nil {
		return nil, fmt.Errorf("%w: album %q already exists for this artist", entity.ErrConflict, title)
	}

	album := &entity.Album{
		ArtistID:    input.ArtistID,
		Title:       title,
		ReleaseYear: input.ReleaseYear,
		Genre:       input.Genre,
		TrackCount:  input.TrackCount,
		DurationMin: input.DurationMin,
		CreatedBy:   creatorID,
	}
	if err := uc.albumRepo.Create(album); err != nil {
		return nil, err
	}

	if err := uc.graph.MergeNode(context.Background(), graph.LabelAlbum, album.AlbumID); err != nil {
		uc.logger.Warn("Graph mirror failed for album %s: %v", album.AlbumID, err)
	}
	return album, nil
}

func (uc *albumUseCase) List(artistID, genre string, limit, offset int) ([]*entity.Album, error) {
	return uc.albumRepo.List(artistID, genre, limit, offset)
}

func (uc *albumUseCase) Get(albumID string) (*entity.Album, error) {
	album, err := uc.albumRepo.GetByID(albumID)
	if err != nil {
		return nil, fmt.Errorf("%w: album %s", entity.ErrNotFound, albumID)
	}
	return album, nil
}

func (uc *albumUseCase) Update(albumID, requesterID, requesterRole string, input AlbumUpdateInput) (*entity.Album, error) {
	album, err := uc.albumRepo.GetByID(albumID)
	if err != nil {
		return nil, fmt.Errorf("%w: album %s", entity.ErrNotFound, albumID)
	}
	if !canModify(album.CreatedBy, requesterID, requesterRole) {
		return nil, fmt.Errorf("%w: not the owner of this album", entity.ErrForbidden)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", entity.ErrValidation)
		}
		existing, err := uc.albumRepo.GetByTitleAndArtist(title, album.ArtistID)
		if err == nil && existing.AlbumID != albumID {
			return nil, fmt.Errorf("%w: album %q already exists for this artist", entity.ErrConflict, title)
		}
		album.Title = title
	}
	if input.ReleaseYear != nil {
		album.ReleaseYear = *input.ReleaseYear
	}
	if input.Genre != nil {
		album.Genre = *input.Genre
	}
	if input.TrackCount != nil {
		album.TrackCount = *input.TrackCount
	}
	if input.DurationMin != nil {
		album.DurationMin = *input.DurationMin
	}

	album.UpdatedAt = time.Now()
	if err := uc.albumRepo.Update(album); err != nil {
		return nil, err
	}
	return album, nil
}

func (uc *albumUseCase) Delete(albumID, requesterID, requesterRole string) error {
	album, err := uc.albumRepo.GetByID(albumID)
	if err != nil {
		return fmt.Errorf("%w: album %s", entity.ErrNotFound, albumID)
	}
	if !canModify(album.CreatedBy, requesterID, requesterRole) {
		return fmt.Errorf("%w: not the owner of this album", entity.ErrForbidden)
	}

	if err := uc.albumRepo.Delete(albumID); err != nil {
		return err
	}

	if err := uc.graph.DeleteNode(context.Background(), graph.LabelAlbum, albumID); err != nil {
		uc.logger.Warn("Graph detach failed for album %s: %v", albumID, err)
	}
	return nil
}
