package usecase

import (
	"context"
	"fmt"
	"sort"

	"moodwave/internal/entity"
	"moodwave/internal/repo/graph"
	"moodwave/internal/repo/persistent"
	"moodwave/pkg/logger"
)

// GraphUseCase exposes the graph mirror directly: node inspection, manual
// repair of missing mirrors, and the relationship queries. Unlike the
// best-effort mirroring inside the catalog usecases, errors here surface to
// the caller.
type GraphUseCase interface {
	ListNodes(label string) ([]string, error)
	MergeNode(label, id string) error
	DeleteNode(label, id string) error
	InitMoods() (int, error)

	CreateLike(userID, trackID string) error
	DeleteLike(userID, trackID string) error
	CreateAlbumLike(userID, albumID string) error
	DeleteAlbumLike(userID, albumID string) error

	ArtistTracks(artistID string) ([]string, error)
	MoodTracks(moodID string) ([]string, error)
	UserLikes(userID string) ([]string, error)
	UserLikedAlbums(userID string) ([]string, error)
	AllLikes() ([]entity.TrackLikeCount, error)
}

type graphUseCase struct {
	graph     graph.Adapter
	moodRepo  persistent.MoodRepository
	trackRepo persistent.TrackRepository
	logger    *logger.Logger
}

func NewGraphUseCase(
	graphAdapter graph.Adapter,
	moodRepo persistent.MoodRepository,
	trackRepo persistent.TrackRepository,
	logger *logger.Logger,
) GraphUseCase {
	return &graphUseCase{graph: graphAdapter, moodRepo: moodRepo, trackRepo: trackRepo, logger: logger}
}

func (uc *graphUseCase) ListNodes(label string) ([]string, error) {
	return uc.graph.ListNodes(context.Background(), label)
}

func (uc *graphUseCase) MergeNode(label, id string) error {
	if id == "" {
		return fmt.Errorf("%w: node id is required", entity.ErrValidation)
	}
	return uc.graph.MergeNode(context.Background(), label, id)
}

func (uc *graphUseCase) DeleteNode(label, id string) error {
	ok, err := uc.graph.HasNode(context.Background(), label, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s node %s", entity.ErrNotFound, label, id)
	}
	return uc.graph.DeleteNode(context.Background(), label, id)
}

// InitMoods mirrors every mood document into the graph and reports how many
// nodes were merged.
func (uc *graphUseCase) InitMoods() (int, error) {
	moods, err := uc.moodRepo.List()
	if err != nil {
		return 0, err
	}

	ctx := context.Background()
	for _, mood := range moods {
		if err := uc.graph.MergeNode(ctx, graph.LabelMood, mood.MoodID); err != nil {
			return 0, err
		}
	}
	return len(moods), nil
}

// CreateLike records a LIKES edge. When the track belongs to an album, the
// album like is mirrored too (lazy album node merge).
func (uc *graphUseCase) CreateLike(userID, trackID string) error {
	if userID == "" || trackID == "" {
		return fmt.Errorf("%w: userId and trackId are required", entity.ErrValidation)
	}

	ctx := context.Background()
	if err := uc.graph.LikeTrack(ctx, userID, trackID); err != nil {
		return err
	}

	track, err := uc.trackRepo.GetByID(trackID)
	if err == nil && track.AlbumID != "" {
		if err := uc.graph.LikeAlbum(ctx, userID, track.AlbumID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteLike removes the LIKES edge. The album like is dropped once the user
// no longer likes any track of that album.
func (uc *graphUseCase) DeleteLike(userID, trackID string) error {
	ctx := context.Background()
	if err := uc.graph.UnlikeTrack(ctx, userID, trackID); err != nil {
		return err
	}

	track, err := uc.trackRepo.GetByID(trackID)
	if err != nil || track.AlbumID == "" {
		return nil
	}

	liked, err := uc.graph.LikedTracks(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range liked {
		other, err := uc.trackRepo.GetByID(id)
		if err == nil && other.AlbumID == track.AlbumID {
			return nil
		}
	}
	return uc.graph.UnlikeAlbum(ctx, userID, track.AlbumID)
}

func (uc *graphUseCase) CreateAlbumLike(userID, albumID string) error {
	if userID == "" || albumID == "" {
		return fmt.Errorf("%w: userId and albumId are required", entity.ErrValidation)
	}
	return uc.graph.LikeAlbum(context.Background(), userID, albumID)
}

func (uc *graphUseCase) DeleteAlbumLike(userID, albumID string) error {
	return uc.graph.UnlikeAlbum(context.Background(), userID, albumID)
}

func (uc *graphUseCase) ArtistTracks(artistID string) ([]string, error) {
	return uc.graph.ArtistTracks(context.Background(), artistID)
}

func (uc *graphUseCase) MoodTracks(moodID string) ([]string, error) {
	return uc.graph.MoodTracks(context.Background(), moodID)
}

func (uc *graphUseCase) UserLikes(userID string) ([]string, error) {
	return uc.graph.LikedTracks(context.Background(), userID)
}

func (uc *graphUseCase) UserLikedAlbums(userID string) ([]string, error) {
	return uc.graph.LikedAlbums(context.Background(), userID)
}

func (uc *graphUseCase) AllLikes() ([]entity.TrackLikeCount, error) {
	counts, err := uc.graph.AllTrackLikeCounts(context.Background())
	if err != nil {
		return nil, err
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].LikeCount != counts[j].LikeCount {
			return counts[i].LikeCount > counts[j].LikeCount
		}
		return counts[i].TrackID < counts[j].TrackID
	})
	return counts, nil
}
