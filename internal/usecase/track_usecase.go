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
	"moodwave/pkg/queue"
)

type TrackInput struct {
	Title       string
	ArtistID    string
	AlbumID     string
	DurationSec int
	Genre       string
	Mood        []string
}

type TrackUpdateInput struct {
	Title       *string
	AlbumID     *string
	DurationSec *int
	Genre       *string
	Mood        []string
}

type TrackUseCase interface {
	Create(input TrackInput, creatorID string) (*entity.Track, error)
	List(artistID, albumID, genre, mood string, limit, offset int) ([]*entity.Track, error)
	Get(trackID string) (*entity.Track, error)
	GetByIDs(ids []string) ([]*entity.Track, error)
	Update(trackID, requesterID, requesterRole string, input TrackUpdateInput) (*entity.Track, error)
	Delete(trackID, requesterID, requesterRole string) error
	MoodNames() ([]string, error)
}

type trackUseCase struct {
	trackRepo   persistent.TrackRepository
	artistRepo  persistent.ArtistRepository
	albumRepo   persistent.AlbumRepository
	moodRepo    persistent.MoodRepository
	graph       graph.Adapter
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewTrackUseCase(
	trackRepo persistent.TrackRepository,
	artistRepo persistent.ArtistRepository,
	albumRepo persistent.AlbumRepository,
	moodRepo persistent.MoodRepository,
	graphAdapter graph.Adapter,
	queueClient *queue.Client,
	logger *logger.Logger,
) TrackUseCase {
	return &trackUseCase{
		trackRepo:   trackRepo,
		artistRepo:  artistRepo,
		albumRepo:   albumRepo,
		moodRepo:    moodRepo,
		graph:       graphAdapter,
		queueClient: queueClient,
		logger:      logger,
	}
}

// resolveMoodIDs validates mood names against the vocabulary and returns the
// matching mood ids in the same order.
func (uc *trackUseCase) resolveMoodIDs(names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		mood, err := uc.moodRepo.GetByName(name)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown mood %q", entity.ErrValidation, name)
		}
		ids = append(ids, mood.MoodID)
	}
	return ids, nil
}

func (uc *trackUseCase) Create(input TrackInput, creatorID string) (*entity.Track, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.ArtistID == "" {
		return nil, fmt.Errorf("%w: title and artistId are required", entity.ErrValidation)
	}

	if _, err := uc.artistRepo.GetByID(input.ArtistID); err != nil {
		return nil, fmt.Errorf("%w: artist %s", entity.ErrNotFound, input.ArtistID)
	}
	if input.AlbumID != "" {
		if _, err := uc.albumRepo.GetByID(input.AlbumID); err != nil {
			return nil, fmt.Errorf("%w: album %s", entity.ErrNotFound, input.AlbumID)
		}
	}

	moodIDs, err := uc.resolveMoodIDs(input.Mood)
	if err != nil {
		return nil, err
	}

	if _, err := uc.trackRepo.GetDuplicate(title, input.ArtistID, input.AlbumID); err == nil {
		return nil, fmt.Errorf("%w: track %q already exists for this artist and album", entity.ErrConflict, title)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	track := &entity.Track{
		Title:       title,
		ArtistID:    input.ArtistID,
		AlbumID:     input.AlbumID,
		DurationSec: input.DurationSec,
		Genre:       input.Genre,
		Mood:        input.Mood,
		CreatedBy:   creatorID,
	}
	if err := uc.trackRepo.Create(track); err != nil {
		return nil, err
	}

	uc.mirrorCreate(track, moodIDs, creatorID)
	return track, nil
}

// mirrorCreate pushes the track's full graph footprint: the node itself, the
// PERFORMED_BY edge, HAS_MOOD edges, and an automatic like from the creator
// (extending to the album when the track belongs to one). All best-effort.
func (uc *trackUseCase) mirrorCreate(track *entity.Track, moodIDs []string, creatorID string) {
	ctx := context.Background()

	if err := uc.graph.MergeNode(ctx, graph.LabelTrack, track.TrackID); err != nil {
		uc.logger.Warn("Graph mirror failed for track %s: %v", track.TrackID, err)
		return
	}
	if err := uc.graph.SetTrackArtist(ctx, track.TrackID, track.ArtistID); err != nil {
		uc.logger.Warn("Graph mirror failed for track %s artist edge: %v", track.TrackID, err)
	}
	if err := uc.graph.ReplaceTrackMoods(ctx, track.TrackID, moodIDs); err != nil {
		uc.logger.Warn("Graph mirror failed for track %s mood edges: %v", track.TrackID, err)
	}

	if err := uc.graph.LikeTrack(ctx, creatorID, track.TrackID); err != nil {
		uc.logger.Warn("Graph mirror failed for auto-like of track %s: %v", track.TrackID, err)
	} else if track.AlbumID != "" {
		if err := uc.graph.LikeAlbum(ctx, creatorID, track.AlbumID); err != nil {
			uc.logger.Warn("Graph mirror failed for auto-like of album %s: %v", track.AlbumID, err)
		}
	}

	if uc.queueClient != nil {
		task := map[string]interface{}{
			"type":     "track_liked",
			"user_id":  track.CreatedBy,
			"track_id": track.TrackID,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Warn("Failed to publish like notification: %v", err)
		}
	}
}

func (uc *trackUseCase) List(artistID, albumID, genre, mood string, limit, offset int) ([]*entity.Track, error) {
	return uc.trackRepo.List(artistID, albumID, genre, mood, limit, offset)
}

func (uc *trackUseCase) Get(trackID string) (*entity.Track, error) {
	track, err := uc.trackRepo.GetByID(trackID)
	if err != nil {
		return nil, fmt.Errorf("%w: track %s", entity.ErrNotFound, trackID)
	}
	return track, nil
}

func (uc *trackUseCase) GetByIDs(ids []string) ([]*entity.Track, error) {
	return uc.trackRepo.GetByIDs(ids)
}

func (uc *trackUseCase) Update(trackID, requesterID, requesterRole string, input TrackUpdateInput) (*entity.Track, error) {
	track, err := uc.trackRepo.GetByID(trackID)
	if err != nil {
		return nil, fmt.Errorf("%w: track %s", entity.ErrNotFound, trackID)
	}
	if !canModify(track.CreatedBy, requesterID, requesterRole) {
		return nil, fmt.Errorf("%w: not the owner of this track", entity.ErrForbidden)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", entity.ErrValidation)
		}
		track.Title = title
	}
	if input.AlbumID != nil {
		if *input.AlbumID != "" {
			if _, err := uc.albumRepo.GetByID(*input.AlbumID); err != nil {
				return nil, fmt.Errorf("%w: album %s", entity.ErrNotFound, *input.AlbumID)
			}
		}
		track.AlbumID = *input.AlbumID
	}
	if input.DurationSec != nil {
		track.DurationSec = *input.DurationSec
	}
	if input.Genre != nil {
		track.Genre = *input.Genre
	}

	var moodIDs []string
	moodsChanged := input.Mood != nil
	if moodsChanged {
		moodIDs, err = uc.resolveMoodIDs(input.Mood)
		if err != nil {
			return nil, err
		}
		track.Mood = input.Mood
	}

	track.UpdatedAt = time.Now()
	if err := uc.trackRepo.Update(track); err != nil {
		return nil, err
	}

	if moodsChanged {
		if err := uc.graph.ReplaceTrackMoods(context.Background(), trackID, moodIDs); err != nil {
			uc.logger.Warn("Graph mirror failed for track %s mood edges: %v", trackID, err)
		}
	}
	return track, nil
}

func (uc *trackUseCase) Delete(trackID, requesterID, requesterRole string) error {
	track, err := uc.trackRepo.GetByID(trackID)
	if err != nil {
		return fmt.Errorf("%w: track %s", entity.ErrNotFound, trackID)
	}
	if !canModify(track.CreatedBy, requesterID, requesterRole) {
		return fmt.Errorf("%w: not the owner of this track", entity.ErrForbidden)
	}

	if err := uc.trackRepo.Delete(trackID); err != nil {
		return err
	}

	if err := uc.graph.DeleteNode(context.Background(), graph.LabelTrack, trackID); err != nil {
		uc.logger.Warn("Graph detach failed for track %s: %v", trackID, err)
	}
	return nil
}

func (uc *trackUseCase) MoodNames() ([]string, error) {
	moods, err := uc.moodRepo.List()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(moods))
	for i, m := range moods {
		names[i] = m.Name
	}
	return names, nil
}
