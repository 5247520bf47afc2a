package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"moodwave/internal/entity"
	"moodwave/internal/repo/graph"
	"moodwave/internal/repo/persistent"
	"moodwave/pkg/logger"
)

type PlaylistInput struct {
	UserID      string
	Name        string
	Description string
	TrackIDs    []string
	IsPublic    *bool
}

type PlaylistUpdateInput struct {
	Name        *string
	Description *string
	TrackIDs    []string
	IsPublic    *bool
}

// AggregatedPlaylist is a playlist with its track ids resolved to documents.
// Dangling ids are silently dropped.
type AggregatedPlaylist struct {
	Playlist *entity.Playlist `json:"playlist"`
	Tracks   []*entity.Track  `json:"tracks"`
}

type PlaylistUseCase interface {
	Create(input PlaylistInput, requesterID, requesterRole string) (*entity.Playlist, error)
	List(scope, requesterID, requesterRole string, limit, offset int) ([]*entity.Playlist, error)
	Get(playlistID, requesterID, requesterRole string) (*entity.Playlist, error)
	Update(playlistID, requesterID, requesterRole string, input PlaylistUpdateInput) (*entity.Playlist, error)
	Delete(playlistID, requesterID, requesterRole string) error
	Following(requesterID string) ([]*entity.Playlist, error)
	Discover(requesterID string) ([]*entity.Playlist, error)
	Aggregated(playlistID, requesterID, requesterRole string) (*AggregatedPlaylist, error)
	GenreStats(requesterID string) ([]entity.GenreCount, error)
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	userRepo     persistent.UserRepository
	trackRepo    persistent.TrackRepository
	graph        graph.Adapter
	logger       *logger.Logger
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	userRepo persistent.UserRepository,
	trackRepo persistent.TrackRepository,
	graphAdapter graph.Adapter,
	logger *logger.Logger,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		userRepo:     userRepo,
		trackRepo:    trackRepo,
		graph:        graphAdapter,
		logger:       logger,
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (uc *playlistUseCase) Create(input PlaylistInput, requesterID, requesterRole string) (*entity.Playlist, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entity.ErrValidation)
	}

	ownerID := input.UserID
	if ownerID == "" {
		ownerID = requesterID
	}
	if ownerID != requesterID && requesterRole != string(entity.RoleAdmin) {
		return nil, fmt.Errorf("%w: cannot create a playlist for another user", entity.ErrForbidden)
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	playlist := &entity.Playlist{
		UserID:      ownerID,
		Name:        name,
		Description: input.Description,
		TrackIDs:    dedupe(input.TrackIDs),
		IsPublic:    isPublic,
		CreatedBy:   requesterID,
	}
	if err := uc.playlistRepo.Create(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (uc *playlistUseCase) List(scope, requesterID, requesterRole string, limit, offset int) ([]*entity.Playlist, error) {
	switch scope {
	case "", "mine":
		return uc.playlistRepo.ListByUser(requesterID, true)
	case "all":
		if requesterRole != string(entity.RoleAdmin) {
			return nil, fmt.Errorf("%w: scope=all is admin-only", entity.ErrForbidden)
		}
		return uc.playlistRepo.ListAll(limit, offset)
	default:
		return nil, fmt.Errorf("%w: unknown scope %q", entity.ErrValidation, scope)
	}
}

func (uc *playlistUseCase) Get(playlistID, requesterID, requesterRole string) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, fmt.Errorf("%w: playlist %s", entity.ErrNotFound, playlistID)
	}
	if !playlist.IsPublic && !canModify(playlist.UserID, requesterID, requesterRole) {
		return nil, fmt.Errorf("%w: playlist is private", entity.ErrForbidden)
	}
	return playlist, nil
}

func (uc *playlistUseCase) Update(playlistID, requesterID, requesterRole string, input PlaylistUpdateInput) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, fmt.Errorf("%w: playlist %s", entity.ErrNotFound, playlistID)
	}
	if !canModify(playlist.UserID, requesterID, requesterRole) {
		return nil, fmt.Errorf("%w: not the owner of this playlist", entity.ErrForbidden)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", entity.ErrValidation)
		}
		playlist.Name = name
	}
	if input.Description != nil {
		playlist.Description = *input.Description
	}
	if input.TrackIDs != nil {
		playlist.TrackIDs = dedupe(input.TrackIDs)
	}
	if input.IsPublic != nil {
		playlist.IsPublic = *input.IsPublic
	}

	playlist.UpdatedAt = time.Now()
	if err := uc.playlistRepo.Update(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (uc *playlistUseCase) Delete(playlistID, requesterID, requesterRole string) error {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return fmt.Errorf("%w: playlist %s", entity.ErrNotFound, playlistID)
	}
	if !canModify(playlist.UserID, requesterID, requesterRole) {
		return fmt.Errorf("%w: not the owner of this playlist", entity.ErrForbidden)
	}
	return uc.playlistRepo.Delete(playlistID)
}

// Following lists public playlists of everyone the requester follows.
func (uc *playlistUseCase) Following(requesterID string) ([]*entity.Playlist, error) {
	user, err := uc.userRepo.GetByID(requesterID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, requesterID)
	}
	return uc.playlistRepo.ListPublicByUsers(user.Following)
}

// Discover lists public playlists from users the requester neither follows
// nor is.
func (uc *playlistUseCase) Discover(requesterID string) ([]*entity.Playlist, error) {
	user, err := uc.userRepo.GetByID(requesterID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, requesterID)
	}

	followed := make(map[string]bool, len(user.Following))
	for _, id := range user.Following {
		followed[id] = true
	}

	all, err := uc.playlistRepo.ListPublic(0, 0)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Playlist, 0, len(all))
	for _, p := range all {
		if p.UserID != requesterID && !followed[p.UserID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (uc *playlistUseCase) Aggregated(playlistID, requesterID, requesterRole string) (*AggregatedPlaylist, error) {
	playlist, err := uc.Get(playlistID, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	tracks, err := uc.trackRepo.GetByIDs(playlist.TrackIDs)
	if err != nil {
		return nil, err
	}

	// Preserve playlist order; ids that no longer resolve are dropped.
	byID := make(map[string]*entity.Track, len(tracks))
	for _, t := range tracks {
		byID[t.TrackID] = t
	}
	ordered := make([]*entity.Track, 0, len(playlist.TrackIDs))
	for _, id := range playlist.TrackIDs {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, t)
		}
	}

	return &AggregatedPlaylist{Playlist: playlist, Tracks: ordered}, nil
}

// GenreStats merges genre counts from the requester's playlists with genres of
// tracks they like in the graph, sorted by count descending.
func (uc *playlistUseCase) GenreStats(requesterID string) ([]entity.GenreCount, error) {
	counts := make(map[string]int)

	playlists, err := uc.playlistRepo.ListByUser(requesterID, true)
	if err != nil {
		return nil, err
	}
	for _, p := range playlists {
		tracks, err := uc.trackRepo.GetByIDs(p.TrackIDs)
		if err != nil {
			return nil, err
		}
		for _, t := range tracks {
			if t.Genre != "" {
				counts[t.Genre]++
			}
		}
	}

	likedIDs, err := uc.graph.LikedTracks(context.Background(), requesterID)
	if err != nil {
		uc.logger.Warn("Graph lookup failed for likes of %s: %v", requesterID, err)
	} else {
		liked, err := uc.trackRepo.GetByIDs(likedIDs)
		if err != nil {
			return nil, err
		}
		for _, t := range liked {
			if t.Genre != "" {
				counts[t.Genre]++
			}
		}
	}

	stats := make([]entity.GenreCount, 0, len(counts))
	for genre, count := range counts {
		stats = append(stats, entity.GenreCount{Genre: genre, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Genre < stats[j].Genre
	})
	return stats, nil
}
