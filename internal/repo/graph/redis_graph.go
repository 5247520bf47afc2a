package graph

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"moodwave/internal/entity"
)

// Node labels known to the graph mirror.
const (
	LabelUser   = "user"
	LabelArtist = "artist"
	LabelAlbum  = "album"
	LabelTrack  = "track"
	LabelMood   = "mood"
)

func ValidLabel(label string) bool {
	switch label {
	case LabelUser, LabelArtist, LabelAlbum, LabelTrack, LabelMood:
		return true
	}
	return false
}

// Adapter mirrors catalog entities and their relationships into Redis sets.
// Nodes live in per-label sets; every edge type keeps a forward and a reverse
// set so traversal works in both directions. Edge writes are no-ops when an
// endpoint node is missing, which lets the primary store lead during
// best-effort dual writes.
type Adapter interface {
	MergeNode(ctx context.Context, label, id string) error
	HasNode(ctx context.Context, label, id string) (bool, error)
	DeleteNode(ctx context.Context, label, id string) error
	ListNodes(ctx context.Context, label string) ([]string, error)

	Follow(ctx context.Context, userID, targetID string) error
	Unfollow(ctx context.Context, userID, targetID string) error
	Following(ctx context.Context, userID string) ([]string, error)
	Followers(ctx context.Context, userID string) ([]string, error)

	LikeTrack(ctx context.Context, userID, trackID string) error
	UnlikeTrack(ctx context.Context, userID, trackID string) error
	LikedTracks(ctx context.Context, userID string) ([]string, error)
	TrackLikers(ctx context.Context, trackID string) ([]string, error)

	LikeAlbum(ctx context.Context, userID, albumID string) error
	UnlikeAlbum(ctx context.Context, userID, albumID string) error
	LikedAlbums(ctx context.Context, userID string) ([]string, error)
	AlbumLikers(ctx context.Context, albumID string) ([]string, error)

	SetTrackArtist(ctx context.Context, trackID, artistID string) error
	ArtistTracks(ctx context.Context, artistID string) ([]string, error)

	ReplaceTrackMoods(ctx context.Context, trackID string, moodIDs []string) error
	TrackMoods(ctx context.Context, trackID string) ([]string, error)
	MoodTracks(ctx context.Context, moodID string) ([]string, error)

	AllTrackLikeCounts(ctx context.Context) ([]entity.TrackLikeCount, error)
}

type redisGraph struct {
	client *redis.Client
}

func NewRedisGraph(client *redis.Client) Adapter {
	return &redisGraph{client: client}
}

func nodesKey(label string) string           { return "graph:nodes:" + label }
func followsKey(userID string) string        { return "graph:follows:" + userID }
func followersKey(userID string) string      { return "graph:followers:" + userID }
func likedTracksKey(userID string) string    { return "graph:likes:track:" + userID }
func trackLikersKey(trackID string) string   { return "graph:track:likedby:" + trackID }
func likedAlbumsKey(userID string) string    { return "graph:likes:album:" + userID }
func albumLikersKey(albumID string) string   { return "graph:album:likedby:" + albumID }
func artistTracksKey(artistID string) string { return "graph:artist:tracks:" + artistID }
func trackArtistKey(trackID string) string   { return "graph:track:artist:" + trackID }
func trackMoodsKey(trackID string) string    { return "graph:track:moods:" + trackID }
func moodTracksKey(moodID string) string     { return "graph:mood:tracks:" + moodID }

func (g *redisGraph) MergeNode(ctx context.Context, label, id string) error {
	if !ValidLabel(label) {
		return fmt.Errorf("%w: unknown node label %q", entity.ErrValidation, label)
	}
	return g.client.SAdd(ctx, nodesKey(label), id).Err()
}

func (g *redisGraph) HasNode(ctx context.Context, label, id string) (bool, error) {
	return g.client.SIsMember(ctx, nodesKey(label), id).Result()
}

// DeleteNode removes the node and detaches every edge that touches it,
// sweeping the reverse sets so no dangling references remain.
func (g *redisGraph) DeleteNode(ctx context.Context, label, id string) error {
	if !ValidLabel(label) {
		return fmt.Errorf("%w: unknown node label %q", entity.ErrValidation, label)
	}

	switch label {
	case LabelUser:
		if err := g.detachSet(ctx, followsKey(id), followersKey); err != nil {
			return err
		}
		if err := g.detachSet(ctx, followersKey(id), followsKey); err != nil {
			return err
		}
		if err := g.detachSet(ctx, likedTracksKey(id), trackLikersKey); err != nil {
			return err
		}
		if err := g.detachSet(ctx, likedAlbumsKey(id), albumLikersKey); err != nil {
			return err
		}
		err := g.client.Del(ctx, followsKey(id), followersKey(id), likedTracksKey(id), likedAlbumsKey(id)).Err()
		if err != nil {
			return err
		}
	case LabelTrack:
		if err := g.detachSet(ctx, trackLikersKey(id), likedTracksKey); err != nil {
			return err
		}
		if err := g.detachSet(ctx, trackArtistKey(id), artistTracksKey); err != nil {
			return err
		}
		if err := g.detachSet(ctx, trackMoodsKey(id), moodTracksKey); err != nil {
			return err
		}
		err := g.client.Del(ctx, trackLikersKey(id), trackArtistKey(id), trackMoodsKey(id)).Err()
		if err != nil {
			return err
		}
	case LabelAlbum:
		if err := g.detachSet(ctx, albumLikersKey(id), likedAlbumsKey); err != nil {
			return err
		}
		if err := g.client.Del(ctx, albumLikersKey(id)).Err(); err != nil {
			return err
		}
	case LabelArtist:
		if err := g.detachSet(ctx, artistTracksKey(id), trackArtistKey); err != nil {
			return err
		}
		if err := g.client.Del(ctx, artistTracksKey(id)).Err(); err != nil {
			return err
		}
	case LabelMood:
		if err := g.detachSet(ctx, moodTracksKey(id), trackMoodsKey); err != nil {
			return err
		}
		if err := g.client.Del(ctx, moodTracksKey(id)).Err(); err != nil {
			return err
		}
	}

	return g.client.SRem(ctx, nodesKey(label), id).Err()
}

// detachSet sweeps one edge direction: for every member m of setKey, the
// owning id (recovered from the key suffix) is removed from reverseKey(m).
func (g *redisGraph) detachSet(ctx context.Context, setKey string, reverseKey func(string) string) error {
	members, err := g.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return err
	}
	id := setKey[lastColon(setKey)+1:]
	for _, m := range members {
		if err := g.client.SRem(ctx, reverseKey(m), id).Err(); err != nil {
			return err
		}
	}
	return nil
}

func lastColon(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ':' {
			return i
		}
	}
	return -1
}

func (g *redisGraph) ListNodes(ctx context.Context, label string) ([]string, error) {
	if !ValidLabel(label) {
		return nil, fmt.Errorf("%w: unknown node label %q", entity.ErrValidation, label)
	}
	return g.client.SMembers(ctx, nodesKey(label)).Result()
}

// addEdge creates a forward/reverse pair once both endpoint nodes exist.
// Missing endpoints make the write a silent no-op.
func (g *redisGraph) addEdge(ctx context.Context, fromLabel, fromID, toLabel, toID, forwardKey, reverseKey string) error {
	ok, err := g.bothExist(ctx, fromLabel, fromID, toLabel, toID)
	if err != nil || !ok {
		return err
	}
	if err := g.client.SAdd(ctx, forwardKey, toID).Err(); err != nil {
		return err
	}
	return g.client.SAdd(ctx, reverseKey, fromID).Err()
}

func (g *redisGraph) bothExist(ctx context.Context, fromLabel, fromID, toLabel, toID string) (bool, error) {
	fromOK, err := g.HasNode(ctx, fromLabel, fromID)
	if err != nil {
		return false, err
	}
	toOK, err := g.HasNode(ctx, toLabel, toID)
	if err != nil {
		return false, err
	}
	return fromOK && toOK, nil
}

func (g *redisGraph) Follow(ctx context.Context, userID, targetID string) error {
	return g.addEdge(ctx, LabelUser, userID, LabelUser, targetID,
		followsKey(userID), followersKey(targetID))
}

func (g *redisGraph) Unfollow(ctx context.Context, userID, targetID string) error {
	if err := g.client.SRem(ctx, followsKey(userID), targetID).Err(); err != nil {
		return err
	}
	return g.client.SRem(ctx, followersKey(targetID), userID).Err()
}

func (g *redisGraph) Following(ctx context.Context, userID string) ([]string, error) {
	return g.client.SMembers(ctx, followsKey(userID)).Result()
}

func (g *redisGraph) Followers(ctx context.Context, userID string) ([]string, error) {
	return g.client.SMembers(ctx, followersKey(userID)).Result()
}

func (g *redisGraph) LikeTrack(ctx context.Context, userID, trackID string) error {
	return g.addEdge(ctx, LabelUser, userID, LabelTrack, trackID,
		likedTracksKey(userID), trackLikersKey(trackID))
}

func (g *redisGraph) UnlikeTrack(ctx context.Context, userID, trackID string) error {
	if err := g.client.SRem(ctx, likedTracksKey(userID), trackID).Err(); err != nil {
		return err
	}
	return g.client.SRem(ctx, trackLikersKey(trackID), userID).Err()
}

func (g *redisGraph) LikedTracks(ctx context.Context, userID string) ([]string, error) {
	return g.client.SMembers(ctx, likedTracksKey(userID)).Result()
}

func (g *redisGraph) TrackLikers(ctx context.Context, trackID string) ([]string, error) {
	return g.client.SMembers(ctx, trackLikersKey(trackID)).Result()
}

// LikeAlbum lazily merges the album node first, since albums only enter the
// graph when somebody likes them.
func (g *redisGraph) LikeAlbum(ctx context.Context, userID, albumID string) error {
	if err := g.MergeNode(ctx, LabelAlbum, albumID); err != nil {
		return err
	}
	return g.addEdge(ctx, LabelUser, userID, LabelAlbum, albumID,
		likedAlbumsKey(userID), albumLikersKey(albumID))
}

// UnlikeAlbum removes the edge and drops the album node once its last like is
// gone.
func (g *redisGraph) UnlikeAlbum(ctx context.Context, userID, albumID string) error {
	if err := g.client.SRem(ctx, likedAlbumsKey(userID), albumID).Err(); err != nil {
		return err
	}
	if err := g.client.SRem(ctx, albumLikersKey(albumID), userID).Err(); err != nil {
		return err
	}

	remaining, err := g.client.SCard(ctx, albumLikersKey(albumID)).Result()
	if err != nil {
		return err
	}
	if remaining == 0 {
		return g.client.SRem(ctx, nodesKey(LabelAlbum), albumID).Err()
	}
	return nil
}

func (g *redisGraph) LikedAlbums(ctx context.Context, userID string) ([]string, error) {
	return g.client.SMembers(ctx, likedAlbumsKey(userID)).Result()
}

func (g *redisGraph) AlbumLikers(ctx context.Context, albumID string) ([]string, error) {
	return g.client.SMembers(ctx, albumLikersKey(albumID)).Result()
}

func (g *redisGraph) SetTrackArtist(ctx context.Context, trackID, artistID string) error {
	return g.addEdge(ctx, LabelTrack, trackID, LabelArtist, artistID,
		trackArtistKey(trackID), artistTracksKey(artistID))
}

func (g *redisGraph) ArtistTracks(ctx context.Context, artistID string) ([]string, error) {
	return g.client.SMembers(ctx, artistTracksKey(artistID)).Result()
}

// ReplaceTrackMoods swaps the full HAS_MOOD edge set of a track, sweeping the
// reverse sets of moods no longer attached.
func (g *redisGraph) ReplaceTrackMoods(ctx context.Context, trackID string, moodIDs []string) error {
	ok, err := g.HasNode(ctx, LabelTrack, trackID)
	if err != nil || !ok {
		return err
	}

	current, err := g.client.SMembers(ctx, trackMoodsKey(trackID)).Result()
	if err != nil {
		return err
	}
	for _, moodID := range current {
		if err := g.client.SRem(ctx, moodTracksKey(moodID), trackID).Err(); err != nil {
			return err
		}
	}
	if err := g.client.Del(ctx, trackMoodsKey(trackID)).Err(); err != nil {
		return err
	}

	for _, moodID := range moodIDs {
		err := g.addEdge(ctx, LabelTrack, trackID, LabelMood, moodID,
			trackMoodsKey(trackID), moodTracksKey(moodID))
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *redisGraph) TrackMoods(ctx context.Context, trackID string) ([]string, error) {
	return g.client.SMembers(ctx, trackMoodsKey(trackID)).Result()
}

func (g *redisGraph) MoodTracks(ctx context.Context, moodID string) ([]string, error) {
	return g.client.SMembers(ctx, moodTracksKey(moodID)).Result()
}

// AllTrackLikeCounts reports the like count of every track node that has at
// least one liker.
func (g *redisGraph) AllTrackLikeCounts(ctx context.Context) ([]entity.TrackLikeCount, error) {
	trackIDs, err := g.client.SMembers(ctx, nodesKey(LabelTrack)).Result()
	if err != nil {
		return nil, err
	}

	counts := make([]entity.TrackLikeCount, 0, len(trackIDs))
	for _, trackID := range trackIDs {
		n, err := g.client.SCard(ctx, trackLikersKey(trackID)).Result()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			counts = append(counts, entity.TrackLikeCount{TrackID: trackID, LikeCount: int(n)})
		}
	}
	return counts, nil
}
