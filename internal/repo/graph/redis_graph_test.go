package graph

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestGraph(t *testing.T) Adapter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisGraph(client)
}

func TestMergeNode_Idempotent(t *testing.T) {
	g := newTestGraph(t)
	ctx := context.Background()

	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_1"))

	ids, err := g.ListNodes(ctx, LabelUser)
	assert.NoError(t, err)
	assert.Equal(t, []string{"user_1"}, ids)
}

func TestMergeNode_UnknownLabel(t *testing.T) {
	g := newTestGraph(t)

	err := g.MergeNode(context.Background(), "genre", "g_1")
	assert.Error(t, err)
}

func TestEdge_MissingEndpointIsNoOp(t *testing.T) {
	g := newTestGraph(t)
	ctx := context.Background()

	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_1"))

	// Track node was never merged: the like must silently do nothing.
	assert.NoError(t, g.LikeTrack(ctx, "user_1", "trk_missing"))

	liked, err := g.LikedTracks(ctx, "user_1")
	assert.NoError(t, err)
	assert.Empty(t, liked)
}

func TestFollow_Unfollow(t *testing.T) {
	g := newTestGraph(t)
	ctx := context.Background()

	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_2"))

	assert.NoError(t, g.Follow(ctx, "user_1", "user_2"))

	following, err := g.Following(ctx, "user_1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"user_2"}, following)

	followers, err := g.Followers(ctx, "user_2")
	assert.NoError(t, err)
	assert.Equal(t, []string{"user_1"}, followers)

	assert.NoError(t, g.Unfollow(ctx, "user_1", "user_2"))

	following, err = g.Following(ctx, "user_1")
	assert.NoError(t, err)
	assert.Empty(t, following)
}

func TestLikeTrack_BothDirections(t *testing.T) {
	g := newTestGraph(t)
	ctx := context.Background()

	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelTrack, "trk_1"))
	assert.NoError(t, g.LikeTrack(ctx, "user_1", "trk_1"))

	liked, err := g.LikedTracks(ctx, "user_1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"trk_1"}, liked)

	likers, err := g.TrackLikers(ctx, "trk_1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"user_1"}, likers)
}

func TestLikeAlbum_LazyMerge(t *testing.T) {
	g := newTestGraph(t)
	ctx := context.Background()

	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_1"))

	// Album node does not exist yet; liking it merges it first.
	assert.NoError(t, g.LikeAlbum(ctx, "user_1", "alb_1"))

	ok, err := g.HasNode(ctx, LabelAlbum, "alb_1")
	assert.NoError(t, err)
	assert.True(t, ok)

	albums, err := g.LikedAlbums(ctx, "user_1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"alb_1"}, albums)
}

func TestUnlikeAlbum_DropsNodeOnLastLike(t *testing.T) {
	g := newTestGraph(t)
	ctx := context.Background()

	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_2"))
	assert.NoError(t, g.LikeAlbum(ctx, "user_1", "alb_1"))
	assert.NoError(t, g.LikeAlbum(ctx, "user_2", "alb_1"))

	assert.NoError(t, g.UnlikeAlbum(ctx, "user_1", "alb_1"))
	ok, err := g.HasNode(ctx, LabelAlbum, "alb_1")
	assert.NoError(t, err)
	assert.True(t, ok, "album should survive while a like remains")

	assert.NoError(t, g.UnlikeAlbum(ctx, "user_2", "alb_1"))
	ok, err = g.HasNode(ctx, LabelAlbum, "alb_1")
	assert.NoError(t, err)
	assert.False(t, ok, "album node should go away with its last like")
}

func TestReplaceTrackMoods(t *testing.T) {
	g := newTestGraph(t)
	ctx := context.Background()

	assert.NoError(t, g.MergeNode(ctx, LabelTrack, "trk_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelMood, "mood_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelMood, "mood_2"))
	assert.NoError(t, g.MergeNode(ctx, LabelMood, "mood_3"))

	assert.NoError(t, g.ReplaceTrackMoods(ctx, "trk_1", []string{"mood_1", "mood_2"}))

	moods, err := g.TrackMoods(ctx, "trk_1")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"mood_1", "mood_2"}, moods)

	// Full replace: mood_1 is dropped, mood_3 added.
	assert.NoError(t, g.ReplaceTrackMoods(ctx, "trk_1", []string{"mood_2", "mood_3"}))

	moods, err = g.TrackMoods(ctx, "trk_1")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"mood_2", "mood_3"}, moods)

	tracks, err := g.MoodTracks(ctx, "mood_1")
	assert.NoError(t, err)
	assert.Empty(t, tracks, "reverse set of the removed mood must be swept")
}

func TestDeleteNode_DetachesUser(t *testing.T) {
	g := newTestGraph(t)
	ctx := context.Background()

	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_2"))
	assert.NoError(t, g.MergeNode(ctx, LabelTrack, "trk_1"))
	assert.NoError(t, g.Follow(ctx, "user_1", "user_2"))
	assert.NoError(t, g.LikeTrack(ctx, "user_1", "trk_1"))

	assert.NoError(t, g.DeleteNode(ctx, LabelUser, "user_1"))

	ok, err := g.HasNode(ctx, LabelUser, "user_1")
	assert.NoError(t, err)
	assert.False(t, ok)

	followers, err := g.Followers(ctx, "user_2")
	assert.NoError(t, err)
	assert.Empty(t, followers, "deleted user must be swept from follower sets")

	likers, err := g.TrackLikers(ctx, "trk_1")
	assert.NoError(t, err)
	assert.Empty(t, likers, "deleted user must be swept from liker sets")
}

func TestDeleteNode_DetachesTrack(t *testing.T) {
	g := newTestGraph(t)
	ctx := context.Background()

	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelArtist, "art_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelMood, "mood_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelTrack, "trk_1"))
	assert.NoError(t, g.LikeTrack(ctx, "user_1", "trk_1"))
	assert.NoError(t, g.SetTrackArtist(ctx, "trk_1", "art_1"))
	assert.NoError(t, g.ReplaceTrackMoods(ctx, "trk_1", []string{"mood_1"}))

	assert.NoError(t, g.DeleteNode(ctx, LabelTrack, "trk_1"))

	liked, err := g.LikedTracks(ctx, "user_1")
	assert.NoError(t, err)
	assert.Empty(t, liked)

	artistTracks, err := g.ArtistTracks(ctx, "art_1")
	assert.NoError(t, err)
	assert.Empty(t, artistTracks)

	moodTracks, err := g.MoodTracks(ctx, "mood_1")
	assert.NoError(t, err)
	assert.Empty(t, moodTracks)
}

func TestAllTrackLikeCounts(t *testing.T) {
	g := newTestGraph(t)
	ctx := context.Background()

	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelUser, "user_2"))
	assert.NoError(t, g.MergeNode(ctx, LabelTrack, "trk_1"))
	assert.NoError(t, g.MergeNode(ctx, LabelTrack, "trk_2"))
	assert.NoError(t, g.MergeNode(ctx, LabelTrack, "trk_unliked"))

	assert.NoError(t, g.LikeTrack(ctx, "user_1", "trk_1"))
	assert.NoError(t, g.LikeTrack(ctx, "user_2", "trk_1"))
	assert.NoError(t, g.LikeTrack(ctx, "user_1", "trk_2"))

	counts, err := g.AllTrackLikeCounts(ctx)
	assert.NoError(t, err)
	assert.Len(t, counts, 2)

	byTrack := make(map[string]int)
	for _, c := range counts {
		byTrack[c.TrackID] = c.LikeCount
	}
	assert.Equal(t, 2, byTrack["trk_1"])
	assert.Equal(t, 1, byTrack["trk_2"])
}
