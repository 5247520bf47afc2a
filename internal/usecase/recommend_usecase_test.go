package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"moodwave/internal/entity"
	"moodwave/internal/repo/graph"
	"moodwave/pkg/logger"
)

type recommendFixture struct {
	uc        RecommendUseCase
	graph     graph.Adapter
	trackRepo *MockTrackRepository
	moodRepo  *MockMoodRepository
	userRepo  *MockUserRepository
}

func newRecommendFixture(t *testing.T) *recommendFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	g := graph.NewRedisGraph(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	trackRepo := new(MockTrackRepository)
	moodRepo := new(MockMoodRepository)
	userRepo := new(MockUserRepository)

	return &recommendFixture{
		uc:        NewRecommendUseCase(g, trackRepo, moodRepo, userRepo, logger.New()),
		graph:     g,
		trackRepo: trackRepo,
		moodRepo:  moodRepo,
		userRepo:  userRepo,
	}
}

func (f *recommendFixture) likeTracks(t *testing.T, userID string, trackIDs ...string) {
	t.Helper()
	ctx := context.Background()
	assert.NoError(t, f.graph.MergeNode(ctx, graph.LabelUser, userID))
	for _, id := range trackIDs {
		assert.NoError(t, f.graph.MergeNode(ctx, graph.LabelTrack, id))
		assert.NoError(t, f.graph.LikeTrack(ctx, userID, id))
	}
}

func (f *recommendFixture) trackWithMoods(t *testing.T, trackID string, moodIDs ...string) {
	t.Helper()
	ctx := context.Background()
	assert.NoError(t, f.graph.MergeNode(ctx, graph.LabelTrack, trackID))
	for _, id := range moodIDs {
		assert.NoError(t, f.graph.MergeNode(ctx, graph.LabelMood, id))
	}
	assert.NoError(t, f.graph.ReplaceTrackMoods(ctx, trackID, moodIDs))
}

// matchIDs matches a []string argument regardless of order; the candidate set
// comes out of a map.
func matchIDs(expected ...string) interface{} {
	return mock.MatchedBy(func(ids []string) bool {
		if len(ids) != len(expected) {
			return false
		}
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			seen[id] = true
		}
		for _, id := range expected {
			if !seen[id] {
				return false
			}
		}
		return true
	})
}

func TestRecommend_UserNotFound(t *testing.T) {
	f := newRecommendFixture(t)
	f.userRepo.On("GetByID", "user_ghost").Return(nil, errors.New("record not found"))

	_, err := f.uc.Recommend("user_ghost")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRecommend_FromLikes_ScoresByMoodOverlap(t *testing.T) {
	f := newRecommendFixture(t)
	f.likeTracks(t, "user_1", "trk_liked")
	f.trackWithMoods(t, "trk_liked", "mood_1", "mood_2")
	f.trackWithMoods(t, "trk_both", "mood_1", "mood_2")
	f.trackWithMoods(t, "trk_one", "mood_1")

	f.userRepo.On("GetByID", "user_1").Return(&entity.User{UserID: "user_1"}, nil)
	f.trackRepo.On("GetByIDs", matchIDs("trk_both", "trk_one")).
		Return([]*entity.Track{
			{TrackID: "trk_both", Title: "Both", ArtistID: "art_1"},
			{TrackID: "trk_one", Title: "One", ArtistID: "art_1"},
		}, nil)

	result, err := f.uc.Recommend("user_1")

	assert.NoError(t, err)
	assert.Equal(t, "mood-overlap from likes", result.Algorithm)
	assert.Equal(t, 1, result.LikedCount)
	assert.Len(t, result.Recommendations, 2)
	assert.Equal(t, "trk_both", result.Recommendations[0].TrackID)
	assert.Equal(t, 2, result.Recommendations[0].SharedMoods)
	assert.Equal(t, "trk_one", result.Recommendations[1].TrackID)
	assert.Equal(t, 1, result.Recommendations[1].SharedMoods)
	assert.Equal(t, "Shares 2 mood(s) with your favorite songs", result.Recommendations[0].Reason)
}

func TestRecommend_FromLikes_ExcludesLikedTracks(t *testing.T) {
	f := newRecommendFixture(t)
	f.likeTracks(t, "user_1", "trk_a", "trk_b")
	f.trackWithMoods(t, "trk_a", "mood_1")
	f.trackWithMoods(t, "trk_b", "mood_1")

	f.userRepo.On("GetByID", "user_1").Return(&entity.User{UserID: "user_1"}, nil)

	result, err := f.uc.Recommend("user_1")

	assert.NoError(t, err)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, "No new tracks match the moods you like yet", result.Message)
	f.trackRepo.AssertNotCalled(t, "GetByIDs", mock.Anything)
}

func TestRecommend_UsesGraphMoodEdges(t *testing.T) {
	f := newRecommendFixture(t)
	f.likeTracks(t, "user_1", "trk_liked")
	f.trackWithMoods(t, "trk_liked", "mood_1")
	f.trackWithMoods(t, "trk_cand", "mood_1")

	f.userRepo.On("GetByID", "user_1").Return(&entity.User{UserID: "user_1"}, nil)
	// The candidate's document carries no mood array at all: the shared-mood
	// path lives in the graph, the document store only enriches the result.
	f.trackRepo.On("GetByIDs", matchIDs("trk_cand")).
		Return([]*entity.Track{{TrackID: "trk_cand", Title: "Candidate", ArtistID: "art_1"}}, nil)

	result, err := f.uc.Recommend("user_1")

	assert.NoError(t, err)
	assert.Equal(t, "mood-overlap from likes", result.Algorithm)
	assert.Len(t, result.Recommendations, 1)
	assert.Equal(t, "trk_cand", result.Recommendations[0].TrackID)
	assert.Equal(t, 1, result.Recommendations[0].SharedMoods)
}

func TestRecommend_LikedTracksWithoutMoodEdges(t *testing.T) {
	f := newRecommendFixture(t)
	f.likeTracks(t, "user_1", "trk_liked")

	f.userRepo.On("GetByID", "user_1").Return(&entity.User{UserID: "user_1"}, nil)

	result, err := f.uc.Recommend("user_1")

	assert.NoError(t, err)
	assert.Equal(t, "Your liked tracks have no moods to learn from yet", result.Message)
	assert.Empty(t, result.Recommendations)
}

func TestRecommend_TieBreaksByTrackID(t *testing.T) {
	f := newRecommendFixture(t)
	f.likeTracks(t, "user_1", "trk_liked")
	f.trackWithMoods(t, "trk_liked", "mood_1")
	f.trackWithMoods(t, "trk_zzz", "mood_1")
	f.trackWithMoods(t, "trk_aaa", "mood_1")
	f.trackWithMoods(t, "trk_mmm", "mood_1")

	f.userRepo.On("GetByID", "user_1").Return(&entity.User{UserID: "user_1"}, nil)
	f.trackRepo.On("GetByIDs", matchIDs("trk_zzz", "trk_aaa", "trk_mmm")).
		Return([]*entity.Track{
			{TrackID: "trk_zzz"}, {TrackID: "trk_aaa"}, {TrackID: "trk_mmm"},
		}, nil)

	result, err := f.uc.Recommend("user_1")

	assert.NoError(t, err)
	assert.Len(t, result.Recommendations, 3)
	assert.Equal(t, "trk_aaa", result.Recommendations[0].TrackID)
	assert.Equal(t, "trk_mmm", result.Recommendations[1].TrackID)
	assert.Equal(t, "trk_zzz", result.Recommendations[2].TrackID)
}

func TestRecommend_CapsAtTen(t *testing.T) {
	f := newRecommendFixture(t)
	f.likeTracks(t, "user_1", "trk_liked")
	f.trackWithMoods(t, "trk_liked", "mood_1")

	ids := make([]string, 0, 15)
	docs := make([]*entity.Track, 0, 15)
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("trk_%02d", i)
		f.trackWithMoods(t, id, "mood_1")
		ids = append(ids, id)
		docs = append(docs, &entity.Track{TrackID: id})
	}

	f.userRepo.On("GetByID", "user_1").Return(&entity.User{UserID: "user_1"}, nil)
	f.trackRepo.On("GetByIDs", matchIDs(ids...)).Return(docs, nil)

	result, err := f.uc.Recommend("user_1")

	assert.NoError(t, err)
	assert.Len(t, result.Recommendations, 10)
}

func TestRecommend_SkipsDanglingCandidates(t *testing.T) {
	f := newRecommendFixture(t)
	f.likeTracks(t, "user_1", "trk_liked")
	f.trackWithMoods(t, "trk_liked", "mood_1")
	f.trackWithMoods(t, "trk_stale", "mood_1")

	f.userRepo.On("GetByID", "user_1").Return(&entity.User{UserID: "user_1"}, nil)
	// The graph still holds trk_stale but its document is gone.
	f.trackRepo.On("GetByIDs", matchIDs("trk_stale")).Return([]*entity.Track{}, nil)

	result, err := f.uc.Recommend("user_1")

	assert.NoError(t, err)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, "No new tracks match the moods you like yet", result.Message)
}

func TestRecommend_FallsBackToPreferredMoods(t *testing.T) {
	f := newRecommendFixture(t)
	f.trackWithMoods(t, "trk_1", "mood_1")

	user := &entity.User{UserID: "user_1", PreferredMoods: []string{"Happy", "Obscure"}}
	f.userRepo.On("GetByID", "user_1").Return(user, nil)
	f.moodRepo.On("GetByName", "Happy").Return(&entity.Mood{MoodID: "mood_1", Name: "Happy"}, nil)
	f.moodRepo.On("GetByName", "Obscure").Return(nil, gorm.ErrRecordNotFound)
	f.trackRepo.On("GetByIDs", matchIDs("trk_1")).
		Return([]*entity.Track{{TrackID: "trk_1", Title: "One", ArtistID: "art_1"}}, nil)

	result, err := f.uc.Recommend("user_1")

	assert.NoError(t, err)
	assert.Equal(t, "preferred moods", result.Algorithm)
	assert.Equal(t, []string{"Happy"}, result.PreferredMoods)
	assert.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Matches your preferred moods (Happy)", result.Recommendations[0].Reason)
}

func TestRecommend_NoLikesNoPreferredMoods(t *testing.T) {
	f := newRecommendFixture(t)

	f.userRepo.On("GetByID", "user_1").Return(&entity.User{UserID: "user_1"}, nil)

	result, err := f.uc.Recommend("user_1")

	assert.NoError(t, err)
	assert.Empty(t, result.Algorithm)
	assert.Equal(t, "Like some tracks or set preferred moods to get recommendations", result.Message)
	assert.NotNil(t, result.Recommendations)
	assert.Empty(t, result.Recommendations)
}
