package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"moodwave/internal/entity"
	"moodwave/internal/repo/graph"
	"moodwave/internal/repo/persistent"
	"moodwave/pkg/logger"
)

const maxRecommendations = 10

// RecommendationResult is the full response of the recommendation endpoint.
// Either Algorithm or Message is set, never both.
type RecommendationResult struct {
	UserID          string                  `json:"userId"`
	Algorithm       string                  `json:"algorithm,omitempty"`
	Message         string                  `json:"message,omitempty"`
	LikedCount      int                     `json:"likedCount,omitempty"`
	PreferredMoods  []string                `json:"preferredMoods,omitempty"`
	Recommendations []entity.Recommendation `json:"recommendations"`
}

type RecommendUseCase interface {
	Recommend(userID string) (*RecommendationResult, error)
}

type recommendUseCase struct {
	graph     graph.Adapter
	trackRepo persistent.TrackRepository
	moodRepo  persistent.MoodRepository
	userRepo  persistent.UserRepository
	logger    *logger.Logger
}

func NewRecommendUseCase(
	graphAdapter graph.Adapter,
	trackRepo persistent.TrackRepository,
	moodRepo persistent.MoodRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) RecommendUseCase {
	return &recommendUseCase{
		graph:     graphAdapter,
		trackRepo: trackRepo,
		moodRepo:  moodRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Recommend scores tracks by mood overlap. Both hops run against the graph:
// liked tracks -> HAS_MOOD -> moods -> HAS_MOOD -> candidate tracks. The
// document store only enriches the scored ids afterward. Likes drive the
// scoring when present; otherwise the user's preferred moods do. Computed
// fresh on every call, no caching.
func (uc *recommendUseCase) Recommend(userID string) (*RecommendationResult, error) {
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	likedIDs, err := uc.graph.LikedTracks(context.Background(), userID)
	if err != nil {
		return nil, err
	}

	if len(likedIDs) > 0 {
		return uc.fromLikes(userID, likedIDs)
	}
	return uc.fromPreferredMoods(userID)
}

// fromLikes recommends tracks sharing HAS_MOOD edges with the user's liked
// tracks, excluding the liked tracks themselves.
func (uc *recommendUseCase) fromLikes(userID string, likedIDs []string) (*RecommendationResult, error) {
	ctx := context.Background()

	moodSet := make(map[string]bool)
	for _, trackID := range likedIDs {
		moodIDs, err := uc.graph.TrackMoods(ctx, trackID)
		if err != nil {
			return nil, err
		}
		for _, id := range moodIDs {
			moodSet[id] = true
		}
	}
	if len(moodSet) == 0 {
		return &RecommendationResult{
			UserID:          userID,
			Message:         "Your liked tracks have no moods to learn from yet",
			Recommendations: []entity.Recommendation{},
		}, nil
	}

	likedSet := make(map[string]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedSet[id] = true
	}

	// Second hop: every track reachable from one of the liked moods scores a
	// point per shared mood.
	scores := make(map[string]int)
	for moodID := range moodSet {
		trackIDs, err := uc.graph.MoodTracks(ctx, moodID)
		if err != nil {
			return nil, err
		}
		for _, id := range trackIDs {
			if !likedSet[id] {
				scores[id]++
			}
		}
	}

	recs, err := uc.enrich(scores, func(score int) string {
		return fmt.Sprintf("Shares %d mood(s) with your favorite songs", score)
	})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return &RecommendationResult{
			UserID:          userID,
			Message:         "No new tracks match the moods you like yet",
			Recommendations: []entity.Recommendation{},
		}, nil
	}

	return &RecommendationResult{
		UserID:          userID,
		Algorithm:       "mood-overlap from likes",
		LikedCount:      len(likedIDs),
		Recommendations: recs,
	}, nil
}

// fromPreferredMoods is the cold-start path: resolve the mood names the user
// picked at registration and score tracks by their HAS_MOOD edges to them.
func (uc *recommendUseCase) fromPreferredMoods(userID string) (*RecommendationResult, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	preferred := make([]string, 0, len(user.PreferredMoods))
	moodIDs := make([]string, 0, len(user.PreferredMoods))
	for _, name := range user.PreferredMoods {
		mood, err := uc.moodRepo.GetByName(name)
		if err != nil {
			continue
		}
		preferred = append(preferred, name)
		moodIDs = append(moodIDs, mood.MoodID)
	}
	if len(preferred) == 0 {
		return &RecommendationResult{
			UserID:          userID,
			Message:         "Like some tracks or set preferred moods to get recommendations",
			Recommendations: []entity.Recommendation{},
		}, nil
	}

	ctx := context.Background()
	scores := make(map[string]int)
	for _, moodID := range moodIDs {
		trackIDs, err := uc.graph.MoodTracks(ctx, moodID)
		if err != nil {
			return nil, err
		}
		for _, id := range trackIDs {
			scores[id]++
		}
	}

	reason := fmt.Sprintf("Matches your preferred moods (%s)", strings.Join(preferred, ", "))
	recs, err := uc.enrich(scores, func(int) string { return reason })
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return &RecommendationResult{
			UserID:          userID,
			Message:         "No tracks match your preferred moods yet",
			Recommendations: []entity.Recommendation{},
		}, nil
	}

	return &RecommendationResult{
		UserID:          userID,
		Algorithm:       "preferred moods",
		PreferredMoods:  preferred,
		Recommendations: recs,
	}, nil
}

// enrich resolves scored track ids against the document store and builds the
// ranked response. Ids without a backing document are skipped silently; the
// graph may be ahead of or behind the documents.
func (uc *recommendUseCase) enrich(scores map[string]int, reason func(int) string) ([]entity.Recommendation, error) {
	if len(scores) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	tracks, err := uc.trackRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	recs := make([]entity.Recommendation, 0, len(tracks))
	for _, t := range tracks {
		score := scores[t.TrackID]
		recs = append(recs, entity.Recommendation{
			Track:       *t,
			SharedMoods: score,
			Reason:      reason(score),
		})
	}
	return rankAndCap(recs), nil
}

// rankAndCap sorts by score descending with a deterministic trackId ascending
// tie-break and keeps the top 10.
func rankAndCap(recs []entity.Recommendation) []entity.Recommendation {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].SharedMoods != recs[j].SharedMoods {
			return recs[i].SharedMoods > recs[j].SharedMoods
		}
		return recs[i].TrackID < recs[j].TrackID
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
