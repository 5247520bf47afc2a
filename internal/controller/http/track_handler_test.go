package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"moodwave/internal/entity"
	"moodwave/internal/usecase"
)

// MockTrackUseCase is a mock implementation of TrackUseCase
type MockTrackUseCase struct {
	mock.Mock
}

func (m *MockTrackUseCase) Create(input usecase.TrackInput, creatorID string) (*entity.Track, error) {
	args := m.Called(input, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Track), args.Error(1)
}

func (m *MockTrackUseCase) List(artistID, albumID, genre, mood string, limit, offset int) ([]*entity.Track, error) {
	args := m.Called(artistID, albumID, genre, mood, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Track), args.Error(1)
}

func (m *MockTrackUseCase) Get(trackID string) (*entity.Track, error) {
	args := m.Called(trackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Track), args.Error(1)
}

func (m *MockTrackUseCase) GetByIDs(ids []string) ([]*entity.Track, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Track), args.Error(1)
}

func (m *MockTrackUseCase) Update(trackID, requesterID, requesterRole string, input usecase.TrackUpdateInput) (*entity.Track, error) {
	args := m.Called(trackID, requesterID, requesterRole, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Track), args.Error(1)
}

func (m *MockTrackUseCase) Delete(trackID, requesterID, requesterRole string) error {
	args := m.Called(trackID, requesterID, requesterRole)
	return args.Error(0)
}

func (m *MockTrackUseCase) MoodNames() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ usecase.TrackUseCase = (*MockTrackUseCase)(nil)

func TestCreateTrack_Created(t *testing.T) {
	mockUseCase := new(MockTrackUseCase)
	handler := NewTrackHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/tracks", func(c *gin.Context) {
		c.Set("user_id", "user_1")
		c.Set("user_role", "user")
		handler.Create(c)
	})

	mockUseCase.On("Create", mock.AnythingOfType("usecase.TrackInput"), "user_1").
		Return(&entity.Track{TrackID: "trk_new", Title: "Sunrise", ArtistID: "art_1"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tracks", jsonBody(t, CreateTrackRequest{
		Title:    "Sunrise",
		ArtistID: "art_1",
		Mood:     []string{"Happy"},
	}))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "trk_new")

	mockUseCase.AssertExpectations(t)
}

func TestCreateTrack_UnknownMoodIsBadRequest(t *testing.T) {
	mockUseCase := new(MockTrackUseCase)
	handler := NewTrackHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/tracks", func(c *gin.Context) {
		c.Set("user_id", "user_1")
		handler.Create(c)
	})

	mockUseCase.On("Create", mock.AnythingOfType("usecase.TrackInput"), "user_1").
		Return(nil, fmt.Errorf("%w: unknown mood %q", entity.ErrValidation, "Zesty"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tracks", jsonBody(t, CreateTrackRequest{
		Title:    "Sunrise",
		ArtistID: "art_1",
		Mood:     []string{"Zesty"},
	}))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown mood")
}

func TestGetTrack_NotFound(t *testing.T) {
	mockUseCase := new(MockTrackUseCase)
	handler := NewTrackHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/tracks/:trackId", handler.Get)

	mockUseCase.On("Get", "trk_ghost").
		Return(nil, fmt.Errorf("%w: track trk_ghost", entity.ErrNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tracks/trk_ghost", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTracksByIDs_TrimsAndSkipsBlanks(t *testing.T) {
	mockUseCase := new(MockTrackUseCase)
	handler := NewTrackHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/tracks/byIds/:ids", handler.GetByIDs)

	mockUseCase.On("GetByIDs", []string{"trk_1", "trk_2"}).
		Return([]*entity.Track{{TrackID: "trk_1"}, {TrackID: "trk_2"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tracks/byIds/trk_1,%20trk_2,", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateTrack_NotOwnerIsForbidden(t *testing.T) {
	mockUseCase := new(MockTrackUseCase)
	handler := NewTrackHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/tracks/:trackId", func(c *gin.Context) {
		c.Set("user_id", "user_other")
		c.Set("user_role", "user")
		handler.Update(c)
	})

	mockUseCase.On("Update", "trk_1", "user_other", "user", mock.AnythingOfType("usecase.TrackUpdateInput")).
		Return(nil, fmt.Errorf("%w: not the owner of this track", entity.ErrForbidden))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/tracks/trk_1", bytes.NewBufferString(`{"title":"Hijacked"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListTracks_PassesFilters(t *testing.T) {
	mockUseCase := new(MockTrackUseCase)
	handler := NewTrackHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/tracks", handler.List)

	mockUseCase.On("List", "art_1", "", "", "Happy", 5, 0).
		Return([]*entity.Track{{TrackID: "trk_1"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tracks?artistId=art_1&mood=Happy&limit=5", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var tracks []entity.Track
	json.Unmarshal(w.Body.Bytes(), &tracks)
	assert.Len(t, tracks, 1)
	assert.Equal(t, "trk_1", tracks[0].TrackID)
}

func TestDeleteTrack_OK(t *testing.T) {
	mockUseCase := new(MockTrackUseCase)
	handler := NewTrackHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/tracks/:trackId", func(c *gin.Context) {
		c.Set("user_id", "user_1")
		c.Set("user_role", "user")
		handler.Delete(c)
	})

	mockUseCase.On("Delete", "trk_1", "user_1", "user").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/tracks/trk_1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "track deleted")
}
