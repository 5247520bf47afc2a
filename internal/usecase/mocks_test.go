package usecase

import (
	"github.com/stretchr/testify/mock"

	"moodwave/internal/entity"
	"moodwave/internal/repo/persistent"
)

type MockUserRepository struct {
	mock.Mock
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List(limit, offset int) ([]*entity.User, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockTrackRepository struct {
	mock.Mock
}

var _ persistent.TrackRepository = (*MockTrackRepository)(nil)

func (m *MockTrackRepository) Create(track *entity.Track) error {
	args := m.Called(track)
	return args.Error(0)
}

func (m *MockTrackRepository) GetByID(id string) (*entity.Track, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Track), args.Error(1)
}

func (m *MockTrackRepository) GetByIDs(ids []string) ([]*entity.Track, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Track), args.Error(1)
}

func (m *MockTrackRepository) GetDuplicate(title, artistID, albumID string) (*entity.Track, error) {
	args := m.Called(title, artistID, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Track), args.Error(1)
}

func (m *MockTrackRepository) List(artistID, albumID, genre, mood string, limit, offset int) ([]*entity.Track, error) {
	args := m.Called(artistID, albumID, genre, mood, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Track), args.Error(1)
}

func (m *MockTrackRepository) Update(track *entity.Track) error {
	args := m.Called(track)
	return args.Error(0)
}

func (m *MockTrackRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTrackRepository) RemoveMoodFromAll(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

type MockMoodRepository struct {
	mock.Mock
}

var _ persistent.MoodRepository = (*MockMoodRepository)(nil)

func (m *MockMoodRepository) Create(mood *entity.Mood) error {
	args := m.Called(mood)
	return args.Error(0)
}

func (m *MockMoodRepository) GetByID(id string) (*entity.Mood, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Mood), args.Error(1)
}

func (m *MockMoodRepository) GetByName(name string) (*entity.Mood, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Mood), args.Error(1)
}

func (m *MockMoodRepository) List() ([]*entity.Mood, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Mood), args.Error(1)
}

func (m *MockMoodRepository) Update(mood *entity.Mood) error {
	args := m.Called(mood)
	return args.Error(0)
}

func (m *MockMoodRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockArtistRepository struct {
	mock.Mock
}

var _ persistent.ArtistRepository = (*MockArtistRepository)(nil)

func (m *MockArtistRepository) Create(artist *entity.Artist) error {
	args := m.Called(artist)
	return args.Error(0)
}

func (m *MockArtistRepository) GetByID(id string) (*entity.Artist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Artist), args.Error(1)
}

func (m *MockArtistRepository) GetByName(name string) (*entity.Artist, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Artist), args.Error(1)
}

func (m *MockArtistRepository) List(genre string, limit, offset int) ([]*entity.Artist, error) {
	args := m.Called(genre, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Artist), args.Error(1)
}

func (m *MockArtistRepository) Update(artist *entity.Artist) error {
	args := m.Called(artist)
	return args.Error(0)
}

func (m *MockArtistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockAlbumRepository struct {
	mock.Mock
}

var _ persistent.AlbumRepository = (*MockAlbumRepository)(nil)

func (m *MockAlbumRepository) Create(album *entity.Album) error {
	args := m.Called(album)
	return args.Error(0)
}

func (m *MockAlbumRepository) GetByID(id string) (*entity.Album, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Album), args.Error(1)
}

func (m *MockAlbumRepository) GetByTitleAndArtist(title, artistID string) (*entity.Album, error) {
	args := m.Called(title, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Album), args.Error(1)
}

func (m *MockAlbumRepository) List(artistID, genre string, limit, offset int) ([]*entity.Album, error) {
	args := m.Called(artistID, genre, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Album), args.Error(1)
}

func (m *MockAlbumRepository) Update(album *entity.Album) error {
	args := m.Called(album)
	return args.Error(0)
}

func (m *MockAlbumRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockPlaylistRepository struct {
	mock.Mock
}

var _ persistent.PlaylistRepository = (*MockPlaylistRepository)(nil)

func (m *MockPlaylistRepository) Create(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(id string) (*entity.Playlist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListByUser(userID string, includePrivate bool) ([]*entity.Playlist, error) {
	args := m.Called(userID, includePrivate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListAll(limit, offset int) ([]*entity.Playlist, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListPublic(limit, offset int) ([]*entity.Playlist, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListPublicByUsers(userIDs []string) ([]*entity.Playlist, error) {
	args := m.Called(userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Update(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
