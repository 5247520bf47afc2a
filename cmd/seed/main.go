package main

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"moodwave/internal/entity"
	"moodwave/internal/repo/graph"
	"moodwave/internal/repo/persistent"
	"moodwave/pkg/cache"
	"moodwave/pkg/config"
	"moodwave/pkg/database"
	"moodwave/pkg/logger"
)

type moodSeed struct {
	name        string
	description string
	keywords    []string
}

var moodSeeds = []moodSeed{
	{"Happy", "Upbeat and joyful", []string{"joy", "upbeat", "cheerful"}},
	{"Sad", "Melancholy and sorrowful", []string{"sorrow", "tears", "blue"}},
	{"Energetic", "High energy and driving", []string{"energy", "fast", "pump"}},
	{"Calm", "Relaxed and soothing", []string{"relax", "soothing", "quiet"}},
	{"Romantic", "Love and affection", []string{"love", "tender", "passion"}},
	{"Aggressive", "Hard and confrontational", []string{"hard", "anger", "loud"}},
	{"Melancholic", "Wistful and reflective sadness", []string{"wistful", "longing", "reflective"}},
	{"Uplifting", "Inspiring and positive", []string{"inspire", "hope", "rise"}},
	{"Dark", "Brooding and ominous", []string{"brooding", "ominous", "shadow"}},
	{"Peaceful", "Serene and tranquil", []string{"serene", "tranquil", "gentle"}},
	{"Intense", "Powerful emotional weight", []string{"powerful", "heavy", "gripping"}},
	{"Dreamy", "Ethereal and floating", []string{"ethereal", "float", "haze"}},
	{"Mysterious", "Enigmatic and curious", []string{"enigma", "curious", "strange"}},
	{"Rebellious", "Defiant and raw", []string{"defiant", "raw", "punk"}},
	{"Powerful", "Commanding and strong", []string{"strong", "commanding", "bold"}},
	{"Catchy", "Memorable hooks", []string{"hook", "memorable", "sing-along"}},
	{"Chill", "Laid back and easy", []string{"laid-back", "easy", "mellow"}},
	{"Sunny", "Bright summer feeling", []string{"bright", "summer", "warm"}},
	{"Epic", "Grand and cinematic", []string{"grand", "cinematic", "huge"}},
	{"Classic", "Timeless and enduring", []string{"timeless", "enduring", "vintage"}},
	{"Dramatic", "Theatrical highs and lows", []string{"theatrical", "tension", "swell"}},
	{"Groovy", "Rhythmic and danceable", []string{"rhythm", "dance", "funk"}},
	{"Atmospheric", "Textured soundscapes", []string{"texture", "soundscape", "ambient"}},
	{"Technical", "Complex musicianship", []string{"complex", "virtuoso", "precise"}},
}

type trackSeed struct {
	title    string
	artist   string
	album    string
	genre    string
	duration int
	moods    []string
}

type artistSeed struct {
	name   string
	genre  string
	origin string
	formed int
}

type albumSeed struct {
	title    string
	artist   string
	year     int
	genre    string
	tracks   int
	duration int
}

var artistSeeds = []artistSeed{
	{"Queen", "Rock", "United Kingdom", 1970},
	{"Daft Punk", "Electronic", "France", 1993},
	{"Miles Davis", "Jazz", "United States", 1944},
	{"Radiohead", "Alternative", "United Kingdom", 1985},
	{"Nina Simone", "Soul", "United States", 1954},
	{"Kraftwerk", "Electronic", "Germany", 1970},
	{"Led Zeppelin", "Rock", "United Kingdom", 1968},
	{"Billie Holiday", "Jazz", "United States", 1930},
	{"Tame Impala", "Psychedelic", "Australia", 2007},
	{"Metallica", "Metal", "United States", 1981},
	{"Norah Jones", "Jazz", "United States", 1999},
	{"The Prodigy", "Electronic", "United Kingdom", 1990},
}

var albumSeeds = []albumSeed{
	{"A Night at the Opera", "Queen", 1975, "Rock", 12, 43},
	{"Discovery", "Daft Punk", 2001, "Electronic", 14, 61},
	{"Kind of Blue", "Miles Davis", 1959, "Jazz", 5, 46},
	{"OK Computer", "Radiohead", 1997, "Alternative", 12, 53},
	{"I Put a Spell on You", "Nina Simone", 1965, "Soul", 12, 35},
	{"Trans-Europe Express", "Kraftwerk", 1977, "Electronic", 7, 43},
	{"Led Zeppelin IV", "Led Zeppelin", 1971, "Rock", 8, 42},
	{"Currents", "Tame Impala", 2015, "Psychedelic", 13, 51},
	{"Master of Puppets", "Metallica", 1986, "Metal", 8, 55},
	{"Come Away with Me", "Norah Jones", 2002, "Jazz", 14, 45},
}

var trackSeeds = []trackSeed{
	{"Bohemian Rhapsody", "Queen", "A Night at the Opera", "Rock", 355, []string{"Epic", "Dramatic", "Classic"}},
	{"Love of My Life", "Queen", "A Night at the Opera", "Rock", 217, []string{"Romantic", "Sad", "Classic"}},
	{"One Vision", "Queen", "", "Rock", 250, []string{"Energetic", "Powerful"}},
	{"Harder, Better, Faster, Stronger", "Daft Punk", "Discovery", "Electronic", 224, []string{"Energetic", "Catchy", "Groovy"}},
	{"Digital Love", "Daft Punk", "Discovery", "Electronic", 301, []string{"Romantic", "Dreamy", "Groovy"}},
	{"Something About Us", "Daft Punk", "Discovery", "Electronic", 232, []string{"Romantic", "Chill"}},
	{"So What", "Miles Davis", "Kind of Blue", "Jazz", 562, []string{"Calm", "Classic", "Chill"}},
	{"Blue in Green", "Miles Davis", "Kind of Blue", "Jazz", 337, []string{"Melancholic", "Peaceful", "Calm"}},
	{"Paranoid Android", "Radiohead", "OK Computer", "Alternative", 383, []string{"Dark", "Dramatic", "Intense"}},
	{"No Surprises", "Radiohead", "OK Computer", "Alternative", 229, []string{"Sad", "Peaceful", "Dreamy"}},
	{"Karma Police", "Radiohead", "OK Computer", "Alternative", 261, []string{"Melancholic", "Mysterious"}},
	{"Feeling Good", "Nina Simone", "I Put a Spell on You", "Soul", 177, []string{"Uplifting", "Powerful", "Classic"}},
	{"I Put a Spell on You", "Nina Simone", "I Put a Spell on You", "Soul", 155, []string{"Intense", "Dramatic", "Romantic"}},
	{"Trans-Europe Express", "Kraftwerk", "Trans-Europe Express", "Electronic", 407, []string{"Atmospheric", "Mysterious", "Technical"}},
	{"Stairway to Heaven", "Led Zeppelin", "Led Zeppelin IV", "Rock", 482, []string{"Epic", "Classic", "Dramatic"}},
	{"Black Dog", "Led Zeppelin", "Led Zeppelin IV", "Rock", 296, []string{"Energetic", "Aggressive", "Groovy"}},
	{"Strange Fruit", "Billie Holiday", "", "Jazz", 202, []string{"Sad", "Dark", "Intense"}},
	{"The Less I Know the Better", "Tame Impala", "Currents", "Psychedelic", 216, []string{"Groovy", "Catchy", "Dreamy"}},
	{"Let It Happen", "Tame Impala", "Currents", "Psychedelic", 467, []string{"Dreamy", "Atmospheric", "Epic"}},
	{"Master of Puppets", "Metallica", "Master of Puppets", "Metal", 515, []string{"Aggressive", "Intense", "Technical"}},
	{"Battery", "Metallica", "Master of Puppets", "Metal", 312, []string{"Aggressive", "Energetic", "Rebellious"}},
	{"Don't Know Why", "Norah Jones", "Come Away with Me", "Jazz", 186, []string{"Calm", "Romantic", "Chill"}},
	{"Firestarter", "The Prodigy", "", "Electronic", 280, []string{"Aggressive", "Energetic", "Rebellious"}},
}

type userSeed struct {
	name   string
	email  string
	genres []string
	moods  []string
}

var userSeeds = []userSeed{
	{"Alice Harmon", "alice@moodwave.local", []string{"Rock", "Jazz"}, []string{"Happy", "Energetic", "Classic"}},
	{"Bruno Silva", "bruno@moodwave.local", []string{"Electronic"}, []string{"Groovy", "Chill", "Dreamy"}},
	{"Chloe Wang", "chloe@moodwave.local", []string{"Jazz", "Soul"}, []string{"Calm", "Romantic", "Peaceful"}},
	{"Dmitri Volkov", "dmitri@moodwave.local", []string{"Metal", "Rock"}, []string{"Aggressive", "Intense", "Epic"}},
	{"Emma Novak", "emma@moodwave.local", []string{"Alternative", "Psychedelic"}, []string{"Melancholic", "Atmospheric", "Mysterious"}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	ctx := context.Background()
	graphAdapter := graph.NewRedisGraph(redisClient)

	userRepo := persistent.NewUserRepository(db)
	artistRepo := persistent.NewArtistRepository(db)
	albumRepo := persistent.NewAlbumRepository(db)
	trackRepo := persistent.NewTrackRepository(db)
	moodRepo := persistent.NewMoodRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)

	if moods, err := moodRepo.List(); err == nil && len(moods) > 0 {
		log.Info("Database already seeded, nothing to do")
		return
	}

	// Mood vocabulary
	for _, m := range moodSeeds {
		mood := &entity.Mood{Name: m.name, Description: m.description, Keywords: m.keywords}
		if err := moodRepo.Create(mood); err != nil {
			panic(err)
		}
		mustMerge(graphAdapter.MergeNode(ctx, graph.LabelMood, mood.MoodID))
	}
	log.Info("Seeded %d moods", len(moodSeeds))

	// Users: admin plus demo accounts, all with the same demo password
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	admin := &entity.User{
		Name:           cfg.AdminName,
		Email:          cfg.AdminEmail,
		Password:       string(hashed),
		Role:           entity.RoleAdmin,
		IsActive:       true,
		FavoriteGenres: []string{},
		PreferredMoods: []string{},
		Following:      []string{},
	}
	if err := userRepo.Create(admin); err != nil {
		panic(err)
	}
	mustMerge(graphAdapter.MergeNode(ctx, graph.LabelUser, admin.UserID))

	users := make([]*entity.User, 0, len(userSeeds))
	for _, u := range userSeeds {
		user := &entity.User{
			Name:           u.name,
			Email:          u.email,
			Password:       string(hashed),
			Role:           entity.RoleUser,
			IsActive:       true,
			FavoriteGenres: u.genres,
			PreferredMoods: u.moods,
			Following:      []string{},
		}
		if err := userRepo.Create(user); err != nil {
			panic(err)
		}
		mustMerge(graphAdapter.MergeNode(ctx, graph.LabelUser, user.UserID))
		users = append(users, user)
	}
	log.Info("Seeded %d users", len(users)+1)

	// Artists
	artistsByName := make(map[string]*entity.Artist, len(artistSeeds))
	for _, a := range artistSeeds {
		artist := &entity.Artist{
			Name:       a.name,
			Genre:      a.genre,
			Origin:     a.origin,
			FormedYear: a.formed,
			CreatedBy:  admin.UserID,
		}
		if err := artistRepo.Create(artist); err != nil {
			panic(err)
		}
		mustMerge(graphAdapter.MergeNode(ctx, graph.LabelArtist, artist.ArtistID))
		artistsByName[a.name] = artist
	}
	log.Info("Seeded %d artists", len(artistSeeds))

	// Albums
	albumsByTitle := make(map[string]*entity.Album, len(albumSeeds))
	for _, a := range albumSeeds {
		album := &entity.Album{
			ArtistID:    artistsByName[a.artist].ArtistID,
			Title:       a.title,
			ReleaseYear: a.year,
			Genre:       a.genre,
			TrackCount:  a.tracks,
			DurationMin: a.duration,
			CreatedBy:   admin.UserID,
		}
		if err := albumRepo.Create(album); err != nil {
			panic(err)
		}
		mustMerge(graphAdapter.MergeNode(ctx, graph.LabelAlbum, album.AlbumID))
		albumsByTitle[a.title] = album
	}
	log.Info("Seeded %d albums", len(albumSeeds))

	// Tracks with PERFORMED_BY and HAS_MOOD edges
	moodIDsByName := make(map[string]string, len(moodSeeds))
	moods, err := moodRepo.List()
	if err != nil {
		panic(err)
	}
	for _, m := range moods {
		moodIDsByName[m.Name] = m.MoodID
	}

	tracks := make([]*entity.Track, 0, len(trackSeeds))
	for _, t := range trackSeeds {
		albumID := ""
		if t.album != "" {
			albumID = albumsByTitle[t.album].AlbumID
		}
		track := &entity.Track{
			Title:       t.title,
			ArtistID:    artistsByName[t.artist].ArtistID,
			AlbumID:     albumID,
			DurationSec: t.duration,
			Genre:       t.genre,
			Mood:        t.moods,
			CreatedBy:   admin.UserID,
		}
		if err := trackRepo.Create(track); err != nil {
			panic(err)
		}
		mustMerge(graphAdapter.MergeNode(ctx, graph.LabelTrack, track.TrackID))
		mustMerge(graphAdapter.SetTrackArtist(ctx, track.TrackID, track.ArtistID))

		moodIDs := make([]string, 0, len(t.moods))
		for _, name := range t.moods {
			moodIDs = append(moodIDs, moodIDsByName[name])
		}
		mustMerge(graphAdapter.ReplaceTrackMoods(ctx, track.TrackID, moodIDs))
		tracks = append(tracks, track)
	}
	log.Info("Seeded %d tracks", len(tracks))

	// Demo likes and follows so recommendations have data to chew on
	for i, user := range users {
		for j := i; j < len(tracks); j += len(users) {
			mustMerge(graphAdapter.LikeTrack(ctx, user.UserID, tracks[j].TrackID))
			if tracks[j].AlbumID != "" {
				mustMerge(graphAdapter.LikeAlbum(ctx, user.UserID, tracks[j].AlbumID))
			}
		}
	}
	for i, user := range users {
		target := users[(i+1)%len(users)]
		user.Following = append(user.Following, target.UserID)
		if err := userRepo.Update(user); err != nil {
			panic(err)
		}
		mustMerge(graphAdapter.Follow(ctx, user.UserID, target.UserID))
	}

	// A couple of playlists
	playlists := []struct {
		owner  *entity.User
		name   string
		desc   string
		public bool
		picks  []int
	}{
		{users[0], "Morning Classics", "Timeless songs to start the day", true, []int{0, 6, 11, 14}},
		{users[1], "Late Night Grooves", "Electronic cuts for after midnight", true, []int{3, 4, 13, 17}},
		{users[3], "Heavy Rotation", "Loud and proud", false, []int{15, 19, 20, 22}},
	}
	for _, p := range playlists {
		trackIDs := make([]string, 0, len(p.picks))
		for _, idx := range p.picks {
			trackIDs = append(trackIDs, tracks[idx].TrackID)
		}
		playlist := &entity.Playlist{
			UserID:      p.owner.UserID,
			Name:        p.name,
			Description: p.desc,
			TrackIDs:    trackIDs,
			IsPublic:    p.public,
			CreatedBy:   p.owner.UserID,
		}
		if err := playlistRepo.Create(playlist); err != nil {
			panic(err)
		}
	}
	log.Info("Seeded %d playlists", len(playlists))

	log.Info("Database seeded successfully!")
}

func mustMerge(err error) {
	if err != nil {
		panic(err)
	}
}
