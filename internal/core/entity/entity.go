package entity

// Entities mirror the rows persisted by the scraper and the Spotify sync jobs.
// They are plain data: the aggregation engine only reads them.
//
// Relation conventions:
//   - a nil to-one pointer (Review.Album, Album.Artist) means "not loaded"
//   - a nil to-many slice (Album.Tracks, Artist.Genres, ...) means "not loaded";
//     a loaded relation with no rows is an empty, non-nil slice
//   - ID == 0 means the entity has no persisted identity (e.g. a track resolved
//     straight from the Spotify API)

// Identifiable is implemented by every entity pointer type.
type Identifiable interface {
	// EntityID returns the persisted id. ok is false for a nil entity or a zero id.
	EntityID() (id int64, ok bool)
}

// AudioFeatures holds Spotify's audio analysis for one track.
type AudioFeatures struct {
	Acousticness     float64 `json:"acousticness"`
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Loudness         float64 `json:"loudness"` // dB, typically -60..0
	Mode             int     `json:"mode"`     // 1 major, 0 minor
	Speechiness      float64 `json:"speechiness"`
	Tempo            float64 `json:"tempo"` // BPM
	TimeSignature    int     `json:"time_signature"`
	Valence          float64 `json:"valence"`
}

// Track is a single album track.
type Track struct {
	ID          int64
	SpotifyID   string
	Name        string
	AlbumID     int64
	TrackNumber int
	Explicit    bool
	Duration    int // milliseconds
	Popularity  int // Spotify popularity, 0..100

	// Features is nil until the Spotify audio analysis has been stored or resolved.
	Features *AudioFeatures
}

func (t *Track) EntityID() (int64, bool) {
	if t == nil || t.ID == 0 {
		return 0, false
	}
	return t.ID, true
}

// SpotifyGenre is a genre tag Spotify attaches to an artist.
type SpotifyGenre struct {
	ID   int64
	Name string
}

// Artist combines Rate Your Music profile data with Spotify popularity.
type Artist struct {
	ID              int64
	Name            string
	SpotifyID       string
	Active          bool
	DiscographySize int
	Lists           int
	Members         int
	Shows           int
	SoloPerformer   bool
	Popularity      int

	Genres []SpotifyGenre
}

func (a *Artist) EntityID() (int64, bool) {
	if a == nil || a.ID == 0 {
		return 0, false
	}
	return a.ID, true
}

// Album carries both Rate Your Music chart data and Spotify catalog data.
type Album struct {
	ID               int64
	Name             string
	SpotifyID        string // empty when not matched against the Spotify catalog
	SpotifyAlbumType string // album | single | compilation
	AvailableMarkets int
	Copyrights       int
	Popularity       int
	ReleaseYear      int
	Issues           int
	Lists            int
	OverallRank      int
	RatingRYM        float64
	Ratings          int
	Reviews          int
	YearRank         int
	ArtistID         int64

	Artist *Artist
	Tracks []Track
}

func (a *Album) EntityID() (int64, bool) {
	if a == nil || a.ID == 0 {
		return 0, false
	}
	return a.ID, true
}

// Review is one profile's rating of an album.
type Review struct {
	ID        int64
	ProfileID int64
	AlbumID   int64
	Score     float64

	Album *Album
}

func (r *Review) EntityID() (int64, bool) {
	if r == nil || r.ID == 0 {
		return 0, false
	}
	return r.ID, true
}

// Profile is a scraped Rate Your Music user.
type Profile struct {
	ID     int64
	Name   string
	Age    int
	Gender bool // true for male
	URLRYM string

	Reviews         []Review
	FavoriteArtists []Artist
}

func (p *Profile) EntityID() (int64, bool) {
	if p == nil || p.ID == 0 {
		return 0, false
	}
	return p.ID, true
}
