package aggregation

// Labeled is implemented by every aggregation shape. Scalars exposes the plain
// numeric attributes by name; nested aggregations and encoded sequences are not
// part of the labeled view.
type Labeled interface {
	Scalars() map[string]float64
	FieldNames() []string
}

// Fixed-width vectors. Widths are part of the model input contract.
type (
	EncodedTrack  [EncodedTrackLen]float64
	EncodedArtist [EncodedArtistLen]float64
	EncodedAlbum  [EncodedAlbumLen]float64

	FlatTrack  [FlatTrackLen]float64
	FlatArtist [FlatArtistLen]float64
	FlatAlbum  [FlatAlbumLen]float64
	FlatReview [FlatReviewLen]float64
)

const (
	EncodedTrackLen  = 13
	EncodedArtistLen = 16
	EncodedAlbumLen  = 16

	FlatTrackLen  = 15
	FlatArtistLen = 16
	FlatAlbumLen  = 43
	FlatReviewLen = 17

	// TrackProfileLen is the album-level summary of its tracks: the mean encoded
	// track followed by the spread of energy, valence and danceability.
	TrackProfileLen = EncodedTrackLen + 3
)

// TrackAggregation holds the Spotify features of one track.
type TrackAggregation struct {
	Acousticness     float64 `json:"acousticness"`
	Danceability     float64 `json:"danceability"`
	Duration         float64 `json:"duration"`
	Energy           float64 `json:"energy"`
	Explicit         float64 `json:"explicit"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Loudness         float64 `json:"loudness"`
	Mode             float64 `json:"mode"`
	Popularity       float64 `json:"popularity"`
	Speechiness      float64 `json:"speechiness"`
	Tempo            float64 `json:"tempo"`
	TimeSignature    float64 `json:"timeSignature"`
	TrackNumber      float64 `json:"trackNumber"`
	Valence          float64 `json:"valence"`
}

func (a TrackAggregation) Scalars() map[string]float64 {
	return map[string]float64{
		"acousticness":     a.Acousticness,
		"danceability":     a.Danceability,
		"duration":         a.Duration,
		"energy":           a.Energy,
		"explicit":         a.Explicit,
		"instrumentalness": a.Instrumentalness,
		"liveness":         a.Liveness,
		"loudness":         a.Loudness,
		"mode":             a.Mode,
		"popularity":       a.Popularity,
		"speechiness":      a.Speechiness,
		"tempo":            a.Tempo,
		"timeSignature":    a.TimeSignature,
		"trackNumber":      a.TrackNumber,
		"valence":          a.Valence,
	}
}

func (TrackAggregation) FieldNames() []string { return clone(TrackFields) }

// ArtistAggregation describes an artist. Genres is a GenreFamilyCount-wide share
// vector; it is a sequence, not a scalar, so it does not show up in Scalars.
type ArtistAggregation struct {
	Active          float64   `json:"active"`
	DiscographySize float64   `json:"discographySize"`
	Lists           float64   `json:"lists"`
	Members         float64   `json:"members"`
	Popularity      float64   `json:"popularity"`
	Shows           float64   `json:"shows"`
	SoloPerformer   float64   `json:"soloPerformer"`
	Genres          []float64 `json:"genres"`
}

func (a ArtistAggregation) Scalars() map[string]float64 {
	return map[string]float64{
		"active":          a.Active,
		"discographySize": a.DiscographySize,
		"lists":           a.Lists,
		"members":         a.Members,
		"popularity":      a.Popularity,
		"shows":           a.Shows,
		"soloPerformer":   a.SoloPerformer,
	}
}

func (ArtistAggregation) FieldNames() []string { return clone(ArtistFields) }

// AlbumAggregation embeds the album's artist and the encoded form of each track.
type AlbumAggregation struct {
	AvailableMarkets float64 `json:"availableMarkets"`
	Copyrights       float64 `json:"copyrights"`
	Issues           float64 `json:"issues"`
	Lists            float64 `json:"lists"`
	OverallRank      float64 `json:"overallRank"`
	Popularity       float64 `json:"popularity"`
	Rating           float64 `json:"rating"`
	Ratings          float64 `json:"ratings"`
	ReleaseYear      float64 `json:"releaseYear"`
	Reviews          float64 `json:"reviews"`
	YearRank         float64 `json:"yearRank"`

	Artist ArtistAggregation `json:"artist"`
	Tracks []EncodedTrack    `json:"tracks"`
}

func (a AlbumAggregation) Scalars() map[string]float64 {
	return map[string]float64{
		"availableMarkets": a.AvailableMarkets,
		"copyrights":       a.Copyrights,
		"issues":           a.Issues,
		"lists":            a.Lists,
		"overallRank":      a.OverallRank,
		"popularity":       a.Popularity,
		"rating":           a.Rating,
		"ratings":          a.Ratings,
		"releaseYear":      a.ReleaseYear,
		"reviews":          a.Reviews,
		"yearRank":         a.YearRank,
	}
}

func (AlbumAggregation) FieldNames() []string { return clone(AlbumFields) }

// ReviewAggregation is the reviewed album's aggregation plus how far the
// reviewer's score sits from the album's community rating.
type ReviewAggregation struct {
	AlbumAggregation
	UserDisagreement float64 `json:"userDisagreement"`
}

func (a ReviewAggregation) Scalars() map[string]float64 {
	out := a.AlbumAggregation.Scalars()
	out["userDisagreement"] = a.UserDisagreement
	return out
}

func (ReviewAggregation) FieldNames() []string { return clone(ReviewFields) }

// ProfileAggregation summarises a user together with their favorite artists and reviews.
type ProfileAggregation struct {
	Age    float64 `json:"age"`
	Gender float64 `json:"gender"`

	FavoriteArtists []ArtistAggregation `json:"favoriteArtists"`
	Reviews         []ReviewAggregation `json:"reviews"`
}

func (a ProfileAggregation) Scalars() map[string]float64 {
	return map[string]float64{
		"age":    a.Age,
		"gender": a.Gender,
	}
}

func (ProfileAggregation) FieldNames() []string { return clone(ProfileFields) }

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
