package postgres

// SQL for the muCritic catalog. Every fetch selects by primary key or by the
// owning foreign key; relation loading is done with one query per relation.

const (
	albumColumns = `
			a.id, a.name, COALESCE(a.spotify_id, ''), COALESCE(a.spotify_album_type, ''),
			a.available_markets, a.copyrights, a.popularity, a.release_year,
			a.issues, a.lists, a.overall_rank, a.rating_rym, a.ratings,
			a.reviews, a.year_rank, a.artist_id`

	artistColumns = `
			ar.id, ar.name, COALESCE(ar.spotify_id, ''), ar.active,
			ar.discography_size, ar.lists, ar.members, ar.shows,
			ar.solo_performer, ar.popularity`

	// has_features is false when no audio analysis row exists; the feature
	// columns are then zero and must be ignored.
	trackColumns = `
			t.id, COALESCE(t.spotify_id, ''), t.name, t.album_id, t.track_number,
			t.explicit, t.duration, t.popularity,
			f.track_id IS NOT NULL AS has_features,
			COALESCE(f.acousticness, 0), COALESCE(f.danceability, 0),
			COALESCE(f.energy, 0), COALESCE(f.instrumentalness, 0),
			COALESCE(f.liveness, 0), COALESCE(f.loudness, 0), COALESCE(f.mode, 0),
			COALESCE(f.speechiness, 0), COALESCE(f.tempo, 0),
			COALESCE(f.time_signature, 0), COALESCE(f.valence, 0)`

	queryFetchTrack = `
		SELECT` + trackColumns + `
		FROM track t
		LEFT JOIN track_audio_features f ON f.track_id = t.id
		WHERE t.id = $1
	`

	queryFetchAlbumTracks = `
		SELECT` + trackColumns + `
		FROM track t
		LEFT JOIN track_audio_features f ON f.track_id = t.id
		WHERE t.album_id = $1
		ORDER BY t.track_number ASC, t.id ASC
	`

	queryFetchArtist = `
		SELECT` + artistColumns + `
		FROM artist ar
		WHERE ar.id = $1
	`

	queryFetchArtistGenres = `
		SELECT g.id, g.name
		FROM spotify_genre g
		JOIN artist_spotify_genres ag ON ag.spotify_genre_id = g.id
		WHERE ag.artist_id = $1
		ORDER BY g.name ASC
	`

	// queryFetchAlbum applies an optional relation filter:
	// $2 requires a Spotify match, $3 (when non-empty) pins the Spotify album type.
	queryFetchAlbum = `
		SELECT` + albumColumns + `
		FROM album a
		WHERE a.id = $1
		  AND (NOT $2::boolean OR COALESCE(a.spotify_id, '') <> '')
		  AND ($3::text = '' OR a.spotify_album_type = $3::text)
	`

	queryFetchReview = `
		SELECT r.id, r.profile_id, r.album_id, r.score
		FROM review r
		WHERE r.id = $1
	`

	queryFetchProfile = `
		SELECT p.id, p.name, p.age, p.gender, p.url_rym
		FROM profile p
		WHERE p.id = $1
	`

	queryFetchProfileReviews = `
		SELECT r.id, r.profile_id, r.album_id, r.score
		FROM review r
		WHERE r.profile_id = $1
		ORDER BY r.id ASC
	`

	queryFetchFavoriteArtists = `
		SELECT` + artistColumns + `
		FROM artist ar
		JOIN profile_favorite_artists pf ON pf.artist_id = ar.id
		WHERE pf.profile_id = $1
		ORDER BY ar.id ASC
	`

	querySchemaCheck = `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_name IN ('profile', 'review', 'album', 'artist', 'track')
	`
)
