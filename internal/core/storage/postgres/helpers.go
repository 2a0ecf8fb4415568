package postgres

import (
	"fmt"

	"github.com/mucritic/mucritic/internal/core/entity"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTrack(row scanner) (entity.Track, error) {
	var (
		t           entity.Track
		f           entity.AudioFeatures
		hasFeatures bool
	)
	err := row.Scan(
		&t.ID,
		&t.SpotifyID,
		&t.Name,
		&t.AlbumID,
		&t.TrackNumber,
		&t.Explicit,
		&t.Duration,
		&t.Popularity,
		&hasFeatures,
		&f.Acousticness,
		&f.Danceability,
		&f.Energy,
		&f.Instrumentalness,
		&f.Liveness,
		&f.Loudness,
		&f.Mode,
		&f.Speechiness,
		&f.Tempo,
		&f.TimeSignature,
		&f.Valence,
	)
	if err != nil {
		return entity.Track{}, err
	}
	if hasFeatures {
		t.Features = &f
	}
	return t, nil
}

func scanArtist(row scanner) (entity.Artist, error) {
	var a entity.Artist
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.SpotifyID,
		&a.Active,
		&a.DiscographySize,
		&a.Lists,
		&a.Members,
		&a.Shows,
		&a.SoloPerformer,
		&a.Popularity,
	)
	return a, err
}

func scanAlbum(row scanner) (entity.Album, error) {
	var a entity.Album
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.SpotifyID,
		&a.SpotifyAlbumType,
		&a.AvailableMarkets,
		&a.Copyrights,
		&a.Popularity,
		&a.ReleaseYear,
		&a.Issues,
		&a.Lists,
		&a.OverallRank,
		&a.RatingRYM,
		&a.Ratings,
		&a.Reviews,
		&a.YearRank,
		&a.ArtistID,
	)
	return a, err
}

func scanReview(row scanner) (entity.Review, error) {
	var r entity.Review
	err := row.Scan(&r.ID, &r.ProfileID, &r.AlbumID, &r.Score)
	return r, err
}

func scanGenre(row scanner) (entity.SpotifyGenre, error) {
	var g entity.SpotifyGenre
	err := row.Scan(&g.ID, &g.Name)
	return g, err
}

type rowIterator interface {
	scanner
	Next() bool
	Err() error
	Close() error
}

// collect drains rows into a non-nil slice.
func collect[T any](rows rowIterator, scan func(scanner) (T, error), what string) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", what, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", what, err)
	}
	return out, nil
}
