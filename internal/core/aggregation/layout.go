package aggregation

import "math"

// Vector layouts. Every function here is pure and depends only on the shape
// of its input, so the same aggregation always yields the same vector.

// FlattenTrack lays the track scalars out in TrackFields order.
func FlattenTrack(a TrackAggregation) FlatTrack {
	var out FlatTrack
	fillOrdered(out[:], a.Scalars(), TrackFields)
	return out
}

// EncodeTrack keeps the EncodedTrackFields columns of a flat track.
func EncodeTrack(flat FlatTrack) EncodedTrack {
	var out EncodedTrack
	i := 0
	for pos, name := range TrackFields {
		if name == "popularity" || name == "trackNumber" {
			continue
		}
		out[i] = flat[pos]
		i++
	}
	return out
}

// FlattenArtist lays out the artist scalars followed by the genre shares.
// A short or missing genre vector is zero-filled.
func FlattenArtist(a ArtistAggregation) FlatArtist {
	var out FlatArtist
	n := len(ArtistFields)
	fillOrdered(out[:n], a.Scalars(), ArtistFields)
	copy(out[n:], a.Genres)
	return out
}

// EncodeArtist is the identity: the whole artist vector is embeddable.
func EncodeArtist(flat FlatArtist) EncodedArtist {
	return EncodedArtist(flat)
}

// TrackProfile summarises an album's encoded tracks: element-wise mean,
// then the population standard deviation of energy, valence and danceability.
// An album without tracks profiles to zeros.
func TrackProfile(tracks []EncodedTrack) [TrackProfileLen]float64 {
	var out [TrackProfileLen]float64
	if len(tracks) == 0 {
		return out
	}
	n := float64(len(tracks))
	for _, t := range tracks {
		for i, v := range t {
			out[i] += v
		}
	}
	for i := 0; i < EncodedTrackLen; i++ {
		out[i] /= n
	}
	for j, col := range spreadColumns {
		mean := out[col]
		var sum float64
		for _, t := range tracks {
			d := t[col] - mean
			sum += d * d
		}
		out[EncodedTrackLen+j] = math.Sqrt(sum / n)
	}
	return out
}

// spreadColumns index EncodedTrackFields: energy, valence, danceability.
var spreadColumns = [3]int{3, 12, 1}

// FlattenAlbum lays out album scalars, the encoded artist, and the track profile.
func FlattenAlbum(a AlbumAggregation) FlatAlbum {
	var out FlatAlbum
	n := len(AlbumFields)
	fillOrdered(out[:n], a.Scalars(), AlbumFields)
	artist := EncodeArtist(FlattenArtist(a.Artist))
	copy(out[n:], artist[:])
	profile := TrackProfile(a.Tracks)
	copy(out[n+EncodedArtistLen:], profile[:])
	return out
}

// Offsets into FlatAlbum used by EncodeAlbum.
const (
	albumArtistOffset  = 11
	albumProfileOffset = albumArtistOffset + EncodedArtistLen
	albumSpreadOffset  = albumProfileOffset + EncodedTrackLen
)

// EncodeAlbum keeps the album scalars, the track spreads, and the artist's
// discography size and popularity.
func EncodeAlbum(flat FlatAlbum) EncodedAlbum {
	var out EncodedAlbum
	n := copy(out[:], flat[:albumArtistOffset])
	n += copy(out[n:], flat[albumSpreadOffset:albumSpreadOffset+3])
	out[n] = flat[albumArtistOffset+1]   // discographySize
	out[n+1] = flat[albumArtistOffset+4] // popularity
	return out
}

// FlattenReview is the encoded album followed by userDisagreement.
func FlattenReview(a ReviewAggregation) FlatReview {
	var out FlatReview
	album := EncodeAlbum(FlattenAlbum(a.AlbumAggregation))
	copy(out[:], album[:])
	out[EncodedAlbumLen] = a.UserDisagreement
	return out
}

func fillOrdered(dst []float64, values map[string]float64, order []string) {
	for i, name := range order {
		dst[i] = values[name]
	}
}
