package aggregation

import "strings"

// GenreFamilies are the coarse buckets Spotify genre tags are folded into.
// Order is part of the artist vector layout; append only.
var GenreFamilies = []string{
	"pop",
	"rock",
	"hip hop",
	"electronic",
	"jazz",
	"classical",
	"folk",
	"metal",
	"other",
}

const GenreFamilyCount = 9

// genreKeywords are checked in order; the first family with a matching keyword wins.
var genreKeywords = []struct {
	family   int
	keywords []string
}{
	{7, []string{"metal", "grindcore", "deathcore"}},
	{2, []string{"hip hop", "rap", "trap", "drill", "grime"}},
	{3, []string{"electro", "house", "techno", "edm", "trance", "dubstep", "ambient", "idm"}},
	{4, []string{"jazz", "bebop", "swing"}},
	{5, []string{"classical", "orchestra", "baroque", "opera", "romantic era"}},
	{6, []string{"folk", "singer-songwriter", "americana", "bluegrass"}},
	{1, []string{"rock", "punk", "grunge", "shoegaze", "emo"}},
	{0, []string{"pop"}},
}

// GenreFamily returns the GenreFamilies index for a Spotify genre name.
func GenreFamily(genre string) int {
	g := strings.ToLower(strings.TrimSpace(genre))
	for _, entry := range genreKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(g, kw) {
				return entry.family
			}
		}
	}
	return GenreFamilyCount - 1
}

// GenreShares returns the fraction of genres falling into each family.
// No genres yields all zeros.
func GenreShares(genres []string) []float64 {
	out := make([]float64, GenreFamilyCount)
	if len(genres) == 0 {
		return out
	}
	for _, g := range genres {
		out[GenreFamily(g)]++
	}
	n := float64(len(genres))
	for i := range out {
		out[i] /= n
	}
	return out
}
