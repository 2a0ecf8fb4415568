package aggregation

// Field lists are the canonical column order of each aggregation kind.
// They are kept alphabetically sorted by hand; fields_test.go checks them
// against the Scalars() view of every shape.
var (
	TrackFields = []string{
		"acousticness",
		"danceability",
		"duration",
		"energy",
		"explicit",
		"instrumentalness",
		"liveness",
		"loudness",
		"mode",
		"popularity",
		"speechiness",
		"tempo",
		"timeSignature",
		"trackNumber",
		"valence",
	}

	ArtistFields = []string{
		"active",
		"discographySize",
		"lists",
		"members",
		"popularity",
		"shows",
		"soloPerformer",
	}

	AlbumFields = []string{
		"availableMarkets",
		"copyrights",
		"issues",
		"lists",
		"overallRank",
		"popularity",
		"rating",
		"ratings",
		"releaseYear",
		"reviews",
		"yearRank",
	}

	ReviewFields = []string{
		"availableMarkets",
		"copyrights",
		"issues",
		"lists",
		"overallRank",
		"popularity",
		"rating",
		"ratings",
		"releaseYear",
		"reviews",
		"userDisagreement",
		"yearRank",
	}

	ProfileFields = []string{
		"age",
		"gender",
	}

	// EncodedTrackFields drops the positional and popularity columns from
	// TrackFields, leaving the intrinsic audio features.
	EncodedTrackFields = []string{
		"acousticness",
		"danceability",
		"duration",
		"energy",
		"explicit",
		"instrumentalness",
		"liveness",
		"loudness",
		"mode",
		"speechiness",
		"tempo",
		"timeSignature",
		"valence",
	}
)
