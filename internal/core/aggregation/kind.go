package aggregation

import "fmt"

// Kind tags an aggregation shape. It namespaces cache keys and names CSV exports.
type Kind string

const (
	KindTrack   Kind = "track"
	KindArtist  Kind = "artist"
	KindAlbum   Kind = "album"
	KindReview  Kind = "review"
	KindProfile Kind = "profile"
)

// Kinds lists every supported kind in dependency order (leaf first).
var Kinds = []Kind{KindTrack, KindArtist, KindAlbum, KindReview, KindProfile}

// ValidKind reports whether k is a supported aggregation kind.
func ValidKind(k Kind) bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind converts user input (path params, CLI args) into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !ValidKind(k) {
		return "", fmt.Errorf("unsupported aggregation kind %q", s)
	}
	return k, nil
}

func (k Kind) String() string { return string(k) }
