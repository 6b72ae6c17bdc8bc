package references

import "fmt"

// Kind identifies one of the reference vocabularies. Artist, collection and
// exhibition names are unique per owner; art type, support and technique names
// are unique across all owners.
type Kind string

const (
	KindArtist     Kind = "artist"
	KindCollection Kind = "collection"
	KindExhibition Kind = "exhibition"
	KindArtType    Kind = "art_type"
	KindSupport    Kind = "support"
	KindTechnique  Kind = "technique"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindArtist, KindCollection, KindExhibition, KindArtType, KindSupport, KindTechnique:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown reference kind %q", s)
}

// OwnerScoped reports whether names of this kind are deduplicated per owner
// rather than globally.
func (k Kind) OwnerScoped() bool {
	switch k {
	case KindArtist, KindCollection, KindExhibition:
		return true
	}
	return false
}
