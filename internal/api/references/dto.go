package references

type ResolveRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateDetailsRequest carries the kind-specific optional fields of the
// owner-scoped kinds. Fields irrelevant to the kind are ignored.
type UpdateDetailsRequest struct {
	Name *string `json:"name"`

	// artist
	BirthYear   *int    `json:"birth_year"`
	DeathYear   *int    `json:"death_year"`
	Nationality *string `json:"nationality"`
	Biography   *string `json:"biography"`

	// collection / exhibition
	Description *string `json:"description"`

	// exhibition
	Location  *string `json:"location"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// ListEntry is one vocabulary row plus how many of the requesting owner's
// artworks use it.
type ListEntry struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	ArtworkCount int64  `json:"artwork_count"`
}
