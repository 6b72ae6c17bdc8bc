package artworks

import (
	"strings"

	"gorm.io/gorm"
)

// ArtworkFilter is a conjunction of independent predicates applied on top of
// the owner-scoped base query. Zero values mean "no constraint".
type ArtworkFilter struct {
	Title string `form:"title"`

	ArtistIDs     []uint   `form:"artist_id"`
	CollectionIDs []uint   `form:"collection_id"`
	ExhibitionIDs []uint   `form:"exhibition_id"`
	Tags          []string `form:"tag"`

	CreationYear *int  `form:"creation_year"`
	ArtTypeID    *uint `form:"art_type_id"`
	SupportID    *uint `form:"support_id"`
	TechniqueID  *uint `form:"technique_id"`

	Location string `form:"location"`

	IsSigned   *bool `form:"is_signed"`
	IsFramed   *bool `form:"is_framed"`
	IsBorrowed *bool `form:"is_borrowed"`
	IsAcquired *bool `form:"is_acquired"`
}

func (f *ArtworkFilter) Apply(q *gorm.DB) *gorm.DB {
	if title := strings.TrimSpace(f.Title); title != "" {
		q = q.Where("LOWER(artworks.title) LIKE ?", "%"+strings.ToLower(title)+"%")
	}

	if len(f.ArtistIDs) > 0 {
		q = q.Where("artworks.id IN (SELECT artwork_id FROM artwork_artists WHERE artist_id IN ?)", f.ArtistIDs)
	}
	if len(f.CollectionIDs) > 0 {
		q = q.Where("artworks.id IN (SELECT artwork_id FROM artwork_collections WHERE collection_id IN ?)", f.CollectionIDs)
	}
	if len(f.ExhibitionIDs) > 0 {
		q = q.Where("artworks.id IN (SELECT artwork_id FROM artwork_exhibitions WHERE exhibition_id IN ?)", f.ExhibitionIDs)
	}
	if len(f.Tags) > 0 {
		q = q.Where("artworks.id IN (SELECT artwork_id FROM artwork_tags JOIN tags ON tags.id = artwork_tags.tag_id WHERE tags.name IN ?)", f.Tags)
	}

	if f.CreationYear != nil {
		q = q.Where("artworks.creation_year = ?", *f.CreationYear)
	}
	if f.ArtTypeID != nil {
		q = q.Where("artworks.art_type_id = ?", *f.ArtTypeID)
	}
	if f.SupportID != nil {
		q = q.Where("artworks.support_id = ?", *f.SupportID)
	}
	if f.TechniqueID != nil {
		q = q.Where("artworks.technique_id = ?", *f.TechniqueID)
	}

	if f.Location != "" {
		q = q.Where("artworks.current_location = ?", f.Location)
	}

	if f.IsSigned != nil {
		q = q.Where("artworks.is_signed = ?", *f.IsSigned)
	}
	if f.IsFramed != nil {
		q = q.Where("artworks.is_framed = ?", *f.IsFramed)
	}
	if f.IsBorrowed != nil {
		q = q.Where("artworks.is_borrowed = ?", *f.IsBorrowed)
	}
	if f.IsAcquired != nil {
		q = q.Where("artworks.is_acquired = ?", *f.IsAcquired)
	}

	return q
}

// sortClause whitelists caller-supplied orderings; anything unrecognized
// falls back to newest first.
func sortClause(sort string) string {
	switch sort {
	case "created_at":
		return "artworks.created_at ASC"
	case "title":
		return "artworks.title ASC"
	case "-title":
		return "artworks.title DESC"
	case "creation_year":
		return "artworks.creation_year ASC"
	case "-creation_year":
		return "artworks.creation_year DESC"
	default:
		return "artworks.created_at DESC"
	}
}
