package artworks

import (
	"net/http"
	"testing"

	"aura-backend/database"
	"aura-backend/internal/domain/artworks"
	"aura-backend/internal/domain/references"
	"aura-backend/internal/domain/tags"

	"github.com/stretchr/testify/require"
)

func TestCreateArtwork_ResolvesNames(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(1)

	w := doJSON(t, r, http.MethodPost, "/artworks", map[string]any{
		"title":         "Outrenoir",
		"creation_year": 1979,
		"artists":       []string{"Soulages"},
		"art_type":      "Peinture",
		"support":       "Toile",
		"technique":     "Huile",
		"tags":          []string{"noir", "abstrait"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	require.Equal(t, "Outrenoir", body["title"])
	require.Equal(t, "domicile", body["current_location"], "blank location falls back to the default")

	artists, ok := body["artists"].([]any)
	require.True(t, ok)
	require.Len(t, artists, 1)

	var artist references.Artist
	require.NoError(t, db.First(&artist, "name = ?", "Soulages").Error)
	require.Equal(t, uint(1), artist.UserID)

	var tagCount int64
	require.NoError(t, db.Model(&tags.Tag{}).Count(&tagCount).Error)
	require.Equal(t, int64(2), tagCount)
}

func TestCreateArtwork_ReusesExistingNames(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(1)

	createArtwork(t, r, map[string]any{"title": "One", "artists": []string{"Soulages"}})
	createArtwork(t, r, map[string]any{"title": "Two", "artists": []string{"Soulages"}})

	var n int64
	require.NoError(t, db.Model(&references.Artist{}).Count(&n).Error)
	require.Equal(t, int64(1), n)
}

func TestCreateArtwork_Validation(t *testing.T) {
	openTestDB(t)
	r := newRouter(1)

	cases := []map[string]any{
		{"title": "X", "creation_year": 9999},
		{"title": "X", "height": -3.0},
		{"title": "X", "current_location": "la lune"},
		{"title": "X", "acquisition_date": "01/02/2003"},
	}
	for _, payload := range cases {
		w := doJSON(t, r, http.MethodPost, "/artworks", payload)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	}
}

func TestGetArtwork_ForeignOwnerIs404(t *testing.T) {
	openTestDB(t)
	owner := newRouter(1)
	intruder := newRouter(2)

	id := createArtwork(t, owner, map[string]any{"title": "Mine"})

	w := doJSON(t, intruder, http.MethodGet, "/artworks/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, owner, http.MethodGet, "/artworks/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateArtwork_PartialAndClear(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(1)

	id := createArtwork(t, r, map[string]any{
		"title":    "Before",
		"art_type": "Peinture",
		"tags":     []string{"noir"},
	})

	w := doJSON(t, r, http.MethodPut, "/artworks/"+id, map[string]any{
		"title":    "After",
		"art_type": "",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var a artworks.Artwork
	require.NoError(t, db.First(&a, "id = ?", id).Error)
	require.Equal(t, "After", a.Title)
	require.Nil(t, a.ArtTypeID, `empty string clears the classification`)

	// untouched fields survive a partial update
	var tagLinks int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM artwork_tags WHERE artwork_id = ?", id).Scan(&tagLinks).Error)
	require.Equal(t, int64(1), tagLinks)
}

func TestUpdateArtwork_ReplacesAssociationSets(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(1)

	id := createArtwork(t, r, map[string]any{
		"title":   "Series piece",
		"artists": []string{"A", "B"},
	})

	w := doJSON(t, r, http.MethodPut, "/artworks/"+id, map[string]any{
		"artists": []string{"B", "C"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var names []string
	require.NoError(t, db.Raw(
		"SELECT artists.name FROM artists JOIN artwork_artists aa ON aa.artist_id = artists.id WHERE aa.artwork_id = ? ORDER BY artists.name",
		id).Scan(&names).Error)
	require.Equal(t, []string{"B", "C"}, names)

	// detached artists are not deleted
	var n int64
	require.NoError(t, db.Model(&references.Artist{}).Count(&n).Error)
	require.Equal(t, int64(3), n)
}

func TestParentArtwork_CycleRejected(t *testing.T) {
	openTestDB(t)
	r := newRouter(1)

	parent := createArtwork(t, r, map[string]any{"title": "Parent"})
	child := createArtwork(t, r, map[string]any{"title": "Child", "parent_artwork_id": parent})

	// closing the loop must fail
	w := doJSON(t, r, http.MethodPut, "/artworks/"+parent, map[string]any{
		"parent_artwork_id": child,
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// self-parenting too
	w = doJSON(t, r, http.MethodPut, "/artworks/"+parent, map[string]any{
		"parent_artwork_id": parent,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParentArtwork_ForeignParentRejected(t *testing.T) {
	openTestDB(t)
	owner := newRouter(1)
	other := newRouter(2)

	foreign := createArtwork(t, other, map[string]any{"title": "Not yours"})

	w := doJSON(t, owner, http.MethodPost, "/artworks", map[string]any{
		"title":             "Orphan",
		"parent_artwork_id": foreign,
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestDeleteArtwork_CascadesAndDetaches(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(1)

	id := createArtwork(t, r, map[string]any{
		"title":   "Doomed",
		"artists": []string{"Soulages"},
		"tags":    []string{"noir"},
	})
	child := createArtwork(t, r, map[string]any{"title": "Child", "parent_artwork_id": id})

	w := doJSON(t, r, http.MethodPost, "/artworks/"+id+"/photos", map[string]any{
		"image_path": "photos/doomed.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/artworks/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var photos, tagLinks, artistLinks int64
	require.NoError(t, db.Model(&artworks.ArtworkPhoto{}).Where("artwork_id = ?", id).Count(&photos).Error)
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM artwork_tags WHERE artwork_id = ?", id).Scan(&tagLinks).Error)
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM artwork_artists WHERE artwork_id = ?", id).Scan(&artistLinks).Error)
	require.Zero(t, photos)
	require.Zero(t, tagLinks)
	require.Zero(t, artistLinks)

	// artist and tag rows themselves survive
	var artistRows, tagRows int64
	require.NoError(t, db.Model(&references.Artist{}).Count(&artistRows).Error)
	require.NoError(t, db.Model(&tags.Tag{}).Count(&tagRows).Error)
	require.Equal(t, int64(1), artistRows)
	require.Equal(t, int64(1), tagRows)

	// the child lives on, parentless
	var c artworks.Artwork
	require.NoError(t, db.First(&c, "id = ?", child).Error)
	require.Nil(t, c.ParentArtworkID)
}

func TestDeleteArtwork_ForeignOwnerIs404(t *testing.T) {
	db := openTestDB(t)
	owner := newRouter(1)
	intruder := newRouter(2)

	id := createArtwork(t, owner, map[string]any{"title": "Mine"})

	w := doJSON(t, intruder, http.MethodDelete, "/artworks/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var n int64
	require.NoError(t, db.Model(&artworks.Artwork{}).Count(&n).Error)
	require.Equal(t, int64(1), n)
}

func TestSetTags_ReplacesSet(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(1)

	id := createArtwork(t, r, map[string]any{"title": "Tagged", "tags": []string{"a", "b"}})

	w := doJSON(t, r, http.MethodPut, "/artworks/"+id+"/tags", map[string]any{
		"tags": []string{"b", "c"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var names []string
	require.NoError(t, db.Raw(
		"SELECT tags.name FROM tags JOIN artwork_tags at ON at.tag_id = tags.id WHERE at.artwork_id = ? ORDER BY tags.name",
		id).Scan(&names).Error)
	require.Equal(t, []string{"b", "c"}, names)
}

func TestImportArtworks_BestEffort(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.SeedReferenceData(db))
	r := newRouter(1)

	w := doJSON(t, r, http.MethodPost, "/import/artworks", map[string]any{
		"items": []map[string]any{
			{"title": "Good by name", "art_type": "Peinture", "artists": []string{"Soulages"}},
			{"title": "Good by ordinal", "art_type_ordinal": 2, "support_ordinal": 1},
			{"title": "Bad location", "current_location": "nulle part"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	require.EqualValues(t, 2, body["created"])
	require.EqualValues(t, 1, body["failed"])

	var byOrdinal artworks.Artwork
	require.NoError(t, db.Preload("ArtType").Preload("Support").
		First(&byOrdinal, "title = ?", "Good by ordinal").Error)
	require.Equal(t, references.DefaultArtTypes[1], byOrdinal.ArtType.Name)
	require.Equal(t, references.DefaultSupports[0], byOrdinal.Support.Name)
}
