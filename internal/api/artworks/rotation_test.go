package artworks

import (
	"net/http"
	"testing"
	"time"

	"aura-backend/internal/domain/artworks"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func insertRotationPiece(t *testing.T, db *gorm.DB, id string, userID uint, location string, lastExhibited *time.Time) {
	t.Helper()
	a := artworks.Artwork{
		ID:              id,
		UserID:          userID,
		Title:           "Piece " + id,
		IsAcquired:      true,
		CurrentLocation: location,
		LastExhibited:   lastExhibited,
	}
	require.NoError(t, db.Create(&a).Error)
}

func TestSuggestRotation_EmptyCatalog(t *testing.T) {
	db := openTestDB(t)

	s, err := SuggestRotation(db, 1, time.Now())
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestSuggestRotation_SingleCandidate(t *testing.T) {
	db := openTestDB(t)
	insertRotationPiece(t, db, "aw-1", 1, artworks.LocationHome, nil)

	s, err := SuggestRotation(db, 1, time.Now())
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, "aw-1", s.ID)
}

func TestSuggestRotation_LocationEligibility(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	insertRotationPiece(t, db, "home", 1, artworks.LocationHome, nil)
	insertRotationPiece(t, db, "storage", 1, artworks.LocationStorage, nil)
	insertRotationPiece(t, db, "loaned", 1, artworks.LocationOnLoan, nil)
	insertRotationPiece(t, db, "sold", 1, artworks.LocationSold, nil)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		s, err := SuggestRotation(db, 1, now)
		require.NoError(t, err)
		require.NotNil(t, s)
		seen[s.ID] = true
	}
	require.True(t, seen["home"])
	require.True(t, seen["storage"])
	require.False(t, seen["loaned"], "pieces out of the house are never suggested")
	require.False(t, seen["sold"])
}

func TestSuggestRotation_RecencyThreshold(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	recent := now.AddDate(0, 0, -30)
	stale := now.AddDate(0, 0, -200)
	insertRotationPiece(t, db, "recent", 1, artworks.LocationHome, &recent)
	insertRotationPiece(t, db, "stale", 1, artworks.LocationHome, &stale)
	insertRotationPiece(t, db, "never", 1, artworks.LocationHome, nil)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		s, err := SuggestRotation(db, 1, now)
		require.NoError(t, err)
		require.NotNil(t, s)
		seen[s.ID] = true
	}
	require.False(t, seen["recent"], "recently exhibited pieces sit out the rotation")
	require.True(t, seen["stale"])
	require.True(t, seen["never"])
}

func TestSuggestRotation_UniformFrequency(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	insertRotationPiece(t, db, "a", 1, artworks.LocationHome, nil)
	insertRotationPiece(t, db, "b", 1, artworks.LocationStorage, nil)

	const draws = 400
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		s, err := SuggestRotation(db, 1, now)
		require.NoError(t, err)
		require.NotNil(t, s)
		counts[s.ID]++
	}

	// a fair two-way split lands each side in 30-70% with overwhelming
	// probability at this sample size
	for _, id := range []string{"a", "b"} {
		require.Greater(t, counts[id], draws*30/100,
			"candidate %s drawn far less often than a uniform pick allows", id)
		require.Less(t, counts[id], draws*70/100,
			"candidate %s drawn far more often than a uniform pick allows", id)
	}
}

func TestSuggestRotation_OwnerScoped(t *testing.T) {
	db := openTestDB(t)
	insertRotationPiece(t, db, "theirs", 2, artworks.LocationHome, nil)

	s, err := SuggestRotation(db, 1, time.Now())
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestRotationSuggestionHandler(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(1)

	w := doJSON(t, r, http.MethodGet, "/rotation-suggestion", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, decode(t, w)["suggestion"], "an empty catalog degrades to no suggestion")

	insertRotationPiece(t, db, "aw-1", 1, artworks.LocationStorage, nil)

	w = doJSON(t, r, http.MethodGet, "/rotation-suggestion", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	suggestion, ok := body["suggestion"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "aw-1", suggestion["id"])
}
