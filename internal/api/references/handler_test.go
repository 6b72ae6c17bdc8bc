package references

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"aura-backend/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	refs := r.Group("/references")
	refs.POST("/:kind", Resolve)
	refs.GET("/:kind", List)
	refs.PUT("/:kind/:id", Update)
	refs.DELETE("/:kind/:id", Remove)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itoa(i uint) string { return strconv.FormatUint(uint64(i), 10) }

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestResolveEndpoint_CreatedThenFound(t *testing.T) {
	database.DB = openTestDB(t)
	r := newRouter(1)

	w := doJSON(t, r, http.MethodPost, "/references/artist", map[string]any{"name": "Soulages"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decode(t, w)
	require.Equal(t, true, first["created"])

	w = doJSON(t, r, http.MethodPost, "/references/artist", map[string]any{"name": " Soulages "})
	require.Equal(t, http.StatusOK, w.Code)
	second := decode(t, w)
	require.Equal(t, false, second["created"])
	require.Equal(t, first["id"], second["id"])
}

func TestResolveEndpoint_UnknownKind(t *testing.T) {
	database.DB = openTestDB(t)
	r := newRouter(1)

	w := doJSON(t, r, http.MethodPost, "/references/flavor", map[string]any{"name": "Umami"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEndpoint_SearchAndCounts(t *testing.T) {
	db := openTestDB(t)
	database.DB = db
	r := newRouter(1)

	doJSON(t, r, http.MethodPost, "/references/artist", map[string]any{"name": "Soulages"})
	doJSON(t, r, http.MethodPost, "/references/artist", map[string]any{"name": "Riopelle"})

	var artistID uint
	require.NoError(t, db.Raw("SELECT id FROM artists WHERE name = ?", "Soulages").Scan(&artistID).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO artworks (id, user_id, title, current_location, is_acquired) VALUES (?, ?, ?, ?, ?)",
		"aw-1", 1, "Outrenoir", "domicile", true).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO artwork_artists (artwork_id, artist_id) VALUES (?, ?)", "aw-1", artistID).Error)

	w := doJSON(t, r, http.MethodGet, "/references/artist?search=soul", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	entry := items[0].(map[string]any)
	require.Equal(t, "Soulages", entry["name"])
	require.EqualValues(t, 1, entry["artwork_count"])
}

func TestUpdateEndpoint_RenameConflict(t *testing.T) {
	database.DB = openTestDB(t)
	r := newRouter(1)

	doJSON(t, r, http.MethodPost, "/references/collection", map[string]any{"name": "Abstraction"})
	w := doJSON(t, r, http.MethodPost, "/references/collection", map[string]any{"name": "Figuration"})
	id := decode(t, w)["id"].(float64)

	w = doJSON(t, r, http.MethodPut,
		"/references/collection/"+itoa(uint(id)), map[string]any{"name": "Abstraction"})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestUpdateEndpoint_ArtistDetails(t *testing.T) {
	db := openTestDB(t)
	database.DB = db
	r := newRouter(1)

	w := doJSON(t, r, http.MethodPost, "/references/artist", map[string]any{"name": "Soulages"})
	id := decode(t, w)["id"].(float64)

	w = doJSON(t, r, http.MethodPut, "/references/artist/"+itoa(uint(id)), map[string]any{
		"birth_year":  1919,
		"nationality": "française",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var birthYear int
	require.NoError(t, db.Raw("SELECT birth_year FROM artists WHERE id = ?", uint(id)).Scan(&birthYear).Error)
	require.Equal(t, 1919, birthYear)
}

func TestRemoveEndpoint_NotFoundForForeignRow(t *testing.T) {
	database.DB = openTestDB(t)
	owner := newRouter(1)
	intruder := newRouter(2)

	w := doJSON(t, owner, http.MethodPost, "/references/exhibition", map[string]any{"name": "FIAC 2019"})
	id := decode(t, w)["id"].(float64)

	w = doJSON(t, intruder, http.MethodDelete, "/references/exhibition/"+itoa(uint(id)), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, owner, http.MethodDelete, "/references/exhibition/"+itoa(uint(id)), nil)
	require.Equal(t, http.StatusOK, w.Code)
}
