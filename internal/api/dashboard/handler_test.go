package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aura-backend/database"
	"aura-backend/internal/domain/artworks"
	"aura-backend/internal/domain/references"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.DB = db
	return db
}

func getOverview(t *testing.T, userID uint) map[string]any {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	r.GET("/dashboard", Overview)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestOverview_Empty(t *testing.T) {
	openTestDB(t)

	out := getOverview(t, 1)
	require.EqualValues(t, 0, out["total_artworks"])
	require.EqualValues(t, 0, out["total_wishlist"])
	require.Empty(t, out["recent"])
	require.Nil(t, out["suggestion"])
}

func TestOverview_StatsAndSuggestion(t *testing.T) {
	db := openTestDB(t)

	painting := references.ArtType{Name: "Peinture"}
	require.NoError(t, db.Create(&painting).Error)

	stale := time.Now().AddDate(-1, 0, 0)
	pieces := []artworks.Artwork{
		{ID: "a", UserID: 1, Title: "A", CurrentLocation: artworks.LocationHome, ArtTypeID: &painting.ID, LastExhibited: &stale},
		{ID: "b", UserID: 1, Title: "B", CurrentLocation: artworks.LocationHome, ArtTypeID: &painting.ID},
		{ID: "c", UserID: 1, Title: "C", CurrentLocation: artworks.LocationStorage},
		{ID: "d", UserID: 2, Title: "Foreign", CurrentLocation: artworks.LocationHome},
	}
	for i := range pieces {
		require.NoError(t, db.Create(&pieces[i]).Error)
	}

	out := getOverview(t, 1)
	require.EqualValues(t, 3, out["total_artworks"])
	require.Len(t, out["recent"].([]any), 3)
	require.NotNil(t, out["suggestion"], "everything here is home or storage and stale")

	byLocation := out["by_location"].([]any)
	require.Len(t, byLocation, 2)
	top := byLocation[0].(map[string]any)
	require.Equal(t, artworks.LocationHome, top["name"])
	require.EqualValues(t, 2, top["count"])

	byType := out["by_art_type"].([]any)
	require.Len(t, byType, 1)
	require.Equal(t, "Peinture", byType[0].(map[string]any)["name"])
}
