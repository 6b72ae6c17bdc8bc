package artworks

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aura-backend/database"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB wires a fresh in-memory database into the package-level handle
// the handlers use.
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

// newRouter registers the catalog routes behind a stub that injects the given
// owner, standing in for the token middleware.
func newRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })

	art := r.Group("/artworks")
	art.GET("", ListArtworks)
	art.POST("", CreateArtwork)
	art.GET("/:id", GetArtwork)
	art.PUT("/:id", UpdateArtwork)
	art.DELETE("/:id", DeleteArtwork)
	art.PUT("/:id/tags", SetTags)
	art.GET("/:id/photos", ListPhotos)
	art.POST("/:id/photos", AddPhoto)
	art.PUT("/:id/photos/:photoID/primary", SetPrimaryPhoto)
	art.DELETE("/:id/photos/:photoID", DeletePhoto)
	art.POST("/:id/attachments", AddAttachment)
	art.DELETE("/:id/attachments/:attachmentID", DeleteAttachment)

	r.GET("/filter-options", FilterOptions)
	r.GET("/rotation-suggestion", RotationSuggestion)
	r.POST("/import/artworks", ImportArtworks)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// createArtwork posts the payload and returns the new id.
func createArtwork(t *testing.T, r *gin.Engine, payload map[string]any) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/artworks", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, ok := decode(t, w)["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}
