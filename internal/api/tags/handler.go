package tags

import (
	"net/http"

	"aura-backend/database"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// ------------------------------
// GET /tags/autocomplete?q=
// Format: [{"value": name, "text": name}, ...]
// ------------------------------
func AutocompleteHandler(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	names, err := Autocomplete(database.DB, userID, c.Query("q"), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tags"})
		return
	}

	out := make([]gin.H, 0, len(names))
	for _, n := range names {
		out = append(out, gin.H{"value": n, "text": n})
	}
	c.JSON(http.StatusOK, out)
}
