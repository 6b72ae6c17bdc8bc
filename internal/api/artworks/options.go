package artworks

import (
	"net/http"

	"aura-backend/database"
	tagsapi "aura-backend/internal/api/tags"
	domainartworks "aura-backend/internal/domain/artworks"
	"aura-backend/internal/domain/references"

	"github.com/gin-gonic/gin"
)

type optionEntry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ------------------------------
// GET /filter-options
// ------------------------------
// Everything the filter form can offer: the owner's artists, collections,
// exhibitions and tags, plus the shared vocabularies and the location set.
func FilterOptions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	out := gin.H{"locations": domainartworks.Locations}
	db := database.DB

	var artists, collections, exhibitions []optionEntry
	if err := db.Model(&references.Artist{}).Where("user_id = ?", userID).
		Order("name ASC").Scan(&artists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter options"})
		return
	}
	if err := db.Model(&references.Collection{}).Where("user_id = ?", userID).
		Order("name ASC").Scan(&collections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter options"})
		return
	}
	if err := db.Model(&references.Exhibition{}).Where("user_id = ?", userID).
		Order("name ASC").Scan(&exhibitions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter options"})
		return
	}

	var artTypes, supports, techniques []optionEntry
	if err := db.Model(&references.ArtType{}).Order("name ASC").Scan(&artTypes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter options"})
		return
	}
	if err := db.Model(&references.Support{}).Order("name ASC").Scan(&supports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter options"})
		return
	}
	if err := db.Model(&references.Technique{}).Order("name ASC").Scan(&techniques).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter options"})
		return
	}

	tagRows, err := tagsapi.Owned(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter options"})
		return
	}
	tagNames := make([]string, 0, len(tagRows))
	for _, t := range tagRows {
		tagNames = append(tagNames, t.Name)
	}

	out["artists"] = artists
	out["collections"] = collections
	out["exhibitions"] = exhibitions
	out["art_types"] = artTypes
	out["supports"] = supports
	out["techniques"] = techniques
	out["tags"] = tagNames
	c.JSON(http.StatusOK, out)
}
