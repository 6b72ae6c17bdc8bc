package dashboard

import (
	"log"
	"net/http"
	"time"

	"aura-backend/database"
	artworksapi "aura-backend/internal/api/artworks"
	"aura-backend/internal/domain/artworks"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

type countByName struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// ------------------------------
// GET /dashboard
// ------------------------------
// Collection overview: totals, the latest additions, where pieces are, the
// dominant art types, and a rotation suggestion.
func Overview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	db := database.DB

	var total, wishlistTotal int64
	if err := db.Model(&artworks.Artwork{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	if err := db.Model(&artworks.WishlistItem{}).Where("user_id = ?", userID).Count(&wishlistTotal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var recent []artworks.Artwork
	err := db.Model(&artworks.Artwork{}).
		Where("user_id = ?", userID).
		Preload("Artists").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, created_at ASC")
		}).
		Order("created_at DESC").
		Limit(5).
		Find(&recent).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	recentItems := make([]artworksapi.ArtworkListItem, 0, len(recent))
	for i := range recent {
		recentItems = append(recentItems, artworksapi.ToListItem(&recent[i]))
	}

	var byLocation []countByName
	err = db.Model(&artworks.Artwork{}).
		Select("current_location AS name, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("current_location").
		Order("count DESC").
		Scan(&byLocation).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var byArtType []countByName
	err = db.Model(&artworks.Artwork{}).
		Select("art_types.name AS name, COUNT(*) AS count").
		Joins("JOIN art_types ON art_types.id = artworks.art_type_id").
		Where("artworks.user_id = ?", userID).
		Group("art_types.name").
		Order("count DESC").
		Limit(5).
		Scan(&byArtType).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	out := gin.H{
		"total_artworks": total,
		"total_wishlist": wishlistTotal,
		"recent":         recentItems,
		"by_location":    byLocation,
		"by_art_type":    byArtType,
		"suggestion":     nil,
	}

	// suggestion failures never break the page
	if s, err := artworksapi.SuggestRotation(db, userID, time.Now()); err != nil {
		log.Printf("dashboard: rotation suggestion failed for user %d: %v", userID, err)
	} else if s != nil {
		out["suggestion"] = artworksapi.ToListItem(s)
	}

	c.JSON(http.StatusOK, out)
}
