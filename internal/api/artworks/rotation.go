package artworks

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"aura-backend/database"
	"aura-backend/internal/domain/artworks"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// rotationThresholdDays is how long a piece must have gone unexhibited before
// it becomes a rotation candidate. Never-exhibited pieces always qualify.
const rotationThresholdDays = 180

// SuggestRotation picks one artwork, uniformly at random, among the owner's
// pieces that are at home or in storage and have not been shown recently.
// Returns nil when nothing qualifies.
func SuggestRotation(db *gorm.DB, userID uint, now time.Time) (*artworks.Artwork, error) {
	cutoff := now.AddDate(0, 0, -rotationThresholdDays)

	var candidates []artworks.Artwork
	err := ownerArtworksQuery(db, userID).
		Where("artworks.current_location IN ?", artworks.AvailableLocations).
		Where("artworks.last_exhibited IS NULL OR artworks.last_exhibited < ?", cutoff).
		Preload("Artists").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, created_at ASC")
		}).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return &candidates[rand.Intn(len(candidates))], nil
}

// ------------------------------
// GET /rotation-suggestion
// ------------------------------
// The suggestion is decorative: any failure degrades to "no suggestion"
// rather than an error page.
func RotationSuggestion(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	suggestion, err := SuggestRotation(database.DB, userID, time.Now())
	if err != nil {
		log.Printf("rotation suggestion failed for user %d: %v", userID, err)
		c.JSON(http.StatusOK, gin.H{"suggestion": nil})
		return
	}
	if suggestion == nil {
		c.JSON(http.StatusOK, gin.H{"suggestion": nil})
		return
	}

	item := ToListItem(suggestion)
	c.JSON(http.StatusOK, gin.H{"suggestion": item, "last_exhibited": suggestion.LastExhibited})
}
