package wishlist

import (
	"net/http"
	"strconv"

	"aura-backend/database"
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

type createRequest struct {
	Title          string   `json:"title" binding:"required"`
	ArtistName     string   `json:"artist_name"`
	EstimatedPrice *float64 `json:"estimated_price"`
	Priority       *int     `json:"priority"`
	Notes          string   `json:"notes"`
	SourceURL      string   `json:"source_url"`
}

// ------------------------------
// GET /wishlist
// ------------------------------
func List(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var items []artworks.WishlistItem
	err := database.DB.
		Where("user_id = ?", userID).
		Order("priority ASC, created_at DESC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wishlist"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ------------------------------
// POST /wishlist
// ------------------------------
func Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	priority := artworks.PriorityLow
	if req.Priority != nil {
		if *req.Priority < artworks.PriorityHigh || *req.Priority > artworks.PriorityLow {
			c.JSON(http.StatusBadRequest, gin.H{"error": "priority must be between 1 and 3"})
			return
		}
		priority = *req.Priority
	}
	if req.EstimatedPrice != nil && *req.EstimatedPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estimated_price cannot be negative"})
		return
	}

	item := artworks.WishlistItem{
		UserID:         userID,
		Title:          req.Title,
		ArtistName:     req.ArtistName,
		EstimatedPrice: req.EstimatedPrice,
		Priority:       priority,
		Notes:          req.Notes,
		SourceURL:      req.SourceURL,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wishlist item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ------------------------------
// DELETE /wishlist/:id
// ------------------------------
func Remove(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).
			Delete(&artworks.WishlistItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete wishlist item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
