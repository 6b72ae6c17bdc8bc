package artworks

import (
	"net/http"
	"strconv"

	"aura-backend/database"
	"aura-backend/internal/domain/artworks"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ownedArtwork loads just the id of an artwork after the ownership check, so
// photo and attachment routes 404 on anything the caller does not own.
func ownedArtwork(tx *gorm.DB, userID uint, id string) (string, error) {
	var a artworks.Artwork
	if err := tx.Select("id").First(&a, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return "", err
	}
	return a.ID, nil
}

// ------------------------------
// GET /artworks/:id/photos
// ------------------------------
func ListPhotos(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	artworkID, err := ownedArtwork(database.DB, userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Artwork not found", "Failed to load photos")
		return
	}

	var photos []artworks.ArtworkPhoto
	err = database.DB.
		Where("artwork_id = ?", artworkID).
		Order("is_primary DESC, created_at ASC").
		Find(&photos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load photos"})
		return
	}
	c.JSON(http.StatusOK, photos)
}

// ------------------------------
// POST /artworks/:id/photos
// ------------------------------
func AddPhoto(c *gin.Context) {
	var req AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := validatePhoto(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var photo artworks.ArtworkPhoto
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		artworkID, err := ownedArtwork(tx, userID, c.Param("id"))
		if err != nil {
			return err
		}

		if req.IsPrimary {
			if err := tx.Model(&artworks.ArtworkPhoto{}).
				Where("artwork_id = ?", artworkID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}

		photo = artworks.ArtworkPhoto{
			ArtworkID: artworkID,
			ImagePath: req.ImagePath,
			Caption:   req.Caption,
			IsPrimary: req.IsPrimary,
		}
		return tx.Create(&photo).Error
	})
	if err != nil {
		respondError(c, err, "Artwork not found", "Failed to add photo")
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// ------------------------------
// PUT /artworks/:id/photos/:photoID/primary
// ------------------------------
func SetPrimaryPhoto(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	photoID, err := strconv.Atoi(c.Param("photoID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo id"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		artworkID, err := ownedArtwork(tx, userID, c.Param("id"))
		if err != nil {
			return err
		}

		var photo artworks.ArtworkPhoto
		if err := tx.First(&photo, "id = ? AND artwork_id = ?", photoID, artworkID).Error; err != nil {
			return err
		}

		if err := tx.Model(&artworks.ArtworkPhoto{}).
			Where("artwork_id = ? AND id <> ?", artworkID, photo.ID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&photo).Update("is_primary", true).Error
	})
	if err != nil {
		respondError(c, err, "Photo not found", "Failed to set primary photo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /artworks/:id/photos/:photoID
// ------------------------------
// Deleting the primary leaves the artwork without one; no other photo gets
// promoted.
func DeletePhoto(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	photoID, err := strconv.Atoi(c.Param("photoID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo id"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		artworkID, err := ownedArtwork(tx, userID, c.Param("id"))
		if err != nil {
			return err
		}

		res := tx.Where("id = ? AND artwork_id = ?", photoID, artworkID).
			Delete(&artworks.ArtworkPhoto{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		respondError(c, err, "Photo not found", "Failed to delete photo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /artworks/:id/attachments
// ------------------------------
func AddAttachment(c *gin.Context) {
	var req AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var attachment artworks.Attachment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		artworkID, err := ownedArtwork(tx, userID, c.Param("id"))
		if err != nil {
			return err
		}

		attachment = artworks.Attachment{
			ArtworkID: artworkID,
			FilePath:  req.FilePath,
			Title:     req.Title,
			Notes:     req.Notes,
		}
		return tx.Create(&attachment).Error
	})
	if err != nil {
		respondError(c, err, "Artwork not found", "Failed to add attachment")
		return
	}

	c.JSON(http.StatusCreated, attachment)
}

// ------------------------------
// DELETE /artworks/:id/attachments/:attachmentID
// ------------------------------
func DeleteAttachment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	attachmentID, err := strconv.Atoi(c.Param("attachmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment id"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		artworkID, err := ownedArtwork(tx, userID, c.Param("id"))
		if err != nil {
			return err
		}

		res := tx.Where("id = ? AND artwork_id = ?", attachmentID, artworkID).
			Delete(&artworks.Attachment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		respondError(c, err, "Attachment not found", "Failed to delete attachment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
