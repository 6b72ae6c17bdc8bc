package artworks

import (
	"aura-backend/internal/domain/artworks"

	"gorm.io/gorm"
)

// ownerArtworksQuery is the base of every catalog read and write: the owner
// restriction is applied before any predicate, so filtering can never cross
// owner boundaries and foreign rows surface as not-found.
func ownerArtworksQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&artworks.Artwork{}).Where("artworks.user_id = ?", userID)
}

// replaceJoinRows rewrites one association table for an artwork: clear, then
// insert the new set. Runs inside the caller's transaction.
func replaceJoinRows(tx *gorm.DB, table, refColumn, artworkID string, ids []uint) error {
	if err := tx.Exec("DELETE FROM "+table+" WHERE artwork_id = ?", artworkID).Error; err != nil {
		return err
	}
	for _, id := range ids {
		if err := tx.Exec("INSERT INTO "+table+" (artwork_id, "+refColumn+") VALUES (?, ?)", artworkID, id).Error; err != nil {
			return err
		}
	}
	return nil
}

func loadDetail(db *gorm.DB, userID uint, id string) (*artworks.Artwork, error) {
	var a artworks.Artwork
	err := db.
		Preload("ArtType").
		Preload("Support").
		Preload("Technique").
		Preload("Artists").
		Preload("Collections").
		Preload("Exhibitions").
		Preload("Tags").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, created_at ASC")
		}).
		Preload("Attachments").
		First(&a, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
