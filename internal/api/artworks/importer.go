package artworks

import (
	"log"
	"net/http"

	"aura-backend/database"
	refsapi "aura-backend/internal/api/references"
	tagsapi "aura-backend/internal/api/tags"
	"aura-backend/internal/domain/artworks"
	"aura-backend/internal/domain/references"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ImportItem is one row of a bulk import. The shared vocabularies can be
// referred to either by name or by 1-based position in the canonical seed
// lists; ordinals win when both are present.
type ImportItem struct {
	Title        string `json:"title"`
	CreationYear *int   `json:"creation_year"`

	ArtType          string `json:"art_type"`
	ArtTypeOrdinal   *int   `json:"art_type_ordinal"`
	Support          string `json:"support"`
	SupportOrdinal   *int   `json:"support_ordinal"`
	Technique        string `json:"technique"`
	TechniqueOrdinal *int   `json:"technique_ordinal"`

	Height *float64 `json:"height"`
	Width  *float64 `json:"width"`
	Price  *float64 `json:"price"`

	CurrentLocation string `json:"current_location"`

	Artists []string `json:"artists"`
	Tags    []string `json:"tags"`
}

type ImportRequest struct {
	Items []ImportItem `json:"items" binding:"required"`
}

// ------------------------------
// POST /import/artworks
// ------------------------------
// Best effort: each item gets its own transaction, a bad row is counted and
// skipped instead of failing the batch.
func ImportArtworks(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	created, failed := 0, 0
	errorsOut := make([]gin.H, 0)

	for i := range req.Items {
		if err := importOne(userID, &req.Items[i]); err != nil {
			failed++
			errorsOut = append(errorsOut, gin.H{"index": i, "error": err.Error()})
			log.Printf("import: item %d rejected: %v", i, err)
			continue
		}
		created++
	}

	c.JSON(http.StatusOK, gin.H{"created": created, "failed": failed, "errors": errorsOut})
}

func importOne(userID uint, item *ImportItem) error {
	location, err := normalizeLocation(item.CurrentLocation)
	if err != nil {
		return err
	}
	if err := validateYear(item.CreationYear); err != nil {
		return err
	}
	for field, v := range map[string]*float64{
		"height": item.Height, "width": item.Width, "price": item.Price,
	} {
		if err := validateMeasure(field, v); err != nil {
			return err
		}
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		a := artworks.Artwork{
			UserID:          userID,
			Title:           item.Title,
			CreationYear:    item.CreationYear,
			Height:          item.Height,
			Width:           item.Width,
			Price:           item.Price,
			IsAcquired:      true,
			CurrentLocation: location,
		}

		var err error
		if a.ArtTypeID, err = importRef(tx, references.KindArtType, userID,
			item.ArtType, item.ArtTypeOrdinal, references.DefaultArtTypes); err != nil {
			return err
		}
		if a.SupportID, err = importRef(tx, references.KindSupport, userID,
			item.Support, item.SupportOrdinal, references.DefaultSupports); err != nil {
			return err
		}
		if a.TechniqueID, err = importRef(tx, references.KindTechnique, userID,
			item.Technique, item.TechniqueOrdinal, references.DefaultTechniques); err != nil {
			return err
		}

		if err := tx.Create(&a).Error; err != nil {
			return err
		}

		ids, err := resolveNames(tx, references.KindArtist, userID, item.Artists)
		if err != nil {
			return err
		}
		if err := replaceJoinRows(tx, "artwork_artists", "artist_id", a.ID, ids); err != nil {
			return err
		}
		return tagsapi.Set(tx, a.ID, item.Tags)
	})
}

func importRef(tx *gorm.DB, kind references.Kind, userID uint, name string, ordinal *int, canonical []string) (*uint, error) {
	if ordinal != nil {
		id, _, err := refsapi.ResolveOrdinal(tx, kind, userID, *ordinal, canonical)
		if err != nil {
			return nil, err
		}
		return &id, nil
	}
	return resolveOptional(tx, kind, userID, name)
}
