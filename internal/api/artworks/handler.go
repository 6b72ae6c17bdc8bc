package artworks

import (
	"errors"
	"net/http"
	"strconv"

	"aura-backend/database"
	"aura-backend/internal/apperr"
	"aura-backend/internal/domain/artworks"
	"aura-backend/internal/domain/references"

	refsapi "aura-backend/internal/api/references"
	tagsapi "aura-backend/internal/api/tags"

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

// respondError maps the package error taxonomy onto HTTP statuses. Ownership
// mismatches are already record-not-found by construction of the queries.
func respondError(c *gin.Context, err error, notFoundMsg, failMsg string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case apperr.IsBadInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}

// ------------------------------
// POST /artworks
// ------------------------------
func CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := validateCreate(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := normalizeLocation(req.CurrentLocation)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	acquiredAt, err := parseDate(strOrEmpty(req.AcquisitionDate))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lastExhibited, err := parseDate(strOrEmpty(req.LastExhibited))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isAcquired := true
	if req.IsAcquired != nil {
		isAcquired = *req.IsAcquired
	}

	var createdID string
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		a := artworks.Artwork{
			UserID:               userID,
			Title:                req.Title,
			CreationYear:         req.CreationYear,
			OriginCountry:        req.OriginCountry,
			Height:               req.Height,
			Width:                req.Width,
			Depth:                req.Depth,
			Weight:               req.Weight,
			AcquisitionDate:      acquiredAt,
			AcquisitionPlace:     req.AcquisitionPlace,
			Price:                req.Price,
			Provenance:           req.Provenance,
			IsFramed:             req.IsFramed,
			IsBorrowed:           req.IsBorrowed,
			IsSigned:             req.IsSigned,
			IsAcquired:           isAcquired,
			CurrentLocation:      location,
			Owners:               req.Owners,
			ContextualReferences: req.ContextualReferences,
			Notes:                req.Notes,
			LastExhibited:        lastExhibited,
		}

		var err error
		if a.ArtTypeID, err = resolveOptional(tx, references.KindArtType, userID, req.ArtType); err != nil {
			return err
		}
		if a.SupportID, err = resolveOptional(tx, references.KindSupport, userID, req.Support); err != nil {
			return err
		}
		if a.TechniqueID, err = resolveOptional(tx, references.KindTechnique, userID, req.Technique); err != nil {
			return err
		}

		if req.ParentArtworkID != nil && *req.ParentArtworkID != "" {
			if err := validateParentLink(tx, userID, "", *req.ParentArtworkID); err != nil {
				return err
			}
			a.ParentArtworkID = req.ParentArtworkID
		}

		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		createdID = a.ID

		if err := setNamedAssociations(tx, userID, a.ID, req.Artists, req.Collections, req.Exhibitions); err != nil {
			return err
		}
		return tagsapi.Set(tx, a.ID, req.Tags)
	})
	if err != nil {
		respondError(c, err, "Artwork not found", "Failed to create artwork")
		return
	}

	a, err := loadDetail(database.DB, userID, createdID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ------------------------------
// GET /artworks/:id
// ------------------------------
func GetArtwork(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	a, err := loadDetail(database.DB, userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Artwork not found", "Failed to load artwork")
		return
	}
	c.JSON(http.StatusOK, a)
}

// ------------------------------
// GET /artworks  (filter + paginate)
// ------------------------------
func ListArtworks(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var filter ArtworkFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	q := filter.Apply(ownerArtworksQuery(database.DB, userID))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	var rows []artworks.Artwork
	err := q.
		Preload("Artists").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, created_at ASC")
		}).
		Order(sortClause(c.Query("sort"))).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	items := make([]ArtworkListItem, 0, len(rows))
	for i := range rows {
		items = append(items, ToListItem(&rows[i]))
	}
	c.JSON(http.StatusOK, PageDTO{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

// ------------------------------
// PUT /artworks/:id
// ------------------------------
func UpdateArtwork(c *gin.Context) {
	id := c.Param("id")

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := validateUpdate(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var a artworks.Artwork
		if err := tx.First(&a, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.CreationYear != nil {
			updates["creation_year"] = *req.CreationYear
		}
		if req.OriginCountry != nil {
			updates["origin_country"] = *req.OriginCountry
		}
		if req.Height != nil {
			updates["height"] = *req.Height
		}
		if req.Width != nil {
			updates["width"] = *req.Width
		}
		if req.Depth != nil {
			updates["depth"] = *req.Depth
		}
		if req.Weight != nil {
			updates["weight"] = *req.Weight
		}
		if req.AcquisitionDate != nil {
			d, err := parseDate(*req.AcquisitionDate)
			if err != nil {
				return err
			}
			updates["acquisition_date"] = d
		}
		if req.AcquisitionPlace != nil {
			updates["acquisition_place"] = *req.AcquisitionPlace
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Provenance != nil {
			updates["provenance"] = *req.Provenance
		}
		if req.IsFramed != nil {
			updates["is_framed"] = *req.IsFramed
		}
		if req.IsBorrowed != nil {
			updates["is_borrowed"] = *req.IsBorrowed
		}
		if req.IsSigned != nil {
			updates["is_signed"] = *req.IsSigned
		}
		if req.IsAcquired != nil {
			updates["is_acquired"] = *req.IsAcquired
		}
		if req.Owners != nil {
			updates["owners"] = *req.Owners
		}
		if req.ContextualReferences != nil {
			updates["contextual_references"] = *req.ContextualReferences
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}
		if req.CurrentLocation != nil {
			location, err := normalizeLocation(*req.CurrentLocation)
			if err != nil {
				return err
			}
			updates["current_location"] = location
		}
		if req.LastExhibited != nil {
			d, err := parseDate(*req.LastExhibited)
			if err != nil {
				return err
			}
			updates["last_exhibited"] = d
		}

		if req.ArtType != nil {
			id, err := resolveOptional(tx, references.KindArtType, userID, *req.ArtType)
			if err != nil {
				return err
			}
			updates["art_type_id"] = id
		}
		if req.Support != nil {
			id, err := resolveOptional(tx, references.KindSupport, userID, *req.Support)
			if err != nil {
				return err
			}
			updates["support_id"] = id
		}
		if req.Technique != nil {
			id, err := resolveOptional(tx, references.KindTechnique, userID, *req.Technique)
			if err != nil {
				return err
			}
			updates["technique_id"] = id
		}

		if req.ParentArtworkID != nil {
			if *req.ParentArtworkID == "" {
				updates["parent_artwork_id"] = nil
			} else {
				if err := validateParentLink(tx, userID, a.ID, *req.ParentArtworkID); err != nil {
					return err
				}
				updates["parent_artwork_id"] = *req.ParentArtworkID
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&artworks.Artwork{}).
				Where("id = ? AND user_id = ?", a.ID, userID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Artists != nil || req.Collections != nil || req.Exhibitions != nil {
			if err := updateNamedAssociations(tx, userID, a.ID, req.Artists, req.Collections, req.Exhibitions); err != nil {
				return err
			}
		}
		if req.Tags != nil {
			if err := tagsapi.Set(tx, a.ID, *req.Tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondError(c, err, "Artwork not found", "Failed to update artwork")
		return
	}

	a, err := loadDetail(database.DB, userID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// ------------------------------
// DELETE /artworks/:id
// ------------------------------
// Photos, attachments and tag links go with the artwork; artists, collections
// and exhibitions are only detached, never deleted.
func DeleteArtwork(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var a artworks.Artwork
		if err := tx.First(&a, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}

		for _, stmt := range []string{
			"DELETE FROM artwork_artists WHERE artwork_id = ?",
			"DELETE FROM artwork_collections WHERE artwork_id = ?",
			"DELETE FROM artwork_exhibitions WHERE artwork_id = ?",
			"DELETE FROM artwork_tags WHERE artwork_id = ?",
		} {
			if err := tx.Exec(stmt, a.ID).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("artwork_id = ?", a.ID).Delete(&artworks.ArtworkPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("artwork_id = ?", a.ID).Delete(&artworks.Attachment{}).Error; err != nil {
			return err
		}
		// children of a series keep existing, parentless
		if err := tx.Model(&artworks.Artwork{}).
			Where("parent_artwork_id = ?", a.ID).
			Update("parent_artwork_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&a).Error
	})
	if err != nil {
		respondError(c, err, "Artwork not found", "Failed to delete artwork")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// PUT /artworks/:id/tags
// ------------------------------
func SetTags(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req SetTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var a artworks.Artwork
		if err := tx.Select("id").First(&a, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		return tagsapi.Set(tx, a.ID, req.Tags)
	})
	if err != nil {
		respondError(c, err, "Artwork not found", "Failed to set tags")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ---------- helpers

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func resolveOptional(tx *gorm.DB, kind references.Kind, userID uint, name string) (*uint, error) {
	if name == "" {
		return nil, nil
	}
	id, _, err := refsapi.ResolveOrCreate(tx, kind, userID, name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func resolveNames(tx *gorm.DB, kind references.Kind, userID uint, names []string) ([]uint, error) {
	ids := make([]uint, 0, len(names))
	seen := make(map[uint]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		id, _, err := refsapi.ResolveOrCreate(tx, kind, userID, name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func setNamedAssociations(tx *gorm.DB, userID uint, artworkID string, artists, collections, exhibitions []string) error {
	ids, err := resolveNames(tx, references.KindArtist, userID, artists)
	if err != nil {
		return err
	}
	if err := replaceJoinRows(tx, "artwork_artists", "artist_id", artworkID, ids); err != nil {
		return err
	}

	ids, err = resolveNames(tx, references.KindCollection, userID, collections)
	if err != nil {
		return err
	}
	if err := replaceJoinRows(tx, "artwork_collections", "collection_id", artworkID, ids); err != nil {
		return err
	}

	ids, err = resolveNames(tx, references.KindExhibition, userID, exhibitions)
	if err != nil {
		return err
	}
	return replaceJoinRows(tx, "artwork_exhibitions", "exhibition_id", artworkID, ids)
}

func updateNamedAssociations(tx *gorm.DB, userID uint, artworkID string, artists, collections, exhibitions *[]string) error {
	if artists != nil {
		ids, err := resolveNames(tx, references.KindArtist, userID, *artists)
		if err != nil {
			return err
		}
		if err := replaceJoinRows(tx, "artwork_artists", "artist_id", artworkID, ids); err != nil {
			return err
		}
	}
	if collections != nil {
		ids, err := resolveNames(tx, references.KindCollection, userID, *collections)
		if err != nil {
			return err
		}
		if err := replaceJoinRows(tx, "artwork_collections", "collection_id", artworkID, ids); err != nil {
			return err
		}
	}
	if exhibitions != nil {
		ids, err := resolveNames(tx, references.KindExhibition, userID, *exhibitions)
		if err != nil {
			return err
		}
		if err := replaceJoinRows(tx, "artwork_exhibitions", "exhibition_id", artworkID, ids); err != nil {
			return err
		}
	}
	return nil
}

const maxParentDepth = 32

// validateParentLink checks that the proposed parent exists, belongs to the
// same owner, and that following parent links from it never reaches the
// artwork being written. The walk is bounded so a corrupt chain cannot loop
// the request.
func validateParentLink(tx *gorm.DB, userID uint, artworkID, parentID string) error {
	cur := parentID
	for depth := 0; depth < maxParentDepth; depth++ {
		if artworkID != "" && cur == artworkID {
			return apperr.BadInputf("parent_artwork_id would create a cycle")
		}

		var next struct {
			ParentArtworkID *string
		}
		err := tx.Model(&artworks.Artwork{}).
			Select("parent_artwork_id").
			Where("id = ? AND user_id = ?", cur, userID).
			Take(&next).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if cur == parentID {
					return apperr.BadInputf("parent artwork not found")
				}
				return nil
			}
			return err
		}
		if next.ParentArtworkID == nil || *next.ParentArtworkID == "" {
			return nil
		}
		cur = *next.ParentArtworkID
	}
	return apperr.BadInputf("parent chain too deep")
}
