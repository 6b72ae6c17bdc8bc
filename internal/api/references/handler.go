package references

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aura-backend/database"
	"aura-backend/internal/apperr"
	"aura-backend/internal/domain/references"

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

func mustKind(c *gin.Context) (references.Kind, bool) {
	kind, err := references.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return kind, true
}

// ------------------------------
// POST /references/:kind  (find-or-create by name)
// ------------------------------
func Resolve(c *gin.Context) {
	kind, ok := mustKind(c)
	if !ok {
		return
	}
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		id      uint
		created bool
	)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		id, created, err = ResolveOrCreate(tx, kind, userID, req.Name)
		return err
	})
	if err != nil {
		if apperr.IsBadInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve reference"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"id": id, "name": strings.TrimSpace(req.Name), "created": created})
}

// ------------------------------
// GET /references/:kind?search=&page=
// ------------------------------
func List(c *gin.Context) {
	kind, ok := mustKind(c)
	if !ok {
		return
	}
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	const perPage = 20
	search := strings.TrimSpace(c.Query("search"))

	q := listQuery(database.DB, kind, userID)
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var entries []ListEntry
	err := q.Order("name ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Scan(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load references"})
		return
	}
	if entries == nil {
		entries = []ListEntry{}
	}

	c.JSON(http.StatusOK, gin.H{"items": entries, "page": page})
}

// listQuery builds the per-kind list with the owner's artwork counts. Shared
// kinds list every row; owner kinds list only the owner's rows.
func listQuery(db *gorm.DB, kind references.Kind, userID uint) *gorm.DB {
	switch kind {
	case references.KindArtist:
		return db.Model(&references.Artist{}).
			Select("artists.id, artists.name, (SELECT COUNT(*) FROM artwork_artists aa JOIN artworks a ON a.id = aa.artwork_id WHERE aa.artist_id = artists.id AND a.user_id = ?) AS artwork_count", userID).
			Where("artists.user_id = ?", userID)
	case references.KindCollection:
		return db.Model(&references.Collection{}).
			Select("collections.id, collections.name, (SELECT COUNT(*) FROM artwork_collections ac JOIN artworks a ON a.id = ac.artwork_id WHERE ac.collection_id = collections.id AND a.user_id = ?) AS artwork_count", userID).
			Where("collections.user_id = ?", userID)
	case references.KindExhibition:
		return db.Model(&references.Exhibition{}).
			Select("exhibitions.id, exhibitions.name, (SELECT COUNT(*) FROM artwork_exhibitions ae JOIN artworks a ON a.id = ae.artwork_id WHERE ae.exhibition_id = exhibitions.id AND a.user_id = ?) AS artwork_count", userID).
			Where("exhibitions.user_id = ?", userID)
	case references.KindArtType:
		return db.Model(&references.ArtType{}).
			Select("art_types.id, art_types.name, (SELECT COUNT(*) FROM artworks a WHERE a.art_type_id = art_types.id AND a.user_id = ?) AS artwork_count", userID)
	case references.KindSupport:
		return db.Model(&references.Support{}).
			Select("supports.id, supports.name, (SELECT COUNT(*) FROM artworks a WHERE a.support_id = supports.id AND a.user_id = ?) AS artwork_count", userID)
	default: // technique
		return db.Model(&references.Technique{}).
			Select("techniques.id, techniques.name, (SELECT COUNT(*) FROM artworks a WHERE a.technique_id = techniques.id AND a.user_id = ?) AS artwork_count", userID)
	}
}

// ------------------------------
// PUT /references/:kind/:id
// ------------------------------
func Update(c *gin.Context) {
	kind, ok := mustKind(c)
	if !ok {
		return
	}
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if req.Name != nil {
			if err := Rename(tx, kind, userID, uint(id), *req.Name); err != nil {
				return err
			}
		}
		return updateDetails(tx, kind, userID, uint(id), &req)
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reference not found"})
		case errors.Is(err, apperr.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "A " + string(kind) + " with this name already exists"})
		case apperr.IsBadInput(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reference"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func updateDetails(tx *gorm.DB, kind references.Kind, userID uint, id uint, req *UpdateDetailsRequest) error {
	updates := map[string]interface{}{}

	switch kind {
	case references.KindArtist:
		if req.BirthYear != nil {
			updates["birth_year"] = *req.BirthYear
		}
		if req.DeathYear != nil {
			updates["death_year"] = *req.DeathYear
		}
		if req.Nationality != nil {
			updates["nationality"] = *req.Nationality
		}
		if req.Biography != nil {
			updates["biography"] = *req.Biography
		}
	case references.KindCollection:
		if req.Description != nil {
			updates["description"] = *req.Description
		}
	case references.KindExhibition:
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Location != nil {
			updates["location"] = *req.Location
		}
		if req.StartDate != nil {
			d, err := parseDate(*req.StartDate)
			if err != nil {
				return err
			}
			updates["start_date"] = d
		}
		if req.EndDate != nil {
			d, err := parseDate(*req.EndDate)
			if err != nil {
				return err
			}
			updates["end_date"] = d
		}
	}
	if len(updates) == 0 {
		return nil
	}

	model, err := emptyModel(kind)
	if err != nil {
		return err
	}
	q := tx.Model(model).Where("id = ?", id)
	if kind.OwnerScoped() {
		q = q.Where("user_id = ?", userID)
	}
	res := q.Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, apperr.BadInputf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &d, nil
}

// ------------------------------
// DELETE /references/:kind/:id
// ------------------------------
func Remove(c *gin.Context) {
	kind, ok := mustKind(c)
	if !ok {
		return
	}
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return Delete(tx, kind, userID, uint(id))
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reference not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reference"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
