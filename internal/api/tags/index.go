package tags

import (
	"strings"

	"aura-backend/internal/domain/tags"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Set replaces the artwork's complete tag set. Unknown names are created on
// first use through the unique index, never via check-then-insert. Reapplying
// the same names leaves the join rows as they were.
func Set(tx *gorm.DB, artworkID string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	ids := make([]uint, 0, len(names))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		t := tags.Tag{Name: name}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&t)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 || t.ID == 0 {
			if err := tx.Model(&tags.Tag{}).Select("id").Where("name = ?", name).Take(&t.ID).Error; err != nil {
				return err
			}
		}
		ids = append(ids, t.ID)
	}

	if err := tx.Exec("DELETE FROM artwork_tags WHERE artwork_id = ?", artworkID).Error; err != nil {
		return err
	}
	for _, id := range ids {
		if err := tx.Exec("INSERT INTO artwork_tags (artwork_id, tag_id) VALUES (?, ?)", artworkID, id).Error; err != nil {
			return err
		}
	}
	return nil
}

// Autocomplete lists tag names visible to the owner: only tags attached to at
// least one of their artworks, even though tag rows themselves are global.
// Matching is case-insensitive contains, capped at limit names.
func Autocomplete(db *gorm.DB, userID uint, query string, limit int) ([]string, error) {
	q := db.Model(&tags.Tag{}).
		Joins("JOIN artwork_tags ON artwork_tags.tag_id = tags.id").
		Joins("JOIN artworks ON artworks.id = artwork_tags.artwork_id").
		Where("artworks.user_id = ?", userID)

	query = strings.TrimSpace(query)
	if query != "" {
		q = q.Where("LOWER(tags.name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var names []string
	err := q.Distinct().
		Order("tags.name ASC").
		Limit(limit).
		Pluck("tags.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Owned lists every tag currently attached to one of the owner's artworks,
// for filter dropdowns.
func Owned(db *gorm.DB, userID uint) ([]tags.Tag, error) {
	var rows []tags.Tag
	err := db.Model(&tags.Tag{}).
		Joins("JOIN artwork_tags ON artwork_tags.tag_id = tags.id").
		Joins("JOIN artworks ON artworks.id = artwork_tags.artwork_id").
		Where("artworks.user_id = ?", userID).
		Distinct().
		Order("tags.name ASC").
		Find(&rows).Error
	return rows, err
}
