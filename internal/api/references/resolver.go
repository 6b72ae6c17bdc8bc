package references

import (
	"errors"
	"strings"

	"aura-backend/internal/apperr"
	"aura-backend/internal/domain/references"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResolveOrCreate maps a trimmed name to the id of the reference entity of the
// given kind, creating the row when absent. Two concurrent calls for the same
// scope cannot produce two rows: the insert goes through the unique index with
// ON CONFLICT DO NOTHING and loses silently, after which the existing row is
// read back. Never check-then-insert here.
func ResolveOrCreate(tx *gorm.DB, kind references.Kind, ownerID uint, name string) (uint, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false, apperr.BadInputf("name is required")
	}

	switch kind {
	case references.KindArtist:
		row := references.Artist{UserID: ownerID, Name: name}
		return upsertNamed(tx, &row, &row.ID, "user_id = ? AND name = ?", ownerID, name)
	case references.KindCollection:
		row := references.Collection{UserID: ownerID, Name: name}
		return upsertNamed(tx, &row, &row.ID, "user_id = ? AND name = ?", ownerID, name)
	case references.KindExhibition:
		row := references.Exhibition{UserID: ownerID, Name: name}
		return upsertNamed(tx, &row, &row.ID, "user_id = ? AND name = ?", ownerID, name)
	case references.KindArtType:
		row := references.ArtType{Name: name}
		return upsertNamed(tx, &row, &row.ID, "name = ?", name)
	case references.KindSupport:
		row := references.Support{Name: name}
		return upsertNamed(tx, &row, &row.ID, "name = ?", name)
	case references.KindTechnique:
		row := references.Technique{Name: name}
		return upsertNamed(tx, &row, &row.ID, "name = ?", name)
	}
	return 0, false, apperr.BadInputf("unknown reference kind %q", string(kind))
}

// upsertNamed inserts model (whose id field is id) and, when the unique index
// swallowed the insert, reads the surviving row back through cond.
func upsertNamed(tx *gorm.DB, model any, id *uint, cond string, args ...any) (uint, bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(model)
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected > 0 && *id != 0 {
		return *id, true, nil
	}
	if err := tx.Model(model).Select("id").Where(cond, args...).Take(id).Error; err != nil {
		return 0, false, err
	}
	return *id, false, nil
}

// ResolveOrdinal resolves a 1-based position in an ordered canonical name list,
// for import flows that ship positions instead of names.
func ResolveOrdinal(tx *gorm.DB, kind references.Kind, ownerID uint, ordinal int, names []string) (uint, bool, error) {
	if ordinal < 1 || ordinal > len(names) {
		return 0, false, apperr.BadInputf("ordinal %d out of range for %s (1..%d)", ordinal, string(kind), len(names))
	}
	return ResolveOrCreate(tx, kind, ownerID, names[ordinal-1])
}

// Rename changes the name of an entity. A collision inside the entity's scope
// is surfaced to the caller, unlike find-or-create flows which resolve
// silently. The unique index is the arbiter, so a concurrent rename into the
// same name still comes back as a conflict rather than a raw driver error.
func Rename(tx *gorm.DB, kind references.Kind, ownerID uint, id uint, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return apperr.BadInputf("name is required")
	}

	model, err := emptyModel(kind)
	if err != nil {
		return err
	}

	q := tx.Model(model).Where("id = ?", id)
	if kind.OwnerScoped() {
		q = q.Where("user_id = ?", ownerID)
	}

	res := q.Update("name", newName)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a reference entity and detaches it from artworks without
// touching the artworks themselves: classification FKs are nulled, association
// rows are dropped. Owner-scoped kinds only delete within the owner's scope.
func Delete(tx *gorm.DB, kind references.Kind, ownerID uint, id uint) error {
	switch kind {
	case references.KindArtist:
		if err := tx.Exec("DELETE FROM artwork_artists WHERE artist_id = ?", id).Error; err != nil {
			return err
		}
		return deleteScoped(tx, &references.Artist{}, ownerID, id)
	case references.KindCollection:
		if err := tx.Exec("DELETE FROM artwork_collections WHERE collection_id = ?", id).Error; err != nil {
			return err
		}
		return deleteScoped(tx, &references.Collection{}, ownerID, id)
	case references.KindExhibition:
		if err := tx.Exec("DELETE FROM artwork_exhibitions WHERE exhibition_id = ?", id).Error; err != nil {
			return err
		}
		return deleteScoped(tx, &references.Exhibition{}, ownerID, id)
	case references.KindArtType:
		if err := tx.Exec("UPDATE artworks SET art_type_id = NULL WHERE art_type_id = ?", id).Error; err != nil {
			return err
		}
		return deleteShared(tx, &references.ArtType{}, id)
	case references.KindSupport:
		if err := tx.Exec("UPDATE artworks SET support_id = NULL WHERE support_id = ?", id).Error; err != nil {
			return err
		}
		return deleteShared(tx, &references.Support{}, id)
	case references.KindTechnique:
		if err := tx.Exec("UPDATE artworks SET technique_id = NULL WHERE technique_id = ?", id).Error; err != nil {
			return err
		}
		return deleteShared(tx, &references.Technique{}, id)
	}
	return apperr.BadInputf("unknown reference kind %q", string(kind))
}

func deleteScoped(tx *gorm.DB, model any, ownerID uint, id uint) error {
	res := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteShared(tx *gorm.DB, model any, id uint) error {
	res := tx.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func emptyModel(kind references.Kind) (any, error) {
	switch kind {
	case references.KindArtist:
		return &references.Artist{}, nil
	case references.KindCollection:
		return &references.Collection{}, nil
	case references.KindExhibition:
		return &references.Exhibition{}, nil
	case references.KindArtType:
		return &references.ArtType{}, nil
	case references.KindSupport:
		return &references.Support{}, nil
	case references.KindTechnique:
		return &references.Technique{}, nil
	}
	return nil, apperr.BadInputf("unknown reference kind %q", string(kind))
}
