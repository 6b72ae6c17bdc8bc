package database

import (
	"aura-backend/internal/domain/references"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedReferenceData installs the canonical shared vocabularies. Safe to run on
// every startup: existing names are left untouched.
func SeedReferenceData(db *gorm.DB) error {
	for _, name := range references.DefaultArtTypes {
		row := references.ArtType{Name: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	for _, name := range references.DefaultSupports {
		row := references.Support{Name: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	for _, name := range references.DefaultTechniques {
		row := references.Technique{Name: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
