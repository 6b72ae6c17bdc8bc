package database

import (
	"log"
	"os"

	"aura-backend/internal/domain/accounts"
	"aura-backend/internal/domain/artworks"
	"aura-backend/internal/domain/references"
	"aura-backend/internal/domain/tags"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which rename flows map to a conflict
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	log.Println("Connected and migrated successfully")
}

// Migrate creates or updates the schema for every domain model. Tests run it
// against their own databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// owners
		&accounts.User{},

		// reference vocabularies
		&references.Artist{},
		&references.Collection{},
		&references.Exhibition{},
		&references.ArtType{},
		&references.Support{},
		&references.Technique{},

		// keywords
		&tags.Tag{},

		// catalog
		&artworks.Artwork{},
		&artworks.ArtworkPhoto{},
		&artworks.Attachment{},
		&artworks.WishlistItem{},
	)
}
