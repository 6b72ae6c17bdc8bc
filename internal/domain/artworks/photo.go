package artworks

import "time"

// ArtworkPhoto stores a reference to an already-processed image; the binary
// itself lives with the storage collaborator. At most one photo per artwork
// carries IsPrimary — writes clear the flag on siblings in the same
// transaction. Deleting the primary never promotes another photo.
type ArtworkPhoto struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ArtworkID string `gorm:"type:uuid;not null;index" json:"-"`

	ImagePath string `gorm:"size:500;not null" json:"image_path"`
	Caption   string `gorm:"size:300" json:"caption,omitempty"`
	IsPrimary bool   `gorm:"not null;default:false" json:"is_primary"`

	CreatedAt time.Time `json:"created_at"`
}

// Attachment is any non-photo file tied to an artwork: invoices, certificates,
// condition reports.
type Attachment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ArtworkID string `gorm:"type:uuid;not null;index" json:"-"`

	FilePath string `gorm:"size:500;not null" json:"file_path"`
	Title    string `gorm:"size:300" json:"title,omitempty"`
	Notes    string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
