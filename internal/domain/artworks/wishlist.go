package artworks

import "time"

const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// WishlistItem is a piece the owner wants but does not have. The artist is
// free text since they may not exist in the catalog yet.
type WishlistItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"-"`

	Title          string   `gorm:"size:300;not null" json:"title"`
	ArtistName     string   `gorm:"size:200" json:"artist_name,omitempty"`
	EstimatedPrice *float64 `gorm:"type:numeric(10,2)" json:"estimated_price,omitempty"`
	Priority       int      `gorm:"not null;default:3" json:"priority"`
	Notes          string   `gorm:"type:text" json:"notes,omitempty"`
	SourceURL      string   `gorm:"size:500" json:"source_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
