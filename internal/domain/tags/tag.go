package tags

import "time"

// Tag rows are deduplicated globally by name. There is no owner column:
// visibility is derived from the artworks a tag is attached to, so two owners
// using the same keyword share one row.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex:uniq_tag_name" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}
