package references

import "time"

type Artist struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index:uniq_artist_owner_name,unique,priority:1" json:"-"`

	Name        string `gorm:"size:200;not null;index:uniq_artist_owner_name,unique,priority:2" json:"name"`
	BirthYear   *int   `json:"birth_year,omitempty"`
	DeathYear   *int   `json:"death_year,omitempty"`
	Nationality string `gorm:"size:100" json:"nationality,omitempty"`
	Biography   string `gorm:"type:text" json:"biography,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Collection struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index:uniq_collection_owner_name,unique,priority:1" json:"-"`

	Name        string `gorm:"size:200;not null;index:uniq_collection_owner_name,unique,priority:2" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type Exhibition struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index:uniq_exhibition_owner_name,unique,priority:1" json:"-"`

	Name        string     `gorm:"size:200;not null;index:uniq_exhibition_owner_name,unique,priority:2" json:"name"`
	Location    string     `gorm:"size:200" json:"location,omitempty"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Description string     `gorm:"type:text" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ArtType, Support and Technique are shared vocabularies: one row per name,
// visible to every owner.

type ArtType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex:uniq_art_type_name" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}

type Support struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex:uniq_support_name" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}

type Technique struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex:uniq_technique_name" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}
