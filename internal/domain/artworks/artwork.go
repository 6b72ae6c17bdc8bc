package artworks

import (
	"time"

	"aura-backend/internal/domain/references"
	"aura-backend/internal/domain/tags"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artwork is the catalog aggregate. Ids are random UUIDs on purpose: sequential
// ids would leak catalog size and allow enumeration.
type Artwork struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	Title         string `gorm:"size:300" json:"title,omitempty"`
	CreationYear  *int   `json:"creation_year,omitempty"`
	OriginCountry string `gorm:"size:100" json:"origin_country,omitempty"`

	ArtTypeID   *uint                 `gorm:"index" json:"art_type_id,omitempty"`
	ArtType     *references.ArtType   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"art_type,omitempty"`
	SupportID   *uint                 `gorm:"index" json:"support_id,omitempty"`
	Support     *references.Support   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"support,omitempty"`
	TechniqueID *uint                 `gorm:"index" json:"technique_id,omitempty"`
	Technique   *references.Technique `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"technique,omitempty"`

	// Dimensions in cm, weight in kg.
	Height *float64 `gorm:"type:numeric(8,2)" json:"height,omitempty"`
	Width  *float64 `gorm:"type:numeric(8,2)" json:"width,omitempty"`
	Depth  *float64 `gorm:"type:numeric(8,2)" json:"depth,omitempty"`
	Weight *float64 `gorm:"type:numeric(8,2)" json:"weight,omitempty"`

	AcquisitionDate  *time.Time `gorm:"type:date" json:"acquisition_date,omitempty"`
	AcquisitionPlace string     `gorm:"size:200" json:"acquisition_place,omitempty"`
	Price            *float64   `gorm:"type:numeric(10,2)" json:"price,omitempty"`
	Provenance       string     `gorm:"type:text" json:"provenance,omitempty"`

	IsFramed        bool   `gorm:"not null;default:false" json:"is_framed"`
	IsBorrowed      bool   `gorm:"not null;default:false" json:"is_borrowed"`
	IsSigned        bool   `gorm:"not null;default:false" json:"is_signed"`
	IsAcquired      bool   `gorm:"not null;default:true" json:"is_acquired"`
	CurrentLocation string `gorm:"size:50;not null;default:'domicile'" json:"current_location"`

	Artists     []references.Artist     `gorm:"many2many:artwork_artists;" json:"artists,omitempty"`
	Collections []references.Collection `gorm:"many2many:artwork_collections;" json:"collections,omitempty"`
	Exhibitions []references.Exhibition `gorm:"many2many:artwork_exhibitions;" json:"exhibitions,omitempty"`

	ParentArtworkID *string  `gorm:"type:uuid;index" json:"parent_artwork_id,omitempty"`
	ParentArtwork   *Artwork `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Free text naming previous owners, kept as-is from acquisition records.
	Owners string `gorm:"size:500" json:"owners,omitempty"`

	Tags                 []tags.Tag `gorm:"many2many:artwork_tags;" json:"tags,omitempty"`
	ContextualReferences string     `gorm:"type:text" json:"contextual_references,omitempty"`
	Notes                string     `gorm:"type:text" json:"notes,omitempty"`

	Photos      []ArtworkPhoto `gorm:"constraint:OnDelete:CASCADE;" json:"photos,omitempty"`
	Attachments []Attachment   `gorm:"constraint:OnDelete:CASCADE;" json:"attachments,omitempty"`

	LastExhibited *time.Time `gorm:"type:date" json:"last_exhibited,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
