package artworks

// ---------- requests
//
// Reference entities and tags arrive as names everywhere: any name the owner
// has not used before is created lazily during the write.

type CreateArtworkRequest struct {
	Title         string `json:"title"`
	CreationYear  *int   `json:"creation_year"`
	OriginCountry string `json:"origin_country"`

	ArtType   string `json:"art_type"`
	Support   string `json:"support"`
	Technique string `json:"technique"`

	Height *float64 `json:"height"`
	Width  *float64 `json:"width"`
	Depth  *float64 `json:"depth"`
	Weight *float64 `json:"weight"`

	AcquisitionDate  *string  `json:"acquisition_date"` // YYYY-MM-DD
	AcquisitionPlace string   `json:"acquisition_place"`
	Price            *float64 `json:"price"`
	Provenance       string   `json:"provenance"`

	IsFramed   bool  `json:"is_framed"`
	IsBorrowed bool  `json:"is_borrowed"`
	IsSigned   bool  `json:"is_signed"`
	IsAcquired *bool `json:"is_acquired"` // defaults to true

	CurrentLocation string `json:"current_location"` // blank -> default

	Artists     []string `json:"artists"`
	Collections []string `json:"collections"`
	Exhibitions []string `json:"exhibitions"`

	ParentArtworkID *string  `json:"parent_artwork_id"`
	Owners          string   `json:"owners"`
	Tags            []string `json:"tags"`

	ContextualReferences string  `json:"contextual_references"`
	Notes                string  `json:"notes"`
	LastExhibited        *string `json:"last_exhibited"` // YYYY-MM-DD
}

// UpdateArtworkRequest applies partially: nil means "leave alone", a pointer
// to the zero value clears. Slices replace the whole set when present.
type UpdateArtworkRequest struct {
	Title         *string `json:"title"`
	CreationYear  *int    `json:"creation_year"`
	OriginCountry *string `json:"origin_country"`

	ArtType   *string `json:"art_type"` // "" clears
	Support   *string `json:"support"`
	Technique *string `json:"technique"`

	Height *float64 `json:"height"`
	Width  *float64 `json:"width"`
	Depth  *float64 `json:"depth"`
	Weight *float64 `json:"weight"`

	AcquisitionDate  *string  `json:"acquisition_date"`
	AcquisitionPlace *string  `json:"acquisition_place"`
	Price            *float64 `json:"price"`
	Provenance       *string  `json:"provenance"`

	IsFramed   *bool `json:"is_framed"`
	IsBorrowed *bool `json:"is_borrowed"`
	IsSigned   *bool `json:"is_signed"`
	IsAcquired *bool `json:"is_acquired"`

	CurrentLocation *string `json:"current_location"`

	Artists     *[]string `json:"artists"`
	Collections *[]string `json:"collections"`
	Exhibitions *[]string `json:"exhibitions"`

	ParentArtworkID *string   `json:"parent_artwork_id"` // "" clears
	Owners          *string   `json:"owners"`
	Tags            *[]string `json:"tags"`

	ContextualReferences *string `json:"contextual_references"`
	Notes                *string `json:"notes"`
	LastExhibited        *string `json:"last_exhibited"` // "" clears
}

type AddPhotoRequest struct {
	ImagePath string `json:"image_path" binding:"required"`
	Caption   string `json:"caption"`
	IsPrimary bool   `json:"is_primary"`
}

type AddAttachmentRequest struct {
	FilePath string `json:"file_path" binding:"required"`
	Title    string `json:"title"`
	Notes    string `json:"notes"`
}

type SetTagsRequest struct {
	Tags []string `json:"tags"`
}
