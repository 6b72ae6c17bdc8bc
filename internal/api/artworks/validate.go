package artworks

import (
	"time"

	"aura-backend/internal/apperr"
	"aura-backend/internal/domain/artworks"
)

const (
	maxTitleLen   = 300
	maxCaptionLen = 300
	maxPathLen    = 500
)

func validateYear(year *int) error {
	if year == nil {
		return nil
	}
	if *year > time.Now().Year() {
		return apperr.BadInputf("creation_year cannot be in the future")
	}
	return nil
}

func validateMeasure(field string, v *float64) error {
	if v != nil && *v < 0 {
		return apperr.BadInputf("%s cannot be negative", field)
	}
	return nil
}

// normalizeLocation maps blank input to the default and rejects anything
// outside the closed set.
func normalizeLocation(s string) (string, error) {
	if s == "" {
		return artworks.DefaultLocation, nil
	}
	if !artworks.IsValidLocation(s) {
		return "", apperr.BadInputf("unknown location %q", s)
	}
	return s, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, apperr.BadInputf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &d, nil
}

func validateCreate(req *CreateArtworkRequest) error {
	if len(req.Title) > maxTitleLen {
		return apperr.BadInputf("title is limited to %d characters", maxTitleLen)
	}
	if err := validateYear(req.CreationYear); err != nil {
		return err
	}
	for field, v := range map[string]*float64{
		"height": req.Height, "width": req.Width, "depth": req.Depth,
		"weight": req.Weight, "price": req.Price,
	} {
		if err := validateMeasure(field, v); err != nil {
			return err
		}
	}
	return nil
}

func validateUpdate(req *UpdateArtworkRequest) error {
	if req.Title != nil && len(*req.Title) > maxTitleLen {
		return apperr.BadInputf("title is limited to %d characters", maxTitleLen)
	}
	if err := validateYear(req.CreationYear); err != nil {
		return err
	}
	for field, v := range map[string]*float64{
		"height": req.Height, "width": req.Width, "depth": req.Depth,
		"weight": req.Weight, "price": req.Price,
	} {
		if err := validateMeasure(field, v); err != nil {
			return err
		}
	}
	return nil
}

func validatePhoto(req *AddPhotoRequest) error {
	if len(req.ImagePath) > maxPathLen {
		return apperr.BadInputf("image_path is limited to %d characters", maxPathLen)
	}
	if len(req.Caption) > maxCaptionLen {
		return apperr.BadInputf("caption is limited to %d characters", maxCaptionLen)
	}
	return nil
}
