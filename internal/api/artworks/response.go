package artworks

import (
	"time"

	"aura-backend/internal/domain/artworks"
)

type ArtworkListItem struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Artists         []string  `json:"artists"`
	CreationYear    *int      `json:"creation_year,omitempty"`
	CurrentLocation string    `json:"current_location"`
	PrimaryPhoto    string    `json:"primary_photo,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type PageDTO struct {
	Items    []ArtworkListItem `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Total    int64             `json:"total"`
}

func ToListItem(a *artworks.Artwork) ArtworkListItem {
	item := ArtworkListItem{
		ID:              a.ID,
		Title:           a.Title,
		Artists:         make([]string, 0, len(a.Artists)),
		CreationYear:    a.CreationYear,
		CurrentLocation: a.CurrentLocation,
		CreatedAt:       a.CreatedAt,
	}
	for _, artist := range a.Artists {
		item.Artists = append(item.Artists, artist.Name)
	}
	// photos are preloaded primary-first
	if len(a.Photos) > 0 && a.Photos[0].IsPrimary {
		item.PrimaryPhoto = a.Photos[0].ImagePath
	}
	return item
}
