package http

import (
	"net/http"

	"aura-backend/internal/api/artworks"
	"aura-backend/internal/api/dashboard"
	"aura-backend/internal/api/references"
	"aura-backend/internal/api/tags"
	"aura-backend/internal/api/wishlist"
	"aura-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/")
	api.Use(middleware.AuthMiddleware())
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	art := api.Group("/artworks")
	{
		art.GET("", artworks.ListArtworks)
		art.POST("", artworks.CreateArtwork)
		art.GET("/:id", artworks.GetArtwork)
		art.PUT("/:id", artworks.UpdateArtwork)
		art.DELETE("/:id", artworks.DeleteArtwork)

		art.PUT("/:id/tags", artworks.SetTags)

		art.GET("/:id/photos", artworks.ListPhotos)
		art.POST("/:id/photos", artworks.AddPhoto)
		art.PUT("/:id/photos/:photoID/primary", artworks.SetPrimaryPhoto)
		art.DELETE("/:id/photos/:photoID", artworks.DeletePhoto)

		art.POST("/:id/attachments", artworks.AddAttachment)
		art.DELETE("/:id/attachments/:attachmentID", artworks.DeleteAttachment)
	}

	api.GET("/filter-options", artworks.FilterOptions)
	api.GET("/rotation-suggestion", artworks.RotationSuggestion)
	api.POST("/import/artworks", artworks.ImportArtworks)

	api.GET("/tags/autocomplete", tags.AutocompleteHandler)

	refs := api.Group("/references")
	{
		refs.POST("/:kind", references.Resolve)
		refs.GET("/:kind", references.List)
		refs.PUT("/:kind/:id", references.Update)
		refs.DELETE("/:kind/:id", references.Remove)
	}

	wl := api.Group("/wishlist")
	{
		wl.GET("", wishlist.List)
		wl.POST("", wishlist.Create)
		wl.DELETE("/:id", wishlist.Remove)
	}

	api.GET("/dashboard", dashboard.Overview)
}
