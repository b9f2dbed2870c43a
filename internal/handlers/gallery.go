package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"painter-booking-backend/internal/database"
	"painter-booking-backend/internal/middleware"
	"painter-booking-backend/internal/models"
	"painter-booking-backend/internal/presenter"
)

// AddGalleryImage godoc
// @Summary     Add a gallery image
// @Description Uploads an image to storage and appends it to the painter's gallery.
// @Tags        gallery
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       image formData file true "Gallery image"
// @Param       description formData string false "Free-text description"
// @Success     200 {object} models.GalleryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /painter/gallery [post]
func (h *PaintersHandler) AddGalleryImage(c *gin.Context) {
	painter, ok := middleware.PainterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "painter not found in context"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no image uploaded"})
		return
	}

	if h.images == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "storage not available"})
		return
	}

	url, err := h.images.UploadGalleryImage(painter.ID, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to upload image", Message: err.Error()})
		return
	}

	if _, err := h.store.AddGalleryEntry(&models.GalleryEntry{
		PainterID:   painter.ID,
		Image:       url,
		Description: c.PostForm("description"),
	}); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save gallery entry", Message: err.Error()})
		return
	}

	h.respondGallery(c, painter.ID)
}

// GetGallery godoc
// @Summary     Get own gallery
// @Tags        gallery
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.GalleryResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /painter/gallery [get]
func (h *PaintersHandler) GetGallery(c *gin.Context) {
	painter, ok := middleware.PainterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "painter not found in context"})
		return
	}

	h.respondGallery(c, painter.ID)
}

// UpdateGalleryImage godoc
// @Summary     Update a gallery entry description
// @Tags        gallery
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       image_id path string true "Gallery entry ID (UUID)"
// @Param       request body models.GalleryDescriptionRequest true "New description"
// @Success     200 {object} models.GalleryResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /painter/gallery/{image_id} [put]
func (h *PaintersHandler) UpdateGalleryImage(c *gin.Context) {
	painter, ok := middleware.PainterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "painter not found in context"})
		return
	}

	entryID, err := uuid.Parse(c.Param("image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid image id"})
		return
	}

	var req models.GalleryDescriptionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if _, err := h.store.UpdateGalleryDescription(painter.ID, entryID, req.Description); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update gallery", Message: err.Error()})
		return
	}

	h.respondGallery(c, painter.ID)
}

// DeleteGalleryImage godoc
// @Summary     Delete a gallery entry
// @Description Removes the gallery record, then deletes the stored object best-effort.
// @Tags        gallery
// @Produce     json
// @Security    Bearer
// @Param       image_id path string true "Gallery entry ID (UUID)"
// @Success     200 {object} models.GalleryResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /painter/gallery/{image_id} [delete]
func (h *PaintersHandler) DeleteGalleryImage(c *gin.Context) {
	painter, ok := middleware.PainterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "painter not found in context"})
		return
	}

	entryID, err := uuid.Parse(c.Param("image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid image id"})
		return
	}

	deleted, err := h.store.DeleteGalleryEntry(painter.ID, entryID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete gallery entry", Message: err.Error()})
		return
	}

	// The record deletion stands even if the provider-side delete fails
	if h.images != nil {
		h.images.RemoveStoredImage(deleted.Image)
	}

	h.respondGallery(c, painter.ID)
}

func (h *PaintersHandler) respondGallery(c *gin.Context, painterID uuid.UUID) {
	gallery, err := h.store.GetGallery(painterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch gallery", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.GalleryResponse{
		Gallery: presenter.Gallery(presenter.RequestBaseURL(c), gallery),
	})
}
