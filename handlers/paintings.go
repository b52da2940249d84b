package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/TillGrassi/My-Portfolio/models"
	"github.com/TillGrassi/My-Portfolio/storage"
	"github.com/TillGrassi/My-Portfolio/uploads"
)

type PaintingHandler struct {
	Store   storage.Store
	Uploads *uploads.Saver
}

// List returns every painting, newest first.
func (h *PaintingHandler) List(c *gin.Context) {
	paintings, err := h.Store.ListPaintings()
	if err != nil {
		slog.Error("listing paintings failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch paintings"})
		return
	}
	c.JSON(http.StatusOK, paintings)
}

// Get returns a single painting by id.
func (h *PaintingHandler) Get(c *gin.Context) {
	id, ok := paintingID(c)
	if !ok {
		return
	}
	painting, found, err := h.Store.GetPainting(id)
	if err != nil {
		slog.Error("fetching painting failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch painting"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Painting not found"})
		return
	}
	c.JSON(http.StatusOK, painting)
}

// Create handles the admin multipart upload: the image file plus the
// painting fields. The image is rejected before anything is written;
// field validation runs after the file is stored, so a validation
// failure can leave an orphaned file behind (accepted trade-off, the
// row is never created).
func (h *PaintingHandler) Create(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
		return
	}

	imageURL, err := h.Uploads.Save(file)
	if err != nil {
		if errors.Is(err, uploads.ErrNotImage) || errors.Is(err, uploads.ErrTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		slog.Error("storing upload failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store image"})
		return
	}

	painting, errs := paintingFromForm(c, imageURL)
	if len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	created, err := h.Store.CreatePainting(painting)
	if err != nil {
		slog.Error("creating painting failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create painting"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func paintingFromForm(c *gin.Context, imageURL string) (models.Painting, []FieldError) {
	var errs []FieldError

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "is required"})
	}
	year, err := strconv.Atoi(c.PostForm("year"))
	if err != nil {
		errs = append(errs, FieldError{Field: "year", Message: "must be an integer"})
	}
	medium := strings.TrimSpace(c.PostForm("medium"))
	if medium == "" {
		errs = append(errs, FieldError{Field: "medium", Message: "is required"})
	}
	size := strings.TrimSpace(c.PostForm("size"))
	if size == "" {
		errs = append(errs, FieldError{Field: "size", Message: "is required"})
	}
	availability := c.PostForm("availability")
	if availability == "" {
		availability = models.AvailabilityAvailable
	}
	if !models.ValidAvailability(availability) {
		errs = append(errs, FieldError{Field: "availability", Message: "must be available, sold or not-for-sale"})
	}

	painting := models.Painting{
		Title:        title,
		Year:         year,
		Medium:       medium,
		Size:         size,
		ImageURL:     imageURL,
		Availability: availability,
		Tags:         datatypes.NewJSONSlice(splitTags(c.PostForm("tags"))),
		Featured:     c.PostForm("featured") == "true",
	}
	if description := c.PostForm("description"); description != "" {
		painting.Description = &description
	}
	return painting, errs
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Update merges a partial JSON body into an existing painting.
func (h *PaintingHandler) Update(c *gin.Context) {
	id, ok := paintingID(c)
	if !ok {
		return
	}

	var req struct {
		Title        *string   `json:"title"`
		Year         *int      `json:"year"`
		Medium       *string   `json:"medium"`
		Size         *string   `json:"size"`
		Description  *string   `json:"description"`
		ImageURL     *string   `json:"imageUrl"`
		Availability *string   `json:"availability"`
		Tags         *[]string `json:"tags"`
		Featured     *bool     `json:"featured"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	var errs []FieldError
	for field, value := range map[string]*string{"title": req.Title, "medium": req.Medium, "size": req.Size, "imageUrl": req.ImageURL} {
		if value != nil && strings.TrimSpace(*value) == "" {
			errs = append(errs, FieldError{Field: field, Message: "must not be empty"})
		}
	}
	if req.Availability != nil && !models.ValidAvailability(*req.Availability) {
		errs = append(errs, FieldError{Field: "availability", Message: "must be available, sold or not-for-sale"})
	}
	if len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	patch := storage.PaintingPatch{
		Title:        req.Title,
		Year:         req.Year,
		Medium:       req.Medium,
		Size:         req.Size,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Availability: req.Availability,
		Tags:         req.Tags,
		Featured:     req.Featured,
	}
	painting, found, err := h.Store.UpdatePainting(id, patch)
	if err != nil {
		slog.Error("updating painting failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update painting"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Painting not found"})
		return
	}
	c.JSON(http.StatusOK, painting)
}

// Delete removes a painting. Deleting an id that no longer exists still
// succeeds.
func (h *PaintingHandler) Delete(c *gin.Context) {
	id, ok := paintingID(c)
	if !ok {
		return
	}
	if err := h.Store.DeletePainting(id); err != nil {
		slog.Error("deleting painting failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete painting"})
		return
	}
	c.Status(http.StatusNoContent)
}

func paintingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid painting ID"})
		return 0, false
	}
	return uint(id), true
}
