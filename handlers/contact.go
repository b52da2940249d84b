package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TillGrassi/My-Portfolio/models"
	"github.com/TillGrassi/My-Portfolio/storage"
)

type ContactHandler struct {
	Store storage.Store
}

type contactRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Subject    string `json:"subject" binding:"required"`
	Message    string `json:"message" binding:"required,min=10"`
	PaintingID *uint  `json:"paintingId"`
}

// Submit stores an inquiry from the public contact form.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errs := fieldErrors(err); len(errs) > 0 {
			respondValidation(c, errs)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	message, err := h.Store.CreateContactMessage(models.ContactMessage{
		Name:       req.Name,
		Email:      req.Email,
		Subject:    req.Subject,
		Message:    req.Message,
		PaintingID: req.PaintingID,
	})
	if err != nil {
		slog.Error("creating contact message failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, message)
}

// ListMessages returns every inquiry for the admin, newest first.
func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.Store.ListContactMessages()
	if err != nil {
		slog.Error("listing contact messages failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}
