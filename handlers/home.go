package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TillGrassi/My-Portfolio/i18n"
	"github.com/TillGrassi/My-Portfolio/storage"
)

type HomeHandler struct {
	Store storage.Store
}

// Index renders the server-side gallery page. The language comes from
// the ?lang= query, defaulting to German like the site itself.
func (h *HomeHandler) Index(c *gin.Context) {
	tr := i18n.New(c.Query("lang"))

	paintings, err := h.Store.ListPaintings()
	if err != nil {
		slog.Error("listing paintings failed", "error", err)
		c.String(http.StatusInternalServerError, "Failed to load gallery")
		return
	}

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Tr":        tr,
		"Lang":      tr.Lang(),
		"Paintings": paintings,
	})
}
