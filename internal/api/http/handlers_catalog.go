package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/facgure/launchpad/internal/shared/types"
)

// ListApps returns the full catalog, optionally filtered by category
func (h *Handlers) ListApps(c *gin.Context) {
	locale := requestLocale(c)

	if raw := c.Query("category"); raw != "" {
		cat := types.Category(raw)
		if !types.ValidCategory(cat) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "unknown category: " + raw,
			})
			return
		}
		apps := h.catalog.ByCategory(cat)
		displays := make([]types.AppDisplay, 0, len(apps))
		for _, app := range apps {
			displays = append(displays, app.DisplayLocalized(string(locale)))
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"apps":    displays,
			"count":   len(displays),
		})
		return
	}

	displays := h.catalog.Displays(string(locale))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"apps":    displays,
		"count":   len(displays),
	})
}

// GetApp returns a single catalog entry by id
func (h *Handlers) GetApp(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "app id must be numeric",
		})
		return
	}

	app, ok := h.catalog.App(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "app not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"app":     app.DisplayLocalized(string(requestLocale(c))),
	})
}
