package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/facgure/launchpad/internal/api/middleware"
	"github.com/facgure/launchpad/internal/domain/prefs"
)

// Theme returns the caller's theme color
func (h *Handlers) Theme(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	color, err := h.prefs.ThemeColor(sess.User.ID)
	if err != nil {
		h.logger.Error("Theme lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal error",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"theme_color": color,
	})
}

// SetTheme persists the caller's theme color
func (h *Handlers) SetTheme(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var req struct {
		ThemeColor string `json:"theme_color" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "theme_color is required",
		})
		return
	}

	if err := h.prefs.SetThemeColor(sess.User.ID, req.ThemeColor); err != nil {
		if errors.Is(err, prefs.ErrInvalidColor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "theme_color must be a #rrggbb hex value",
			})
			return
		}
		h.logger.Error("Theme update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal error",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"theme_color": req.ThemeColor,
	})
}

// ResetTheme restores the default theme color
func (h *Handlers) ResetTheme(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	if err := h.prefs.Clear(sess.User.ID); err != nil {
		h.logger.Error("Theme reset failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal error",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"theme_color": prefs.DefaultThemeColor,
	})
}
