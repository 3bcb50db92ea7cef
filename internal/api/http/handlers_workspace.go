package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/facgure/launchpad/internal/api/middleware"
	"github.com/facgure/launchpad/internal/domain/workspace"
	"github.com/facgure/launchpad/internal/shared/i18n"
)

// InstalledApps returns the caller's launchpad grid
func (h *Handlers) InstalledApps(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	apps, err := h.workspaces.Installed(sess.User.ID)
	if err != nil {
		h.workspaceFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"apps":    apps,
		"count":   len(apps),
	})
}

// AvailableApps returns directory entries not yet on the caller's grid
func (h *Handlers) AvailableApps(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	apps, err := h.workspaces.Available(sess.User.ID)
	if err != nil {
		h.workspaceFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"apps":    apps,
		"count":   len(apps),
	})
}

// InstallApp adds a directory app to the caller's grid
func (h *Handlers) InstallApp(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var req struct {
		AppID int `json:"app_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "app_id is required",
		})
		return
	}

	app, installed, err := h.workspaces.Install(sess.User.ID, req.AppID, requestLocale(c))
	if err != nil {
		h.workspaceFailure(c, err)
		return
	}

	if installed {
		h.logger.Info("App installed",
			zap.String("user", sess.User.ID),
			zap.Int("app", req.AppID),
		)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"app":       app,
		"installed": installed,
	})
}

// UninstallApp removes an app from the caller's grid. Only admins
// carry the delete permission; everyone else is refused.
func (h *Handlers) UninstallApp(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "app id must be numeric",
		})
		return
	}

	if err := h.workspaces.Uninstall(sess.User.ID, id, sess.Permissions()); err != nil {
		if errors.Is(err, workspace.ErrPermissionDenied) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   i18n.T(requestLocale(c), "permissionDenied"),
			})
			return
		}
		h.workspaceFailure(c, err)
		return
	}

	h.logger.Info("App uninstalled",
		zap.String("user", sess.User.ID),
		zap.Int("app", id),
	)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Notifications returns the caller's notification feed, newest first
func (h *Handlers) Notifications(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	notes, err := h.workspaces.Notifications(sess.User.ID)
	if err != nil {
		h.workspaceFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": notes,
		"count":         len(notes),
	})
}

// DismissNotification drops a single entry from the caller's feed
func (h *Handlers) DismissNotification(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	if err := h.workspaces.Dismiss(sess.User.ID, c.Param("id")); err != nil {
		h.workspaceFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClearNotifications empties the caller's feed
func (h *Handlers) ClearNotifications(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	if err := h.workspaces.ClearNotifications(sess.User.ID); err != nil {
		h.workspaceFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ActiveWorkspaces lists the user ids with a loaded workspace. Admin
// operations panel only.
func (h *Handlers) ActiveWorkspaces(c *gin.Context) {
	users := h.workspaces.ActiveUsers()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
		"count":   len(users),
	})
}

func (h *Handlers) workspaceFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workspace.ErrUnknownApp):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "app not found",
		})
	case errors.Is(err, workspace.ErrNotInstalled):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "app is not installed",
		})
	default:
		h.logger.Error("Workspace operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal error",
		})
	}
}
