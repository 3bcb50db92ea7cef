package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/facgure/launchpad/internal/domain/catalog"
	"github.com/facgure/launchpad/internal/domain/prefs"
	"github.com/facgure/launchpad/internal/domain/session"
	"github.com/facgure/launchpad/internal/domain/workspace"
	"github.com/facgure/launchpad/internal/infrastructure/logging"
	"github.com/facgure/launchpad/internal/shared/i18n"
)

// Handlers bundles the API surface's dependencies
type Handlers struct {
	sessions   *session.Manager
	workspaces *workspace.Manager
	catalog    *catalog.Registry
	prefs      *prefs.Manager
	logger     *logging.Logger
}

// NewHandlers creates the handler set
func NewHandlers(
	sessions *session.Manager,
	workspaces *workspace.Manager,
	reg *catalog.Registry,
	preferences *prefs.Manager,
	logger *logging.Logger,
) *Handlers {
	return &Handlers{
		sessions:   sessions,
		workspaces: workspaces,
		catalog:    reg,
		prefs:      preferences,
		logger:     logger,
	}
}

// Root returns service identification
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "launchpad",
		"status":  "running",
	})
}

// Health returns liveness and registry stats
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"registry": h.catalog.Stats(),
	})
}

// requestLocale resolves the display locale: explicit query parameter
// first, then the Accept-Language header, then the default
func requestLocale(c *gin.Context) i18n.Locale {
	if q := c.Query("locale"); q != "" {
		return i18n.Normalize(q)
	}
	header := c.GetHeader("Accept-Language")
	if header != "" {
		primary := strings.SplitN(header, ",", 2)[0]
		primary = strings.SplitN(strings.TrimSpace(primary), "-", 2)[0]
		return i18n.Normalize(primary)
	}
	return i18n.DefaultLocale
}
