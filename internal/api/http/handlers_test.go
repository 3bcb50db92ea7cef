package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facgure/launchpad/internal/api/middleware"
	"github.com/facgure/launchpad/internal/domain/catalog"
	"github.com/facgure/launchpad/internal/domain/prefs"
	"github.com/facgure/launchpad/internal/domain/session"
	"github.com/facgure/launchpad/internal/domain/workspace"
	"github.com/facgure/launchpad/internal/infrastructure/logging"
	"github.com/facgure/launchpad/internal/infrastructure/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemStore()

	registry, err := catalog.Load()
	require.NoError(t, err)

	users, err := session.NewUserStore(store)
	require.NoError(t, err)

	var verifier session.Verifier = session.NewStaticVerifier(users)
	verifier = session.NewDemoVerifier(verifier, 4)

	sessions := session.NewManager(verifier, users, session.Config{
		Secret:  []byte("test-secret"),
		DemoOTP: true,
	})
	workspaces := workspace.NewManager(registry, store)
	preferences := prefs.NewManager(store)

	h := NewHandlers(sessions, workspaces, registry, preferences, logging.NewDevelopment())

	router := gin.New()
	router.GET("/health", h.Health)
	router.POST("/auth/login", h.Login)
	router.POST("/auth/forgot-password", h.ForgotPassword)
	router.POST("/auth/verify-otp", h.VerifyOTP)
	router.POST("/auth/reset-password", h.ResetPassword)
	router.GET("/auth/me", middleware.RequireSession(sessions), h.Me)
	router.GET("/catalog/apps", h.ListApps)
	router.GET("/catalog/apps/:id", h.GetApp)

	wsp := router.Group("/workspace", middleware.RequireSession(sessions))
	wsp.GET("/apps", h.InstalledApps)
	wsp.GET("/available", h.AvailableApps)
	wsp.POST("/apps", h.InstallApp)
	wsp.DELETE("/apps/:id", h.UninstallApp)
	wsp.GET("/notifications", h.Notifications)
	wsp.DELETE("/notifications", h.ClearNotifications)

	admin := router.Group("/admin", middleware.RequireSession(sessions), middleware.RequireAdmin())
	admin.GET("/workspaces", h.ActiveWorkspaces)

	pref := router.Group("/prefs", middleware.RequireSession(sessions))
	pref.GET("/theme", h.Theme)
	pref.PUT("/theme", h.SetTheme)

	return router
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(router, "POST", "/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginSeededAdmin(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "POST", "/auth/login", "", gin.H{
		"email":    "admin@facgure.com",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success     bool `json:"success"`
		User        struct{ Role string }
		Permissions struct {
			CanDeleteApps bool `json:"can_delete_apps"`
		}
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "admin", resp.User.Role)
	assert.True(t, resp.Permissions.CanDeleteApps)
}

func TestLoginDemoFallback(t *testing.T) {
	router := newTestRouter(t)

	// An unknown email with a long-enough password becomes a demo user
	w := doJSON(router, "POST", "/auth/login", "", gin.H{
		"email":    "visitor@example.com",
		"password": "letmein",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User struct{ Role string }
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user", resp.User.Role)

	// A known account with a wrong password also lands in the fallback,
	// never in the seeded role
	w = doJSON(router, "POST", "/auth/login", "", gin.H{
		"email":    "admin@facgure.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user", resp.User.Role)
}

func TestLoginShortPasswordRejected(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "POST", "/auth/login", "", gin.H{
		"email":    "visitor@example.com",
		"password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password_too_short")
}

func TestMeRequiresSession(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "GET", "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, router, "user@facgure.com", "user123")
	w = doJSON(router, "GET", "/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user@facgure.com")
}

func TestPasswordRecoveryFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "POST", "/auth/forgot-password", "", gin.H{
		"email": "user@facgure.com",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/auth/verify-otp", "", gin.H{
		"email": "user@facgure.com",
		"otp":   "000000",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, "POST", "/auth/verify-otp", "", gin.H{
		"email": "user@facgure.com",
		"otp":   "123456",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/auth/reset-password", "", gin.H{
		"email":        "user@facgure.com",
		"otp":          "123456",
		"new_password": "newpass",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	login(t, router, "user@facgure.com", "newpass")
}

func TestCatalogList(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "GET", "/catalog/apps", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 17, resp.Count)
}

func TestCatalogCategoryFilter(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "GET", "/catalog/apps?category=finance", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Count)

	w = doJSON(router, "GET", "/catalog/apps?category=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogGetUnknownApp(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "GET", "/catalog/apps/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, "GET", "/catalog/apps/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogThaiLocale(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "GET", "/catalog/apps/1?locale=th", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "กกพ.")
}

func TestInstallFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "user@facgure.com", "user123")

	// Fresh workspaces hold the system apps
	w := doJSON(router, "GET", "/workspace/apps", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var grid struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grid))
	assert.Equal(t, 4, grid.Count)

	// Install a directory app
	w = doJSON(router, "POST", "/workspace/apps", token, gin.H{"app_id": 5})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"installed":true`)

	// Installing again succeeds without duplicating
	w = doJSON(router, "POST", "/workspace/apps", token, gin.H{"app_id": 5})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"installed":false`)

	w = doJSON(router, "GET", "/workspace/apps", token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grid))
	assert.Equal(t, 5, grid.Count)

	// Install lands a notification from the directory
	w = doJSON(router, "GET", "/workspace/notifications", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "has been installed successfully")
}

func TestInstallUnknownApp(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "user@facgure.com", "user123")

	w := doJSON(router, "POST", "/workspace/apps", token, gin.H{"app_id": 42})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUninstallRequiresAdmin(t *testing.T) {
	router := newTestRouter(t)

	userToken := login(t, router, "user@facgure.com", "user123")
	w := doJSON(router, "POST", "/workspace/apps", userToken, gin.H{"app_id": 5})
	require.Equal(t, http.StatusOK, w.Code)

	// Regular users cannot remove apps, even their own
	w = doJSON(router, "DELETE", "/workspace/apps/5", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admins can
	adminToken := login(t, router, "admin@facgure.com", "admin123")
	w = doJSON(router, "POST", "/workspace/apps", adminToken, gin.H{"app_id": 5})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, "DELETE", "/workspace/apps/5", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAvailableExcludesInstalled(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "user@facgure.com", "user123")

	w := doJSON(router, "GET", "/workspace/available", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 13, resp.Count)

	doJSON(router, "POST", "/workspace/apps", token, gin.H{"app_id": 6})

	w = doJSON(router, "GET", "/workspace/available", token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Count)
}

func TestClearNotifications(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "user@facgure.com", "user123")

	w := doJSON(router, "DELETE", "/workspace/notifications", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/workspace/notifications", token, nil)
	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
}

func TestAdminWorkspaceListing(t *testing.T) {
	router := newTestRouter(t)

	userToken := login(t, router, "user@facgure.com", "user123")
	w := doJSON(router, "GET", "/admin/workspaces", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Touch the user's workspace so it shows up in the listing
	doJSON(router, "GET", "/workspace/apps", userToken, nil)

	adminToken := login(t, router, "admin@facgure.com", "admin123")
	w = doJSON(router, "GET", "/admin/workspaces", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestThemePreference(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "user@facgure.com", "user123")

	w := doJSON(router, "GET", "/prefs/theme", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "#002b41")

	w = doJSON(router, "PUT", "/prefs/theme", token, gin.H{"theme_color": "#1a2b3c"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/prefs/theme", token, nil)
	assert.Contains(t, w.Body.String(), "#1a2b3c")

	w = doJSON(router, "PUT", "/prefs/theme", token, gin.H{"theme_color": "blue"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
