package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/facgure/launchpad/internal/infrastructure/monitoring"
	"github.com/facgure/launchpad/internal/infrastructure/storage"
	"github.com/facgure/launchpad/internal/shared/i18n"
	"github.com/facgure/launchpad/internal/shared/types"
)

const collection = "workspaces"

var (
	// ErrUnknownApp is returned when an install references an id with no
	// registered manifest
	ErrUnknownApp = errors.New("unknown app id")

	// ErrPermissionDenied is returned when the caller lacks the delete
	// capability; the installed set is unchanged
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotInstalled is returned when an uninstall targets an app absent
	// from the installed set
	ErrNotInstalled = errors.New("app not installed")
)

// Catalog is the registry view the manager depends on
type Catalog interface {
	App(id int) (types.ResolvedApp, bool)
	SystemApps() []types.ResolvedApp
	Available(installed map[int]bool) []types.AppDisplay
}

// Manager owns all workspaces. It is the single mutator of installed sets
// and notification feeds.
type Manager struct {
	mu         sync.RWMutex
	workspaces map[string]*Workspace // keyed by user id
	catalog    Catalog
	store      storage.Store
	metrics    *monitoring.Metrics
}

// NewManager creates a workspace manager backed by the given store
func NewManager(catalog Catalog, store storage.Store) *Manager {
	return &Manager{
		workspaces: make(map[string]*Workspace),
		catalog:    catalog,
		store:      store,
	}
}

// WithMetrics adds metrics tracking to the manager
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// Installed returns the user's installed apps in append order
func (m *Manager) Installed(userID string) ([]types.AppDisplay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ws, err := m.get(userID)
	if err != nil {
		return nil, err
	}

	out := make([]types.AppDisplay, len(ws.Apps))
	copy(out, ws.Apps)
	return out, nil
}

// Available returns the registry apps not in the user's installed set,
// in registry order
func (m *Manager) Available(userID string) ([]types.AppDisplay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ws, err := m.get(userID)
	if err != nil {
		return nil, err
	}
	return m.catalog.Available(ws.installedIDs()), nil
}

// Install adds an app to the user's installed set and emits an install
// notification. Re-installing a present app is a no-op: the set and the
// feed are unchanged and installed is false.
func (m *Manager) Install(userID string, appID int, locale i18n.Locale) (app types.AppDisplay, installed bool, err error) {
	resolved, ok := m.catalog.App(appID)
	if !ok {
		return types.AppDisplay{}, false, fmt.Errorf("%w: %d", ErrUnknownApp, appID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ws, err := m.get(userID)
	if err != nil {
		return types.AppDisplay{}, false, err
	}

	display := resolved.Display()
	if ws.has(appID) {
		return display, false, nil
	}

	ws.Apps = append(ws.Apps, display)
	m.push(ws, i18n.T(locale, "appStore"), i18n.Tf(locale, "appInstalled", display.Name))

	if err := m.persist(ws); err != nil {
		return types.AppDisplay{}, false, err
	}

	if m.metrics != nil {
		m.metrics.AppInstalls.Inc()
	}
	return display, true, nil
}

// Uninstall removes an app from the user's installed set. The caller's
// delete capability is checked first; a denial leaves the set unchanged.
func (m *Manager) Uninstall(userID string, appID int, perms types.Permissions) error {
	if !perms.CanDeleteApps {
		if m.metrics != nil {
			m.metrics.UninstallDenials.Inc()
		}
		return ErrPermissionDenied
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ws, err := m.get(userID)
	if err != nil {
		return err
	}

	for i := range ws.Apps {
		if ws.Apps[i].ID == appID {
			ws.Apps = append(ws.Apps[:i], ws.Apps[i+1:]...)
			if err := m.persist(ws); err != nil {
				return err
			}
			if m.metrics != nil {
				m.metrics.AppUninstalls.Inc()
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrNotInstalled, appID)
}

// Notifications returns the user's feed, newest first
func (m *Manager) Notifications(userID string) ([]types.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ws, err := m.get(userID)
	if err != nil {
		return nil, err
	}

	out := make([]types.Notification, len(ws.Notifications))
	copy(out, ws.Notifications)
	return out, nil
}

// Notify pushes a notification into a user's feed
func (m *Manager) Notify(userID, app, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ws, err := m.get(userID)
	if err != nil {
		return err
	}

	m.push(ws, app, message)
	return m.persist(ws)
}

// Dismiss removes one notification by id; dismissing an unknown id is a
// no-op
func (m *Manager) Dismiss(userID, notificationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ws, err := m.get(userID)
	if err != nil {
		return err
	}

	for i := range ws.Notifications {
		if ws.Notifications[i].ID == notificationID {
			ws.Notifications = append(ws.Notifications[:i], ws.Notifications[i+1:]...)
			return m.persist(ws)
		}
	}
	return nil
}

// ClearNotifications empties the user's feed
func (m *Manager) ClearNotifications(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ws, err := m.get(userID)
	if err != nil {
		return err
	}

	ws.Notifications = nil
	return m.persist(ws)
}

// ActiveUsers returns the ids of workspaces currently held in memory
func (m *Manager) ActiveUsers() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]string, 0, len(m.workspaces))
	for id := range m.workspaces {
		users = append(users, id)
	}
	return users
}

// get returns the user's workspace, loading it from the store or seeding
// a fresh one. Caller must hold m.mu.
func (m *Manager) get(userID string) (*Workspace, error) {
	if ws, ok := m.workspaces[userID]; ok {
		return ws, nil
	}

	data, err := m.store.Get(collection, userID)
	switch {
	case err == nil:
		var ws Workspace
		if err := json.Unmarshal(data, &ws); err != nil {
			return nil, fmt.Errorf("failed to unmarshal workspace %s: %w", userID, err)
		}
		m.workspaces[userID] = &ws
		m.trackActive()
		return &ws, nil
	case errors.Is(err, storage.ErrNotFound):
		ws := m.seed(userID)
		m.workspaces[userID] = ws
		m.trackActive()
		if err := m.persist(ws); err != nil {
			return nil, err
		}
		return ws, nil
	default:
		return nil, fmt.Errorf("failed to load workspace %s: %w", userID, err)
	}
}

// seed builds a fresh workspace: system apps in registry order plus the
// demo notification feed
func (m *Manager) seed(userID string) *Workspace {
	now := time.Now()
	ws := &Workspace{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, app := range m.catalog.SystemApps() {
		ws.Apps = append(ws.Apps, app.Display())
	}

	for _, n := range []struct{ app, message string }{
		{"ERC", "New document available for review"},
		{"RE Procurement", "Procurement request approved by management"},
		{"Power Purchase", "New power purchase agreement requires attention"},
	} {
		m.push(ws, n.app, n.message)
	}

	return ws
}

// push prepends a notification. Caller must hold m.mu.
func (m *Manager) push(ws *Workspace, app, message string) {
	n := types.Notification{
		ID:        uuid.New().String(),
		App:       app,
		Message:   message,
		Timestamp: time.Now(),
	}
	ws.Notifications = append([]types.Notification{n}, ws.Notifications...)

	if m.metrics != nil {
		m.metrics.NotificationsEmitted.Inc()
	}
}

// persist writes the workspace through the store. Caller must hold m.mu.
func (m *Manager) persist(ws *Workspace) error {
	ws.UpdatedAt = time.Now()

	data, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}
	if err := m.store.Put(collection, ws.UserID, data); err != nil {
		return fmt.Errorf("failed to persist workspace: %w", err)
	}
	return nil
}

func (m *Manager) trackActive() {
	if m.metrics != nil {
		m.metrics.WorkspacesActive.Set(float64(len(m.workspaces)))
	}
}
