// Package prefs stores per-user interface preferences. The only
// preference today is the navbar theme color; the shape leaves room for
// more without another storage collection.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/facgure/launchpad/internal/infrastructure/storage"
)

const collection = "prefs"

// DefaultThemeColor is the Facgure blue the shell ships with
const DefaultThemeColor = "#002b41"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ErrInvalidColor is returned for values that are not a six-digit hex
// color
var ErrInvalidColor = errors.New("invalid theme color")

// Preferences is one user's stored interface preferences
type Preferences struct {
	UserID     string `json:"user_id"`
	ThemeColor string `json:"theme_color"`
}

// Manager reads and writes user preferences through the storage seam
type Manager struct {
	mu    sync.Mutex
	store storage.Store
}

// NewManager creates a preferences manager
func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

// ThemeColor returns the user's navbar color, or the default when none
// is stored
func (m *Manager) ThemeColor(userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefs, err := m.load(userID)
	if err != nil {
		return "", err
	}
	if prefs.ThemeColor == "" {
		return DefaultThemeColor, nil
	}
	return prefs.ThemeColor, nil
}

// SetThemeColor validates and stores the user's navbar color
func (m *Manager) SetThemeColor(userID, color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prefs, err := m.load(userID)
	if err != nil {
		return err
	}
	prefs.ThemeColor = color

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	return m.store.Put(collection, userID, data)
}

// Clear removes the user's stored preferences
func (m *Manager) Clear(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Delete(collection, userID)
}

func (m *Manager) load(userID string) (*Preferences, error) {
	data, err := m.store.Get(collection, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return &Preferences{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	return &prefs, nil
}
