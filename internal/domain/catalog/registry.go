package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/facgure/launchpad/internal/domain/icons"
	"github.com/facgure/launchpad/internal/shared/types"
)

//go:embed manifests/*.json
var manifestFS embed.FS

// manifestFiles fixes the load order, which is also the default display
// order on the dashboard grid.
var manifestFiles = []string{
	"manifests/erc.json",
	"manifests/re-procurement.json",
	"manifests/profile.json",
	"manifests/power-purchase.json",
	"manifests/analytics-dashboard.json",
	"manifests/calendar.json",
	"manifests/document-manager.json",
	"manifests/messaging.json",
	"manifests/email-client.json",
	"manifests/system-settings.json",
	"manifests/energy-optimizer.json",
	"manifests/database-explorer.json",
	"manifests/contract-management.json",
	"manifests/project-tracker.json",
	"manifests/financial-reports.json",
	"manifests/team-management.json",
	"manifests/payment-portal.json",
}

// Registry is the immutable, ordered set of resolved app manifests
type Registry struct {
	apps []types.ResolvedApp
	byID map[int]int // id -> index into apps
}

// Load builds the registry from the compiled-in manifests. Any validation
// or icon resolution failure aborts the load with a diagnostic naming the
// offending manifest.
func Load() (*Registry, error) {
	reg := &Registry{byID: make(map[int]int, len(manifestFiles))}

	for _, file := range manifestFiles {
		data, err := manifestFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", file, err)
		}
		if err := reg.add(data); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", file, err)
		}
	}

	return reg, nil
}

// add parses, validates, and resolves a single manifest
func (r *Registry) add(data []byte) error {
	var m types.AppManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to unmarshal: %w", err)
	}

	if err := m.Validate(); err != nil {
		return err
	}

	if _, exists := r.byID[m.ID]; exists {
		return fmt.Errorf("duplicate app id %d (%s)", m.ID, m.Name)
	}

	def, err := icons.Resolve(m.Icon)
	if err != nil {
		return fmt.Errorf("app %q: %w", m.Name, err)
	}

	r.byID[m.ID] = len(r.apps)
	r.apps = append(r.apps, types.ResolvedApp{AppManifest: m, IconDef: def})
	return nil
}

// Apps returns all apps in registry order
func (r *Registry) Apps() []types.ResolvedApp {
	out := make([]types.ResolvedApp, len(r.apps))
	copy(out, r.apps)
	return out
}

// App retrieves an app by id
func (r *Registry) App(id int) (types.ResolvedApp, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return types.ResolvedApp{}, false
	}
	return r.apps[idx], true
}

// ByCategory returns the apps in a category, in registry order
func (r *Registry) ByCategory(category types.Category) []types.ResolvedApp {
	var out []types.ResolvedApp
	for _, app := range r.apps {
		if app.Category == category {
			out = append(out, app)
		}
	}
	return out
}

// SystemApps returns the apps present in every fresh workspace,
// in registry order
func (r *Registry) SystemApps() []types.ResolvedApp {
	var out []types.ResolvedApp
	for _, app := range r.apps {
		if app.IsSystem {
			out = append(out, app)
		}
	}
	return out
}

// Available returns the display projections of apps not in the installed
// set. Order follows the registry, not installation recency.
func (r *Registry) Available(installed map[int]bool) []types.AppDisplay {
	var out []types.AppDisplay
	for i := range r.apps {
		if !installed[r.apps[i].ID] {
			out = append(out, r.apps[i].Display())
		}
	}
	return out
}

// Displays returns the display projections of all apps for a locale,
// in registry order
func (r *Registry) Displays(locale string) []types.AppDisplay {
	out := make([]types.AppDisplay, len(r.apps))
	for i := range r.apps {
		out[i] = r.apps[i].DisplayLocalized(locale)
	}
	return out
}

// Len returns the number of registered apps
func (r *Registry) Len() int {
	return len(r.apps)
}

// Stats summarizes the registry contents
type Stats struct {
	TotalApps  int                    `json:"total_apps"`
	SystemApps int                    `json:"system_apps"`
	Categories map[types.Category]int `json:"categories"`
}

// Stats returns registry statistics
func (r *Registry) Stats() Stats {
	s := Stats{
		TotalApps:  len(r.apps),
		Categories: make(map[types.Category]int),
	}
	for _, app := range r.apps {
		s.Categories[app.Category]++
		if app.IsSystem {
			s.SystemApps++
		}
	}
	return s
}
