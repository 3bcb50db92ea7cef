package types

import "fmt"

// Category classifies an app in the directory
type Category string

const (
	CategoryUtilities     Category = "utilities"
	CategoryFinance       Category = "finance"
	CategoryProductivity  Category = "productivity"
	CategoryCommunication Category = "communication"
)

// ValidCategory reports whether c is one of the known categories
func ValidCategory(c Category) bool {
	switch c {
	case CategoryUtilities, CategoryFinance, CategoryProductivity, CategoryCommunication:
		return true
	}
	return false
}

// Permission is a capability tag an app declares in its manifest
type Permission string

const (
	PermReadUser       Permission = "read:user"
	PermWriteUser      Permission = "write:user"
	PermReadDocuments  Permission = "read:documents"
	PermWriteDocuments Permission = "write:documents"
	PermReadFinance    Permission = "read:finance"
	PermWriteFinance   Permission = "write:finance"
	PermAdmin          Permission = "admin"
)

// ValidPermission reports whether p is one of the known capability tags
func ValidPermission(p Permission) bool {
	switch p {
	case PermReadUser, PermWriteUser, PermReadDocuments, PermWriteDocuments,
		PermReadFinance, PermWriteFinance, PermAdmin:
		return true
	}
	return false
}

// Author identifies the publisher of an app
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Translation carries per-locale overrides for display strings
type Translation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AppManifest is the static descriptor of an installable mini-application.
// Manifests are immutable after load; ids are stable across sessions.
type AppManifest struct {
	ID               int                    `json:"id"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	Version          string                 `json:"version"`
	Author           Author                 `json:"author"`
	Category         Category               `json:"category"`
	Icon             string                 `json:"icon"`
	Color            string                 `json:"color"`
	Permissions      []Permission           `json:"permissions"`
	EntryPoint       string                 `json:"entryPoint"`
	IsSystem         bool                   `json:"isSystem,omitempty"`
	RequiredFeatures []string               `json:"requiredFeatures,omitempty"`
	Translations     map[string]Translation `json:"translations,omitempty"`
	LastUpdated      string                 `json:"lastUpdated,omitempty"`
}

// Validate checks the manifest fields against the closed enumerations.
// Icon resolution is checked separately by the catalog loader.
func (m *AppManifest) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("manifest %q: id must be a positive integer, got %d", m.Name, m.ID)
	}
	if m.Name == "" {
		return fmt.Errorf("manifest %d: name is required", m.ID)
	}
	if m.EntryPoint == "" {
		return fmt.Errorf("manifest %q: entryPoint is required", m.Name)
	}
	if !ValidCategory(m.Category) {
		return fmt.Errorf("manifest %q: unknown category %q", m.Name, m.Category)
	}
	for _, p := range m.Permissions {
		if !ValidPermission(p) {
			return fmt.Errorf("manifest %q: unknown permission %q", m.Name, p)
		}
	}
	return nil
}

// Localized returns the name and description for the requested locale,
// falling back to the manifest defaults when no override exists.
func (m *AppManifest) Localized(locale string) (name, description string) {
	if t, ok := m.Translations[locale]; ok {
		name, description = t.Name, t.Description
		if name == "" {
			name = m.Name
		}
		if description == "" {
			description = m.Description
		}
		return name, description
	}
	return m.Name, m.Description
}

// IconDef is a renderable icon handle resolved from a manifest's symbolic
// icon name
type IconDef struct {
	Name    string `json:"name"`
	Style   string `json:"style"`
	CSS     string `json:"css"`
	Unicode string `json:"unicode"`
}

// ResolvedApp is a manifest with its icon resolved to a renderable handle.
// Built by the catalog at load time; recomputed on each load.
type ResolvedApp struct {
	AppManifest
	IconDef IconDef `json:"iconDef"`
}

// AppDisplay is the simplified projection consumed by the dashboard grid
// and side panels
type AppDisplay struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Icon        IconDef  `json:"icon"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Display projects the resolved app into its grid form
func (a *ResolvedApp) Display() AppDisplay {
	return AppDisplay{
		ID:          a.ID,
		Name:        a.Name,
		Icon:        a.IconDef,
		Color:       a.Color,
		Description: a.Description,
		Category:    a.Category,
	}
}

// DisplayLocalized is Display with per-locale name/description overrides
// applied
func (a *ResolvedApp) DisplayLocalized(locale string) AppDisplay {
	d := a.Display()
	d.Name, d.Description = a.Localized(locale)
	return d
}
