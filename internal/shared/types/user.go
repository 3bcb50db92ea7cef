package types

import "time"

// Role is the sole authorization signal carried by a principal
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an authenticated principal
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Avatar  string `json:"avatar,omitempty"`
	Company string `json:"company,omitempty"`
}

// Permissions are the coarse authorization booleans derived from a role.
// They are a pure function of the role and are never stored.
type Permissions struct {
	CanImportApps bool `json:"can_import_apps"`
	CanDeleteApps bool `json:"can_delete_apps"`
}

// PermissionsFor derives the authorization booleans from a role
func PermissionsFor(role Role) Permissions {
	admin := role == RoleAdmin
	return Permissions{
		CanImportApps: admin,
		CanDeleteApps: admin,
	}
}

// Notification is an ephemeral event record shown in the notification panel
type Notification struct {
	ID        string    `json:"id"`
	App       string    `json:"app"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
