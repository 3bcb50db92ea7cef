package workspace

import (
	"time"

	"github.com/facgure/launchpad/internal/shared/types"
)

// Workspace is one user's dashboard state: the ordered installed set and
// the notification feed. Serialized as a single document per user.
type Workspace struct {
	UserID        string               `json:"user_id"`
	Apps          []types.AppDisplay   `json:"apps"`
	Notifications []types.Notification `json:"notifications"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// has reports whether an app id is in the installed set
func (w *Workspace) has(id int) bool {
	for i := range w.Apps {
		if w.Apps[i].ID == id {
			return true
		}
	}
	return false
}

// installedIDs returns the installed set as an id lookup
func (w *Workspace) installedIDs() map[int]bool {
	ids := make(map[int]bool, len(w.Apps))
	for i := range w.Apps {
		ids[w.Apps[i].ID] = true
	}
	return ids
}
