// Package types defines the shared data model for the launchpad portal.
//
// The central entity is the AppManifest: a static, immutable descriptor of
// an installable mini-application. Manifests are compiled into the binary
// and loaded once at startup; at runtime they are only read.
//
// Derived shapes:
//   - ResolvedApp: manifest plus its resolved icon handle
//   - AppDisplay: the simplified projection consumed by the dashboard grid
//   - Notification: ephemeral per-workspace event record
//   - User / Role / Permissions: the authenticated principal and the coarse
//     authorization booleans derived from its role
package types
