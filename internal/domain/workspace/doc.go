// Package workspace manages the per-user installed app set and
// notification feed.
//
// A workspace is created on first touch, seeded with the registry's
// system apps (in registry order) and the demo notification feed, and
// persisted through the storage seam so it survives reloads. All
// mutations go through the Manager, which holds the single lock and
// enforces the permission gate:
//
//   - Install is idempotent: re-installing a present app is a no-op and
//     emits nothing.
//   - Uninstall is fail-closed: callers without the delete capability
//     never reach the mutation.
//
// Invariants: every installed id references a registered manifest, the
// installed set has no duplicates, and installed plus available always
// partition the registry.
package workspace
