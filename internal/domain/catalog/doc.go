// Package catalog provides the app manifest registry for the launchpad.
//
// The registry is built once at startup from the manifests compiled into
// the binary, in a fixed order that doubles as the default display order.
// Loading validates every manifest against the closed category, permission,
// and icon enumerations and fails with a diagnostic on the first defect;
// a manifest that references an unknown icon never reaches the dashboard.
//
// Components:
//   - Registry: immutable, ordered set of resolved apps with query and
//     projection operations
//   - Seeder: loads operator-supplied manifest files on top of the
//     embedded set
//
// Example Usage:
//
//	reg, err := catalog.Load()
//	apps := reg.Apps()
//	available := reg.Available(installedIDs)
package catalog
