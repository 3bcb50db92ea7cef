// Package monitoring provides Prometheus metrics for the portal: HTTP
// request vectors, login outcomes, workspace install/uninstall activity,
// notification volume, and chat connections. Metrics are registered once
// at startup and shared through the Metrics struct.
package monitoring
