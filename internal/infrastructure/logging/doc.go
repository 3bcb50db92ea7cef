// Package logging wraps zap with the portal's logger configuration:
// JSON output in production, colored console output in development,
// level driven by config.
package logging
