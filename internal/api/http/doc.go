// Package http contains the gin handlers for the portal API: auth and
// recovery, catalog queries, workspace install/uninstall, the
// notification feed, and interface preferences. Responses use the
// success/error envelope throughout.
package http
