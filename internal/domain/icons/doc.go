// Package icons resolves the symbolic icon names used by app manifests
// into renderable icon handles.
//
// The supported set is a closed enumeration: an unresolvable name is an
// error surfaced at catalog load time, never a silent placeholder. Adding
// an icon means adding it here, which keeps manifest typos from shipping.
package icons
