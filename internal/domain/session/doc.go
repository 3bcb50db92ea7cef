// Package session implements authentication and session lifecycle for the
// portal.
//
// The credential check is a pluggable Verifier: the static verifier holds
// the seeded demo accounts (bcrypt-hashed), and the demo verifier wraps it
// with the permissive any-valid-email fallback. The fallback is an explicit,
// configurable policy, never an implicit default; production deployments
// disable it and swap in a real identity provider behind the same
// interface.
//
// A successful login mints a signed JWT and caches the session until it
// expires or the user logs out. The three-step password recovery flow
// (forgot -> verify OTP -> reset) lives in recovery.go.
//
// Auth failures carry an AuthError code so callers can distinguish
// validation problems from rejected credentials without parsing messages.
package session
