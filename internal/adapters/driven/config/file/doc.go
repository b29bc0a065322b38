// Package file provides the TOML-backed configuration store.
//
// The store lives at ~/.tutor/config.toml with 0600 permissions and
// persists every Set immediately. The bearer token under "auth.token" is
// the only client state that survives a restart; everything else the
// client shows is re-fetched from the service.
package file
