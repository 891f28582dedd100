// Package session owns the daemon control connection.
//
// Ownership boundary:
// - unix socket lifecycle and version handshake
// - synchronous command round-trips over the framed transport
// - typed daemon operations and the generic property get/set pair
//
// The protocol has no multiplexing or request IDs: one request is in
// flight at a time, and a Session must not be shared across goroutines
// without external synchronization.
package session
