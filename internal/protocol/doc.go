// Package protocol owns the daemon wire contract.
//
// Ownership boundary:
// - command/response value model and positional inspection
// - simple-property allow-list for generic get/set dispatch
// - error taxonomy shared by the transport and session layers
package protocol
