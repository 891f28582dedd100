package session

// ProtocolVersion is the single daemon protocol revision this client
// speaks. Negotiation requires the daemon's declared window to cover
// it exactly; the client does not adapt to other revisions.
const ProtocolVersion = 2

// VersionRange is the client's advertised protocol window.
type VersionRange struct {
	Min int64 `bencode:"min"`
	Max int64 `bencode:"max"`
}

// ServerInfo is the daemon's version declaration, negotiated once at
// handshake and immutable for the life of the session.
type ServerInfo struct {
	Min   int64  `bencode:"min"`
	Max   int64  `bencode:"max"`
	Label string `bencode:"label"`
}

// Supports reports whether the declared window covers version.
func (info ServerInfo) Supports(version int64) bool {
	return info.Min <= version && version <= info.Max
}

// helloEnvelope is the client-to-daemon handshake payload, the only
// wire message shaped as a map rather than a command list.
type helloEnvelope struct {
	Version VersionRange `bencode:"version"`
}

// helloReply is the daemon-to-client handshake payload.
type helloReply struct {
	Version ServerInfo `bencode:"version"`
}
