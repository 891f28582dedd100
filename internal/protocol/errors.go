package protocol

import "errors"

var (
	ErrConnection        = errors.New("protocol: connection failed")
	ErrProtocolVersion   = errors.New("protocol: unsupported daemon protocol version")
	ErrInvalidArgument   = errors.New("protocol: invalid argument")
	ErrUnknownProperty   = errors.New("protocol: unknown property")
	ErrSessionClosed     = errors.New("protocol: session closed")
	ErrMalformedResponse = errors.New("protocol: malformed response")
)
