package frame

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// HeaderLen is the fixed length prefix: eight ASCII hex digits of
// payload byte count, upper case, zero padded.
const HeaderLen = 8

var (
	ErrShortHeader  = errors.New("frame: short length header")
	ErrBadHeader    = errors.New("frame: malformed length header")
	ErrShortPayload = errors.New("frame: short payload")
)

// WriteFrame writes the length prefix and payload as one logical write.
// The layer enforces no maximum frame size; callers trust the daemon.
func WriteFrame(w io.Writer, payload []byte) error {
	buf := make([]byte, 0, HeaderLen+len(payload))
	buf = append(buf, fmt.Sprintf("%08X", len(payload))...)
	buf = append(buf, payload...)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("frame: write: %w", err)
	}
	return nil
}

// ReadFrame reads one length prefix, then exactly that many payload
// bytes, looping until the full count is obtained or the connection
// closes. The payload is returned unparsed.
func ReadFrame(r io.Reader) ([]byte, error) {
	var header [HeaderLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortHeader
		}
		return nil, fmt.Errorf("frame: read header: %w", err)
	}

	n, err := strconv.ParseUint(string(header[:]), 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, header[:])
	}

	payload := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, ErrShortPayload
			}
			return nil, fmt.Errorf("frame: read payload: %w", err)
		}
	}
	return payload, nil
}
