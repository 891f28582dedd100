package session

import (
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zeebo/bencode"

	"github.com/danmuck/btdctl/internal/observability"
	"github.com/danmuck/btdctl/internal/protocol"
	"github.com/danmuck/btdctl/internal/protocol/frame"
	"github.com/danmuck/btdctl/internal/torrent"
)

// State is the session lifecycle position.
type State int

const (
	StateUnconnected State = iota
	StateHandshaking
	StateReady
	StateClosed
)

// Session is one control connection to the daemon. It owns exactly one
// socket and keeps at most one request in flight: every operation
// blocks until the full response frame is read or the connection fails.
type Session struct {
	conn   net.Conn
	cfg    Config
	state  State
	server ServerInfo
}

// Dial connects to the daemon control socket and negotiates the
// protocol version.
func Dial(socketPath string, cfg Config) (*Session, error) {
	if socketPath == "" {
		return nil, fmt.Errorf("%w: socket path required", protocol.ErrInvalidArgument)
	}
	conn, err := net.DialTimeout("unix", socketPath, cfg.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", protocol.ErrConnection, socketPath, err)
	}
	return New(conn, cfg)
}

// New runs the version handshake over an established connection and
// returns a Ready session. The connection is closed on any handshake
// failure; ownership transfers to the session either way.
func New(conn net.Conn, cfg Config) (*Session, error) {
	s := &Session{conn: conn, cfg: cfg, state: StateHandshaking}
	if err := s.handshake(); err != nil {
		_ = conn.Close()
		s.conn = nil
		s.state = StateClosed
		return nil, err
	}
	s.state = StateReady
	return s, nil
}

func (s *Session) handshake() error {
	hello := helloEnvelope{Version: VersionRange{Min: ProtocolVersion, Max: ProtocolVersion}}
	raw, err := bencode.EncodeBytes(hello)
	if err != nil {
		return fmt.Errorf("%w: encode handshake: %v", protocol.ErrConnection, err)
	}
	if err := s.sendPayload(raw); err != nil {
		return err
	}
	replyRaw, err := s.recvPayload()
	if err != nil {
		return err
	}
	var reply helloReply
	if err := bencode.DecodeBytes(replyRaw, &reply); err != nil {
		return fmt.Errorf("%w: decode handshake: %v", protocol.ErrMalformedResponse, err)
	}
	if !reply.Version.Supports(ProtocolVersion) {
		return fmt.Errorf("%w: daemon %q declares %d-%d, client requires %d",
			protocol.ErrProtocolVersion, reply.Version.Label, reply.Version.Min, reply.Version.Max, ProtocolVersion)
	}
	s.server = reply.Version
	return nil
}

// Server returns the daemon's handshake declaration.
func (s *Session) Server() ServerInfo {
	return s.server
}

// State returns the current lifecycle position.
func (s *Session) State() State {
	return s.state
}

// SendCommand issues one command and returns the decoded response.
// This is the generic primitive typed operations and per-torrent
// collaborators are built on.
func (s *Session) SendCommand(name string, args ...interface{}) (protocol.Response, error) {
	return s.roundTrip(protocol.NewCommand(name, args...))
}

// AddRequest describes one torrent to hand to the daemon. Exactly one
// of Path and Raw must be set.
type AddRequest struct {
	// Path is a torrent file path readable by the daemon.
	Path string
	// Raw is the torrent file content itself.
	Raw []byte
	// Autostart overrides the daemon's default start behavior when
	// non-nil.
	Autostart *bool
	// Directory overrides the daemon's download directory when set.
	Directory string
}

// AddTorrent submits a torrent. It reports false without error when
// the daemon rejects the submission; rejection is a normal outcome,
// not a failure of the session.
func (s *Session) AddTorrent(req AddRequest) (bool, error) {
	if (req.Path == "") == (len(req.Raw) == 0) {
		return false, fmt.Errorf("%w: exactly one torrent source required", protocol.ErrInvalidArgument)
	}
	args := make(map[string]interface{})
	if req.Path != "" {
		args["source"] = req.Path
	} else {
		args["source"] = req.Raw
	}
	if req.Autostart != nil {
		args["autostart"] = boolArg(*req.Autostart)
	}
	if req.Directory != "" {
		args["directory"] = req.Directory
	}
	resp, err := s.SendCommand("addfile-detailed", args)
	if err != nil {
		return false, err
	}
	return resp.Succeeded(), nil
}

// Lookup finds one torrent by info hash. The comma-ok result is false
// when the daemon does not know the hash.
func (s *Session) Lookup(infoHash string) (*torrent.Torrent, bool, error) {
	if infoHash == "" {
		return nil, false, fmt.Errorf("%w: info hash required", protocol.ErrInvalidArgument)
	}
	resp, err := s.SendCommand("lookup", []interface{}{infoHash})
	if err != nil {
		return nil, false, err
	}
	if resp.Status() != protocol.StatusInfo {
		return nil, false, nil
	}
	records, ok := resp.Records()
	if !ok || len(records) == 0 {
		return nil, false, nil
	}
	tor := torrent.New(s, records[0])
	// The daemon reports unknown hashes as a record with id 0.
	if tor.ID() < 1 {
		return nil, false, nil
	}
	return tor, true, nil
}

// List returns every torrent the daemon tracks, in the daemon's own
// order. The comma-ok result is false when the daemon declines the
// query.
func (s *Session) List() ([]*torrent.Torrent, bool, error) {
	resp, err := s.SendCommand("get-info-all", []interface{}{"hash"})
	if err != nil {
		return nil, false, err
	}
	if resp.Status() != protocol.StatusInfo {
		return nil, false, nil
	}
	records, ok := resp.Records()
	if !ok {
		return nil, false, nil
	}
	out := make([]*torrent.Torrent, 0, len(records))
	for _, record := range records {
		out = append(out, torrent.New(s, record))
	}
	return out, true, nil
}

// StartAll resumes every torrent.
func (s *Session) StartAll() (bool, error) {
	return s.simpleCommand("start-all")
}

// StopAll pauses every torrent.
func (s *Session) StopAll() (bool, error) {
	return s.simpleCommand("stop-all")
}

func (s *Session) simpleCommand(name string) (bool, error) {
	resp, err := s.SendCommand(name, "")
	if err != nil {
		return false, err
	}
	return resp.Succeeded(), nil
}

// Get reads one simple daemon property. The comma-ok result is false
// when the daemon leaves the property unset or echoes an unexpected
// token.
func (s *Session) Get(name string) (interface{}, bool, error) {
	if !protocol.KnownProperty(name) {
		return nil, false, fmt.Errorf("%w: %q", protocol.ErrUnknownProperty, name)
	}
	resp, err := s.SendCommand("get-" + name)
	if err != nil {
		return nil, false, err
	}
	if resp.Status() != name {
		return nil, false, nil
	}
	value, ok := resp.Payload()
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

// Set writes one simple daemon property. It reports false without
// error when the daemon rejects the setting, e.g. an unsupported
// preference.
func (s *Session) Set(name string, value interface{}) (bool, error) {
	if !protocol.KnownProperty(name) {
		return false, fmt.Errorf("%w: %q", protocol.ErrUnknownProperty, name)
	}
	resp, err := s.SendCommand(name, value)
	if err != nil {
		return false, err
	}
	return resp.Succeeded(), nil
}

// Shutdown asks the daemon to quit, then closes the connection without
// waiting for a reply; the daemon may terminate before answering.
func (s *Session) Shutdown() error {
	if s.state != StateReady {
		return protocol.ErrSessionClosed
	}
	if raw, err := bencode.EncodeBytes([]interface{}(protocol.NewCommand("quit", ""))); err == nil {
		_ = s.sendPayload(raw)
	}
	return s.Close()
}

// Close releases the socket. It is safe to call on every exit path,
// including handshake failure and repeated teardown.
func (s *Session) Close() error {
	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	if err != nil {
		return fmt.Errorf("%w: close: %v", protocol.ErrConnection, err)
	}
	return nil
}

func (s *Session) roundTrip(cmd protocol.Command) (protocol.Response, error) {
	start := time.Now()
	resp, err := s.exchange(cmd)
	observability.RecordCommand(cmd.Name(), commandOutcome(resp, err), time.Since(start))
	return resp, err
}

func (s *Session) exchange(cmd protocol.Command) (protocol.Response, error) {
	if s.state != StateReady {
		return nil, protocol.ErrSessionClosed
	}
	raw, err := bencode.EncodeBytes([]interface{}(cmd))
	if err != nil {
		return nil, fmt.Errorf("%w: encode command %q: %v", protocol.ErrInvalidArgument, cmd.Name(), err)
	}
	if err := s.sendPayload(raw); err != nil {
		return nil, err
	}
	replyRaw, err := s.recvPayload()
	if err != nil {
		return nil, err
	}
	var decoded interface{}
	if err := bencode.DecodeBytes(replyRaw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", protocol.ErrMalformedResponse, err)
	}
	items, ok := decoded.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected list, got %T", protocol.ErrMalformedResponse, decoded)
	}
	return protocol.Response(items), nil
}

func (s *Session) sendPayload(raw []byte) error {
	if s.cfg.Debug {
		log.Debug().Str("dir", "send").Bytes("payload", raw).Msg("wire tap")
	}
	if s.cfg.WriteTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	}
	if err := frame.WriteFrame(s.conn, raw); err != nil {
		return fmt.Errorf("%w: %v", protocol.ErrConnection, err)
	}
	return nil
}

func (s *Session) recvPayload() ([]byte, error) {
	if s.cfg.ReadTimeout > 0 {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	}
	raw, err := frame.ReadFrame(s.conn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", protocol.ErrConnection, err)
	}
	if s.cfg.Debug {
		log.Debug().Str("dir", "recv").Bytes("payload", raw).Msg("wire tap")
	}
	return raw, nil
}

func commandOutcome(resp protocol.Response, err error) string {
	if err != nil {
		return "error"
	}
	if status := resp.Status(); status != "" {
		return status
	}
	return "unknown"
}

func boolArg(v bool) int64 {
	if v {
		return 1
	}
	return 0
}
