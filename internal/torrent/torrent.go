// Package torrent describes one daemon-side torrent.
//
// A Torrent is built from the decoded record map the daemon returned
// plus a back-reference to the session that produced it, so further
// per-torrent commands travel through the same control connection.
package torrent

import (
	"github.com/danmuck/btdctl/internal/protocol"
)

// CommandSender issues one synchronous daemon command. Satisfied by
// the protocol session.
type CommandSender interface {
	SendCommand(name string, args ...interface{}) (protocol.Response, error)
}

// Torrent is one torrent the daemon tracks.
type Torrent struct {
	sender CommandSender
	record map[string]interface{}
}

// New wraps a decoded daemon record.
func New(sender CommandSender, record map[string]interface{}) *Torrent {
	if record == nil {
		record = make(map[string]interface{})
	}
	return &Torrent{sender: sender, record: record}
}

// Attr returns a raw record field. The daemon decides which fields a
// record carries; only id and hash are guaranteed.
func (t *Torrent) Attr(name string) (interface{}, bool) {
	v, ok := t.record[name]
	return v, ok
}

// ID returns the daemon-assigned numeric id, or 0 when absent.
func (t *Torrent) ID() int64 {
	v, _ := t.record["id"].(int64)
	return v
}

// Hash returns the info hash, or "" when absent.
func (t *Torrent) Hash() string {
	v, _ := t.record["hash"].(string)
	return v
}

// Name returns the display name, or "" when absent.
func (t *Torrent) Name() string {
	v, _ := t.record["name"].(string)
	return v
}

// Start resumes this torrent.
func (t *Torrent) Start() (bool, error) {
	return t.command("start-torrent")
}

// Stop pauses this torrent.
func (t *Torrent) Stop() (bool, error) {
	return t.command("stop-torrent")
}

// Remove drops this torrent from the daemon.
func (t *Torrent) Remove() (bool, error) {
	return t.command("remove-torrent")
}

func (t *Torrent) command(name string) (bool, error) {
	resp, err := t.sender.SendCommand(name, []interface{}{t.ID()})
	if err != nil {
		return false, err
	}
	return resp.Succeeded(), nil
}
