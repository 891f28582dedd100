package protocol

// Status tokens the daemon uses in response position 0.
const (
	StatusSucceeded = "succeeded"
	StatusInfo      = "info"
)

// TrailingFlag terminates every command list on the wire.
const TrailingFlag = int64(1)

// Command is one ordered wire command: name, arguments, trailing flag.
// Commands are built per call and never persisted.
type Command []interface{}

// NewCommand builds a command list from a name and its arguments,
// appending the trailing flag.
func NewCommand(name string, args ...interface{}) Command {
	cmd := make(Command, 0, len(args)+2)
	cmd = append(cmd, name)
	cmd = append(cmd, args...)
	cmd = append(cmd, TrailingFlag)
	return cmd
}

// Name returns the command name in position 0.
func (c Command) Name() string {
	if len(c) == 0 {
		return ""
	}
	name, _ := c[0].(string)
	return name
}

// Response is a decoded daemon reply, always inspected positionally:
// position 0 is a status token, position 1 (if present) the payload.
type Response []interface{}

// Status returns the token in position 0, or "" when the reply is empty
// or the token is not a string.
func (r Response) Status() string {
	if len(r) == 0 {
		return ""
	}
	status, _ := r[0].(string)
	return status
}

// Succeeded reports whether the daemon accepted the command.
func (r Response) Succeeded() bool {
	return r.Status() == StatusSucceeded
}

// Payload returns the value in position 1 when present.
func (r Response) Payload() (interface{}, bool) {
	if len(r) < 2 {
		return nil, false
	}
	return r[1], true
}

// Records returns the payload as a list of record maps. It reports false
// when the payload is absent or any element is not a map.
func (r Response) Records() ([]map[string]interface{}, bool) {
	payload, ok := r.Payload()
	if !ok {
		return nil, false
	}
	items, ok := payload.([]interface{})
	if !ok {
		return nil, false
	}
	records := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]interface{})
		if !ok {
			return nil, false
		}
		records = append(records, record)
	}
	return records, true
}
