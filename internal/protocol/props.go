package protocol

import "sort"

// simpleProperties is the fixed allow-list of daemon preferences served
// by the generic get/set command pair. Their wire shape is structurally
// identical, so one code path covers all of them; anything else must be
// rejected before a byte hits the socket.
var simpleProperties = map[string]struct{}{
	"automap":    {},
	"autostart":  {},
	"directory":  {},
	"downlimit":  {},
	"encryption": {},
	"pex":        {},
	"port":       {},
	"uplimit":    {},
}

// KnownProperty reports whether name is on the simple-property allow-list.
func KnownProperty(name string) bool {
	_, ok := simpleProperties[name]
	return ok
}

// Properties returns the allow-list in sorted order.
func Properties() []string {
	out := make([]string, 0, len(simpleProperties))
	for name := range simpleProperties {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
