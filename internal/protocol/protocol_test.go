package protocol

import "testing"

func TestNewCommandAppendsTrailingFlag(t *testing.T) {
	cmd := NewCommand("lookup", []interface{}{"deadbeef"})
	if got := len(cmd); got != 3 {
		t.Fatalf("unexpected command length: %d", got)
	}
	if cmd.Name() != "lookup" {
		t.Fatalf("unexpected name: %q", cmd.Name())
	}
	if cmd[2] != TrailingFlag {
		t.Fatalf("missing trailing flag: %v", cmd[2])
	}
}

func TestNewCommandNoArgs(t *testing.T) {
	cmd := NewCommand("get-pex")
	if got := len(cmd); got != 2 {
		t.Fatalf("unexpected command length: %d", got)
	}
	if cmd[0] != "get-pex" || cmd[1] != TrailingFlag {
		t.Fatalf("unexpected command shape: %v", cmd)
	}
}

func TestResponsePositionalInspection(t *testing.T) {
	resp := Response{"succeeded"}
	if !resp.Succeeded() {
		t.Fatalf("expected succeeded")
	}
	if _, ok := resp.Payload(); ok {
		t.Fatalf("unexpected payload")
	}

	resp = Response{"pex", int64(1)}
	if resp.Succeeded() {
		t.Fatalf("pex echo is not succeeded")
	}
	payload, ok := resp.Payload()
	if !ok {
		t.Fatalf("missing payload")
	}
	if payload != int64(1) {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestResponseStatusToleratesNonString(t *testing.T) {
	resp := Response{int64(0), "x"}
	if got := resp.Status(); got != "" {
		t.Fatalf("unexpected status: %q", got)
	}
	if (Response{}).Status() != "" {
		t.Fatalf("empty response should have empty status")
	}
}

func TestResponseRecords(t *testing.T) {
	resp := Response{"info", []interface{}{
		map[string]interface{}{"id": int64(1), "hash": "aa"},
		map[string]interface{}{"id": int64(2), "hash": "bb"},
	}}
	records, ok := resp.Records()
	if !ok {
		t.Fatalf("expected records")
	}
	if len(records) != 2 {
		t.Fatalf("unexpected record count: %d", len(records))
	}
	if records[1]["hash"] != "bb" {
		t.Fatalf("unexpected record order: %v", records)
	}

	if _, ok := (Response{"info", "not-a-list"}).Records(); ok {
		t.Fatalf("scalar payload should not yield records")
	}
	if _, ok := (Response{"info", []interface{}{"not-a-map"}}).Records(); ok {
		t.Fatalf("non-map element should not yield records")
	}
	if _, ok := (Response{"succeeded"}).Records(); ok {
		t.Fatalf("missing payload should not yield records")
	}
}

func TestKnownProperty(t *testing.T) {
	for _, name := range []string{"automap", "autostart", "directory", "downlimit", "encryption", "pex", "port", "uplimit"} {
		if !KnownProperty(name) {
			t.Fatalf("expected %q on allow-list", name)
		}
	}
	for _, name := range []string{"volume", "", "get-pex", "PORT"} {
		if KnownProperty(name) {
			t.Fatalf("expected %q rejected", name)
		}
	}
}

func TestPropertiesSorted(t *testing.T) {
	props := Properties()
	if len(props) != 8 {
		t.Fatalf("unexpected allow-list size: %d", len(props))
	}
	for i := 1; i < len(props); i++ {
		if props[i-1] >= props[i] {
			t.Fatalf("allow-list not sorted at %d: %v", i, props)
		}
	}
}
