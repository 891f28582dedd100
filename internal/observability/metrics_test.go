package observability

import (
	"testing"
	"time"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordCommand("lookup", "info", 4*time.Millisecond)
	RecordCommand("addfile-detailed", "succeeded", 12*time.Millisecond)
	RecordCommand("start-all", "error", time.Millisecond)
	RecordCommand("", "error", time.Millisecond)
}
