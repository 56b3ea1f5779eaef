package objstore

import (
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestNoOpMetrics(t *testing.T) {
	metrics := &NoOpMetrics{}

	// All calls should be safe (no panics, no output)
	metrics.Increment("test.counter")
	metrics.Gauge("test.gauge", 42.0)
	metrics.Histogram("test.histogram", 100.5)
	metrics.Timing("test.timing", 5*time.Millisecond)

	// With tags
	metrics.Increment("test.counter", "tag1", "tag2")
	metrics.Timing("test.timing", 5*time.Millisecond, "op:read")
}

func TestInMemoryMetrics(t *testing.T) {
	metrics := NewInMemoryMetrics()

	metrics.Increment("reads")
	metrics.Increment("reads")
	metrics.Increment("errors")

	if metrics.Counters["reads"] != 2 {
		t.Errorf("reads counter = %d, want 2", metrics.Counters["reads"])
	}
	if metrics.Counters["errors"] != 1 {
		t.Errorf("errors counter = %d, want 1", metrics.Counters["errors"])
	}

	metrics.Gauge("keys", 10)
	metrics.Gauge("keys", 20)
	if metrics.Gauges["keys"] != 20 {
		t.Errorf("keys gauge = %f, want 20", metrics.Gauges["keys"])
	}

	metrics.Histogram("listed", 3)
	metrics.Histogram("listed", 7)
	if len(metrics.Histograms["listed"]) != 2 {
		t.Errorf("listed histogram length = %d, want 2", len(metrics.Histograms["listed"]))
	}

	metrics.Timing("op", 5*time.Millisecond)
	if len(metrics.Timings["op"]) != 1 {
		t.Errorf("op timings length = %d, want 1", len(metrics.Timings["op"]))
	}
}

func TestStoreRecordsMetrics(t *testing.T) {
	metrics := NewInMemoryMetrics()
	store, err := Open("store", WithFs(afero.NewMemMapFs()), WithMetrics(metrics))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := store.WriteText("a.txt", "x"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if _, err := store.ReadText("a.txt"); err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if _, err := store.ReadText("missing.txt"); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Delete("a.txt"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.ListKeys(""); err != nil {
		t.Fatalf("ListKeys failed: %v", err)
	}

	checks := map[string]int{
		MetricWriteSuccess:  1,
		MetricReadSuccess:   1,
		MetricReadError:     1,
		MetricDeleteSuccess: 1,
		MetricListSuccess:   1,
	}
	for name, want := range checks {
		if got := metrics.Counters[name]; got != want {
			t.Errorf("%s = %d, want %d", name, got, want)
		}
	}

	if len(metrics.Timings[MetricReadDuration]) == 0 {
		t.Error("expected read durations to be recorded")
	}
}
