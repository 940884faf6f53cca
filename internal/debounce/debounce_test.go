package debounce

import (
	"sync"
	"testing"
	"time"
)

// recorder collects fired values behind a lock.
type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestBurstCollapsesToLastValue(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.record)

	d.Trigger("d")
	d.Trigger("du")
	d.Trigger("dun")
	d.Trigger("dune")

	time.Sleep(100 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 {
		t.Fatalf("Expected exactly one fire, got %d: %v", len(got), got)
	}
	if got[0] != "dune" {
		t.Errorf("Expected the last value %q, got %q", "dune", got[0])
	}
}

func TestSeparatedTriggersEachFire(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.record)

	d.Trigger("first")
	time.Sleep(60 * time.Millisecond)
	d.Trigger("second")
	time.Sleep(60 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Expected [first second], got %v", got)
	}
}

func TestStopCancelsPendingFire(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.record)

	d.Trigger("doomed")
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("Expected no fire after Stop, got %v", got)
	}
}

func TestTriggerAfterStopStartsFresh(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.record)

	d.Trigger("doomed")
	d.Stop()
	d.Trigger("kept")

	time.Sleep(80 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "kept" {
		t.Errorf("Expected [kept], got %v", got)
	}
}

func TestZeroDelayUsesDefault(t *testing.T) {
	d := New(0, func(string) {})
	if d.delay != DefaultDelay {
		t.Errorf("Expected default delay %v, got %v", DefaultDelay, d.delay)
	}
}
