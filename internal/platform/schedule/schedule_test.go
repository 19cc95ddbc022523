package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestVirtualFiresInDueOrder(t *testing.T) {
	t.Parallel()
	v := NewVirtual()
	var log []string
	v.Every(time.Second, func() { log = append(log, "tick") })
	v.Every(3*time.Second, func() { log = append(log, "ingest") })

	v.Advance(3 * time.Second)
	want := []string{"tick", "tick", "tick", "ingest"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
	if v.Now() != 3*time.Second {
		t.Fatalf("expected clock at 3s, got %s", v.Now())
	}
}

func TestVirtualPauseKeepsPhase(t *testing.T) {
	t.Parallel()
	v := NewVirtual()
	fired := 0
	task := v.Every(3*time.Second, func() { fired++ })

	v.Advance(2 * time.Second)
	task.Pause()
	v.Advance(10 * time.Second)
	if fired != 0 {
		t.Fatalf("paused task fired %d times", fired)
	}
	task.Resume()
	v.Advance(999 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("task fired before its remaining second elapsed")
	}
	v.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected one firing after resume, got %d", fired)
	}
	task.Pause()
	task.Pause()
	task.Resume()
	v.Advance(3 * time.Second)
	if fired != 2 {
		t.Fatalf("double pause should be idempotent, got %d firings", fired)
	}
}

func TestVirtualStopFromCallback(t *testing.T) {
	t.Parallel()
	v := NewVirtual()
	fired := 0
	var task Task
	task = v.Every(time.Second, func() {
		fired++
		if fired == 2 {
			task.Stop()
		}
	})
	v.Advance(10 * time.Second)
	if fired != 2 {
		t.Fatalf("expected stop after second firing, got %d", fired)
	}
	if v.Pending() != 0 {
		t.Fatalf("stopped task should be pruned")
	}
}

func TestRealFiresPausesAndStops(t *testing.T) {
	t.Parallel()
	var fired atomic.Int32
	task := Real{}.Every(5*time.Millisecond, func() { fired.Add(1) })
	deadline := time.Now().Add(2 * time.Second)
	for fired.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("real task did not fire")
		}
		time.Sleep(time.Millisecond)
	}
	task.Pause()
	paused := fired.Load()
	time.Sleep(30 * time.Millisecond)
	if got := fired.Load(); got != paused {
		t.Fatalf("paused task kept firing: %d -> %d", paused, got)
	}
	task.Resume()
	for fired.Load() == paused {
		if time.Now().After(deadline) {
			t.Fatalf("resumed task did not fire")
		}
		time.Sleep(time.Millisecond)
	}
	task.Stop()
	task.Stop()
	task.Pause()
}
