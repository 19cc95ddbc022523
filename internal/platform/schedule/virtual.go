package schedule

import (
	"sync"
	"time"
)

// Virtual fires tasks only when Advance moves its clock. Tasks due at the
// same instant fire in registration order.
type Virtual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*virtualTask
}

type virtualTask struct {
	v         *Virtual
	seq       int
	interval  time.Duration
	fn        func()
	next      time.Duration
	remaining time.Duration
	paused    bool
	stopped   bool
}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (v *Virtual) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		panic("schedule: non-positive interval")
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	t := &virtualTask{v: v, seq: v.seq, interval: interval, fn: fn, next: v.now + interval}
	v.tasks = append(v.tasks, t)
	return t
}

// Now reports how far the virtual clock has advanced.
func (v *Virtual) Now() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// Advance moves the clock forward by d, firing every due task in order.
// Callbacks run without the scheduler lock held and may pause, resume or
// stop tasks, including themselves.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now + d
	for {
		t := v.nextDue(target)
		if t == nil {
			break
		}
		v.now = t.next
		t.next += t.interval
		fn := t.fn
		v.mu.Unlock()
		fn()
		v.mu.Lock()
	}
	v.now = target
	v.prune()
	v.mu.Unlock()
}

// Pending reports the number of tasks that have not been stopped.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.prune()
	return len(v.tasks)
}

func (v *Virtual) nextDue(target time.Duration) *virtualTask {
	var best *virtualTask
	for _, t := range v.tasks {
		if t.stopped || t.paused || t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (v *Virtual) prune() {
	kept := v.tasks[:0]
	for _, t := range v.tasks {
		if !t.stopped {
			kept = append(kept, t)
		}
	}
	v.tasks = kept
}

func (t *virtualTask) Pause() {
	t.v.mu.Lock()
	defer t.v.mu.Unlock()
	if t.paused || t.stopped {
		return
	}
	t.paused = true
	t.remaining = t.next - t.v.now
}

func (t *virtualTask) Resume() {
	t.v.mu.Lock()
	defer t.v.mu.Unlock()
	if !t.paused || t.stopped {
		return
	}
	t.paused = false
	t.next = t.v.now + t.remaining
}

func (t *virtualTask) Stop() {
	t.v.mu.Lock()
	defer t.v.mu.Unlock()
	t.stopped = true
}
