package schedule

import (
	"sync"
	"time"
)

// Real runs each task on its own goroutine using time.Timer. Pause and
// Resume must not be called from the task's own callback.
type Real struct{}

type control int

const (
	controlPause control = iota
	controlResume
)

type realTask struct {
	interval time.Duration
	fn       func()
	ctl      chan control
	quit     chan struct{}
	once     sync.Once
}

func (Real) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		panic("schedule: non-positive interval")
	}
	t := &realTask{
		interval: interval,
		fn:       fn,
		ctl:      make(chan control),
		quit:     make(chan struct{}),
	}
	go t.loop()
	return t
}

func (t *realTask) loop() {
	next := time.Now().Add(t.interval)
	timer := time.NewTimer(t.interval)
	defer timer.Stop()
	fire := timer.C
	var remaining time.Duration
	for {
		select {
		case <-t.quit:
			return
		case <-fire:
			t.fn()
			next = next.Add(t.interval)
			wait := time.Until(next)
			if wait < 0 {
				// fell behind; skip missed firings rather than bursting
				next = time.Now().Add(t.interval)
				wait = t.interval
			}
			timer.Reset(wait)
		case c := <-t.ctl:
			switch c {
			case controlPause:
				if fire == nil {
					continue
				}
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				remaining = time.Until(next)
				if remaining < 0 {
					remaining = 0
				}
				fire = nil
			case controlResume:
				if fire != nil {
					continue
				}
				next = time.Now().Add(remaining)
				timer.Reset(remaining)
				fire = timer.C
			}
		}
	}
}

func (t *realTask) send(c control) {
	select {
	case t.ctl <- c:
	case <-t.quit:
	}
}

func (t *realTask) Pause()  { t.send(controlPause) }
func (t *realTask) Resume() { t.send(controlResume) }

func (t *realTask) Stop() {
	t.once.Do(func() { close(t.quit) })
}
