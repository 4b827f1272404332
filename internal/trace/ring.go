package trace

import (
	"io"
	"sync"
)

// defaultRingSize is used when Config.RingSize is not positive.
const defaultRingSize = 4096

// RingTracer keeps the last N events in memory so that a failed run can dump
// what led to the failure.
type RingTracer struct {
	mu     sync.RWMutex
	events []Event
	total  uint64 // сколько событий записано за всё время
	level  Level
}

func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &RingTracer{events: make([]Event, capacity), level: level}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	t.events[t.total%uint64(len(t.events))] = *ev
	t.total++
	t.mu.Unlock()
}

// Snapshot returns a copy of the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	size := uint64(len(t.events))
	n := min(t.total, size)
	out := make([]Event, 0, n)
	for i := t.total - n; i < t.total; i++ {
		out = append(out, t.events[i%size])
	}
	return out
}

// Dump writes all stored events to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
