package trace

import (
	"errors"
	"io"
)

// MultiTracer fans out trace events to multiple tracers.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{tracers: tracers, level: level}
}

func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		tr.Emit(ev)
	}
}

func (t *MultiTracer) Flush() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Close() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }

// Dump writes the events held by ring tracers inside t. Tracers without a
// ring buffer have nothing to dump.
func Dump(t Tracer, w io.Writer, format Format) error {
	switch tr := t.(type) {
	case *RingTracer:
		return tr.Dump(w, format)
	case *MultiTracer:
		for _, inner := range tr.tracers {
			if err := Dump(inner, w, format); err != nil {
				return err
			}
		}
	}
	return nil
}
