package observ

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	done := tm.Track("lex")
	done("12 tokens")
	idx := tm.Begin("parse")
	tm.End(idx, "")
	tm.End(42, "ignored")

	r := tm.Report()
	require.Len(t, r.Phases, 2)
	assert.Equal(t, "lex", r.Phases[0].Name)
	assert.Equal(t, "12 tokens", r.Phases[0].Note)
	assert.GreaterOrEqual(t, r.TotalMS, r.Phases[1].DurationMS)

	s := tm.Summary()
	assert.Contains(t, s, "timings:\n")
	assert.Contains(t, s, "// 12 tokens")
	assert.Contains(t, s, "total")
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Track("file")("")
		}()
	}
	wg.Wait()
	assert.Len(t, tm.Report().Phases, 8)
}

func TestTimerEmptyAndNil(t *testing.T) {
	assert.Equal(t, Report{}, NewTimer().Report())
	var tm *Timer
	tm.Track("x")("noop")
}
