package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			span:     Span{File: 1, Start: 2, End: 4},
			other:    Span{File: 1, Start: 8, End: 9},
			expected: Span{File: 1, Start: 2, End: 9},
		},
		{
			name:     "other inside",
			span:     Span{File: 1, Start: 0, End: 10},
			other:    Span{File: 1, Start: 3, End: 5},
			expected: Span{File: 1, Start: 0, End: 10},
		},
		{
			name:     "other before",
			span:     Span{File: 1, Start: 5, End: 6},
			other:    Span{File: 1, Start: 1, End: 2},
			expected: Span{File: 1, Start: 1, End: 6},
		},
		{
			name:     "different files are not merged",
			span:     Span{File: 1, Start: 5, End: 6},
			other:    Span{File: 2, Start: 0, End: 20},
			expected: Span{File: 1, Start: 5, End: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.span.Cover(tt.other))
		})
	}
}

func TestSpan_Zeroide(t *testing.T) {
	sp := Span{File: 3, Start: 10, End: 20}

	start := sp.ZeroideToStart()
	assert.Equal(t, Span{File: 3, Start: 10, End: 10}, start)
	assert.True(t, start.Empty())

	end := sp.ZeroideToEnd()
	assert.Equal(t, Span{File: 3, Start: 20, End: 20}, end)
	assert.True(t, end.Empty())
}

func TestSpan_Basics(t *testing.T) {
	sp := Span{File: 2, Start: 4, End: 9}

	assert.Equal(t, uint32(5), sp.Len())
	assert.False(t, sp.Empty())
	assert.Equal(t, "2:4-9", sp.String())
	assert.True(t, sp.Contains(4))
	assert.True(t, sp.Contains(8))
	assert.False(t, sp.Contains(9))
}
