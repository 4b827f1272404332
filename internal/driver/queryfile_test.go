package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitQueries(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []QueryLine
	}{
		{name: "empty", content: "", want: nil},
		{name: "single", content: "$.a", want: []QueryLine{{Line: 1, Start: 0, End: 3}}},
		{name: "trailing newline", content: "$.a\n", want: []QueryLine{{Line: 1, Start: 0, End: 3}}},
		{
			name:    "blank and comment lines",
			content: "$.a\n\n  # c\n  $.b  \n$.c",
			want: []QueryLine{
				{Line: 1, Start: 0, End: 3},
				{Line: 4, Start: 13, End: 16},
				{Line: 5, Start: 19, End: 22},
			},
		},
		{name: "only comments", content: "# a\n#b\n", want: nil},
		{name: "carriage return", content: "$.a\r\n", want: []QueryLine{{Line: 1, Start: 0, End: 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitQueries([]byte(tt.content)))
		})
	}
}
