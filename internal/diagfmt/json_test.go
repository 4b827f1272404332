package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpath/internal/diag"
	"jpath/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.jsonpath", []byte("$.a\n$.b["))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 8, End: 8}, "expected `]`").
		WithNote(source.Span{File: id, Start: 7, End: 8}, "while parsing bracket selector"))
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: 0, End: 1}, "unknown character"))

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true, Max: 1}))

	var out DiagnosticsOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, 1, out.Count)

	d := out.Diagnostics[0]
	assert.Equal(t, "ERROR", d.Severity)
	assert.Equal(t, "SYN2001", d.Code)
	assert.Equal(t, "expected `]`", d.Message)
	assert.Equal(t, "q.jsonpath", d.Location.File)
	assert.Equal(t, uint32(2), d.Location.StartLine)
	assert.Equal(t, uint32(5), d.Location.StartCol)
	require.Len(t, d.Notes, 1)
	assert.Equal(t, uint32(4), d.Notes[0].Location.StartCol)
}

func TestJSONWithoutNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.jsonpath", []byte("$["))
	bag := syntaxBag(id)

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	require.Len(t, out.Diagnostics, 1)
	assert.Empty(t, out.Diagnostics[0].Notes)
	assert.Zero(t, out.Diagnostics[0].Location.StartLine)
}

func TestShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.jsonpath", []byte("$.a["))

	var buf bytes.Buffer
	require.NoError(t, Short(&buf, syntaxBag(id), fs))
	assert.Equal(t,
		"note SYN2001 q.jsonpath:1:4 while parsing bracket selector\n"+
			"error SYN2001 q.jsonpath:1:5 expected `]`\n",
		buf.String())
}
