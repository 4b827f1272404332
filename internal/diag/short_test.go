package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jpath/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	queries := fs.Add("/workspace/testdata/queries.jsonpath", []byte("$.a[\n$.b +\n"), 0)
	other := fs.Add("/workspace/a.jsonpath", []byte("$[\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "expected `]`",
			Primary:  source.Span{File: queries, Start: 9, End: 10},
			Notes: []Note{
				{Span: source.Span{File: queries, Start: 5, End: 6}, Msg: "while parsing json path"},
			},
		},
		{
			Severity: SevError,
			Code:     LexUnknownChar,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: queries, Start: 0, End: 1},
		},
		{
			Severity: SevWarning,
			Code:     SynInfo,
			Message:  "another",
			Primary:  source.Span{File: other, Start: 1, End: 2},
		},
	}

	expected := "warning SYN2000 a.jsonpath:1:2 another\n" +
		"error LEX1001 testdata/queries.jsonpath:1:1 first line second\n" +
		"note SYN2001 testdata/queries.jsonpath:2:1 while parsing json path\n" +
		"error SYN2001 testdata/queries.jsonpath:2:5 expected `]`"

	assert.Equal(t, expected, FormatShortDiagnostics(diags, fs, true))
	assert.Empty(t, FormatShortDiagnostics(nil, fs, true))
}
