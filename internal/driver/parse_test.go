package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpath/internal/diag"
	"jpath/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestTokenizeExpr(t *testing.T) {
	res := TokenizeExpr("$.a", 0)
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, token.EOF, res.Tokens[3].Kind)
	assert.Equal(t, 0, res.Bag.Len())
	assert.Equal(t, ExprFileName, res.File.Path)
}

func TestTokenizeReportsLexErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "q.jsonpath", "# comment\n$.a\n")
	res, err := Tokenize(path, 0)
	require.NoError(t, err)
	require.Equal(t, 1, res.Bag.Len())
	assert.Equal(t, diag.LexUnknownChar, res.Bag.Items()[0].Code)
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(filepath.Join(t.TempDir(), "nope.jsonpath"), 0)
	require.Error(t, err)
}

func TestParseFileLines(t *testing.T) {
	path := writeFile(t, t.TempDir(), "q.jsonpath", "$.a\n# skipped\n$.b[\nlax $.c\n")
	res, err := Parse(context.Background(), path, 0)
	require.NoError(t, err)
	require.Len(t, res.Queries, 3)

	assert.NotNil(t, res.Queries[0].Query)
	assert.Nil(t, res.Queries[1].Query)
	assert.Equal(t, 3, res.Queries[1].Line.Line)
	assert.NotNil(t, res.Queries[2].Query)

	require.Equal(t, 1, res.Bag.Len())
	d := res.Bag.Items()[0]
	assert.Equal(t, diag.SynUnexpectedToken, d.Code)
	assert.Equal(t, uint32(18), d.Primary.Start)
}

func TestParseExpr(t *testing.T) {
	res := ParseExpr(context.Background(), "$.a[0 to last]", 0)
	require.Len(t, res.Queries, 1)
	require.NotNil(t, res.Queries[0].Query)
	assert.Equal(t, 0, res.Bag.Len())
}

func TestParseExprLimit(t *testing.T) {
	res := ParseExpr(context.Background(), "$ # ~", 1)
	assert.Equal(t, 1, res.Bag.Len())
}

func TestParseOrdersDiagnosticsByPosition(t *testing.T) {
	res := ParseExpr(context.Background(), "$.a + # ~", 0)
	items := res.Bag.Items()
	require.NotEmpty(t, items)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Primary.Start, items[i].Primary.Start)
	}
}
