package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpath/internal/diag"
	"jpath/internal/lexer"
	"jpath/internal/source"
	"jpath/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.jsonpath", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter}), reporter
}

// kinds возвращает виды токенов без завершающего EOF
func kinds(t *testing.T, input string) ([]token.Kind, *testReporter) {
	t.Helper()
	lx, rep := makeTestLexer(input)
	toks := lx.All()
	require.NotEmpty(t, toks)
	require.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	out := make([]token.Kind, 0, len(toks)-1)
	for _, tok := range toks[:len(toks)-1] {
		out = append(out, tok.Kind)
	}
	return out, rep
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestIdentifiersAndKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"foo", token.Ident},
		{"_bar", token.Ident},
		{"x123", token.Ident},
		{"Last", token.Ident}, // регистрозависимо
		{"имя", token.Ident},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
		{"null", token.KwNull},
		{"last", token.KwLast},
		{"to", token.KwTo},
		{"exists", token.KwExists},
		{"strict", token.KwStrict},
		{"lax", token.KwLax},
		{"like_regex", token.KwLikeRegex},
		{"starts", token.KwStarts},
		{"with", token.KwWith},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			tok := lx.Next()
			assert.Equal(t, tt.kind, tok.Kind)
			assert.Equal(t, tt.input, tok.Text)
			assert.Empty(t, rep.diagnostics)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"0", token.IntLit, "0"},
		{"12345", token.IntLit, "12345"},
		{"1.5", token.FloatLit, "1.5"},
		{"1e10", token.FloatLit, "1e10"},
		{"2.5E-3", token.FloatLit, "2.5E-3"},
		{"1.", token.IntLit, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			tok := lx.Next()
			assert.Equal(t, tt.kind, tok.Kind)
			assert.Equal(t, tt.text, tok.Text)
			assert.Empty(t, rep.diagnostics)
		})
	}
}

func TestBadExponent(t *testing.T) {
	lx, rep := makeTestLexer("1e+")
	tok := lx.Next()
	assert.Equal(t, token.Invalid, tok.Kind)
	assert.Equal(t, []diag.Code{diag.LexBadNumber}, rep.codes())
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{`"abc"`, `"abc"`},
		{`'abc'`, `'abc'`},
		{`"a\"b"`, `"a\"b"`},
		{`'it\'s'`, `'it\'s'`},
		{`""`, `""`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			tok := lx.Next()
			assert.Equal(t, token.StringLit, tok.Kind)
			assert.Equal(t, tt.text, tok.Text)
			assert.Empty(t, rep.diagnostics)
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	for _, input := range []string{`"abc`, "'abc\n'", `"abc\`} {
		t.Run(input, func(t *testing.T) {
			lx, rep := makeTestLexer(input)
			tok := lx.Next()
			assert.Equal(t, token.Invalid, tok.Kind)
			assert.Equal(t, []diag.Code{diag.LexUnterminatedString}, rep.codes())
		})
	}
}

func TestOperatorsGreedy(t *testing.T) {
	got, rep := kinds(t, "$..a[?(@.b >= 1 && @.c != 2 || !@.d)]")
	want := []token.Kind{
		token.Dollar, token.DotDot, token.Ident, token.LBracket, token.Question,
		token.LParen, token.At, token.Dot, token.Ident, token.GtEq, token.IntLit,
		token.AndAnd, token.At, token.Dot, token.Ident, token.BangEq, token.IntLit,
		token.OrOr, token.Bang, token.At, token.Dot, token.Ident, token.RParen,
		token.RBracket,
	}
	assert.Equal(t, want, got)
	assert.Empty(t, rep.diagnostics)
}

func TestPunctuation(t *testing.T) {
	got, _ := kinds(t, "$ @ . .. * [ ] ( ) , : ? == < <= > + - / %")
	want := []token.Kind{
		token.Dollar, token.At, token.Dot, token.DotDot, token.Star,
		token.LBracket, token.RBracket, token.LParen, token.RParen,
		token.Comma, token.Colon, token.Question, token.EqEq, token.Lt,
		token.LtEq, token.Gt, token.Plus, token.Minus, token.Slash, token.Percent,
	}
	assert.Equal(t, want, got)
}

func TestUnknownCharacters(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"#", "#"},
		{"=", "="},
		{"&", "&"},
		{"€", "€"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			tok := lx.Next()
			assert.Equal(t, token.Invalid, tok.Kind)
			assert.Equal(t, tt.text, tok.Text)
			assert.Equal(t, []diag.Code{diag.LexUnknownChar}, rep.codes())
			assert.Equal(t, token.EOF, lx.Next().Kind)
		})
	}
}

func TestSpansAndEOF(t *testing.T) {
	lx, _ := makeTestLexer("  $.a  ")
	toks := lx.All()
	require.Len(t, toks, 4, tokensToString(toks))
	assert.Equal(t, uint32(2), toks[0].Span.Start)
	assert.Equal(t, uint32(3), toks[0].Span.End)
	assert.Equal(t, uint32(4), toks[2].Span.Start)
	assert.Equal(t, uint32(5), toks[2].Span.End)

	eof := toks[3]
	assert.Equal(t, token.EOF, eof.Kind)
	assert.True(t, eof.Span.Empty())
	assert.Equal(t, uint32(7), eof.Span.Start)

	// после EOF всегда EOF
	assert.Equal(t, token.EOF, lx.Next().Kind)
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("$.a")
	p := lx.Peek()
	n := lx.Next()
	assert.Equal(t, p, n)
	assert.Equal(t, token.Dot, lx.Next().Kind)
}

func TestNewRangeKeepsAbsoluteSpans(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("multi.jsonpath", []byte("$.a\n$.bb\n"))
	file := fs.Get(id)

	toks := lexer.NewRange(file, 4, 8, lexer.Options{}).All()
	require.Len(t, toks, 4, tokensToString(toks))
	assert.Equal(t, "bb", toks[2].Text)
	assert.Equal(t, uint32(6), toks[2].Span.Start)
	assert.Equal(t, uint32(8), toks[3].Span.Start)

	start, _ := fs.Resolve(toks[2].Span)
	assert.Equal(t, uint32(2), start.Line)
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{`"abc"`, "abc", false},
		{`'abc'`, "abc", false},
		{`"a\"b"`, `a"b`, false},
		{`'it\'s'`, "it's", false},
		{`"a\\b\/c"`, `a\b/c`, false},
		{`"\n\t\r\b\f"`, "\n\t\r\b\f", false},
		{`"\u00e9"`, "é", false},
		{`"\ud83d\ude00"`, "😀", false},
		{`"\x"`, "", true},
		{`"\u12"`, "", true},
		{`abc`, "", true},
		{`"abc'`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := lexer.Unquote(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBadEscapeKeepsStringToken(t *testing.T) {
	lx, rep := makeTestLexer(`"a\qb"`)
	tok := lx.Next()
	assert.Equal(t, token.StringLit, tok.Kind)
	assert.Equal(t, []diag.Code{diag.LexBadEscape}, rep.codes())
}
