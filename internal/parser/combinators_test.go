package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpath/internal/source"
	"jpath/internal/token"
)

func tk(k token.Kind, text string, start uint32) token.Token {
	return token.Token{Kind: k, Text: text, Span: source.Span{Start: start, End: start + uint32(len(text))}}
}

func newInput(toks ...token.Token) Input {
	return Input{Tokens: toks, Backtrace: NewBacktrace()}
}

// a  b   c  : identifiers at offsets 0, 3 and 7.
func threeIdents() Input {
	return newInput(
		tk(token.Ident, "a", 0),
		tk(token.Ident, "b", 3),
		tk(token.Ident, "c", 7),
		tk(token.EOF, "", 10),
	)
}

func TestAltKeepsFarthestFailure(t *testing.T) {
	ident := matchToken(token.Ident)
	short := constant(1, pair(ident, matchText(",")))
	long := constant(2, pair(ident, pair(ident, matchText(":"))))

	for name, p := range map[string]parseFn[int]{
		"short first": alt(short, long),
		"long first":  alt(long, short),
	} {
		t.Run(name, func(t *testing.T) {
			in := threeIdents()
			rest, _, err := p(in)
			require.NotNil(t, err)
			assert.Equal(t, 0, rest.Pos)
			assert.Equal(t, uint32(7), err.Span.Start)
			assert.Equal(t, "expected `:`", PrimaryMessage(err))
		})
	}
}

func TestBacktraceSurvivesDiscardedBranch(t *testing.T) {
	ident := matchToken(token.Ident)
	short := constant(1, pair(ident, matchText(",")))
	long := constant(2, pair(ident, pair(ident, matchText(":"))))
	p := pair(opt(alt(short, long)), eof)

	in := threeIdents()
	_, _, err := p(in)
	require.NotNil(t, err)
	assert.Equal(t, uint32(0), err.Span.Start, "the surviving error is the shallow one")
	assert.Equal(t, uint32(7), in.Backtrace.Span().Start)
	assert.Equal(t, "expected `:`", PrimaryMessage(err))
	assert.Equal(t, "  |\n1 | a  b   c\n  |        ^ expected `:`\n", DisplayError(err, "a  b   c"))
}

// a  (   (  : `]` fails at 3 in one branch, <identifier> at 7 in the other.
func bracketOrCall() (Input, parseFn[int], parseFn[int]) {
	in := newInput(
		tk(token.Ident, "a", 0),
		tk(token.LParen, "(", 3),
		tk(token.LParen, "(", 7),
		tk(token.EOF, "", 8),
	)
	ident := matchToken(token.Ident)
	index := constant(1, pair(ident, matchText("]")))
	call := constant(2, pair(ident, pair(matchText("("), ident)))
	return in, index, call
}

func TestOptionalBranchFarthestFailure(t *testing.T) {
	for _, order := range []string{"index first", "call first"} {
		t.Run(order, func(t *testing.T) {
			in, index, call := bracketOrCall()
			branches := alt(index, call)
			if order == "call first" {
				branches = alt(call, index)
			}
			_, _, err := pair(opt(branches), eof)(in)
			require.NotNil(t, err)
			assert.Equal(t, uint32(0), err.Span.Start)
			assert.Equal(t, uint32(7), in.Backtrace.Span().Start)
			assert.Equal(t, []Reason{ExpectToken(token.Ident)}, in.Backtrace.Reasons())

			labels := ErrorLabels(err)
			require.NotEmpty(t, labels)
			assert.Equal(t, uint32(7), labels[0].Span.Start)
			assert.Equal(t, "expected <identifier>", labels[0].Msg)
		})
	}
}

func TestEOFCombinator(t *testing.T) {
	in := newInput(tk(token.Ident, "a", 0), tk(token.EOF, "", 1))
	_, _, err := eof(in)
	require.NotNil(t, err)
	assert.Equal(t, []Reason{ExpectToken(token.EOF)}, err.Reasons)
	assert.Equal(t, "expected <end of input>", PrimaryMessage(err))

	rest, _, err := eof(in.Advance())
	require.Nil(t, err)
	assert.True(t, rest.AtEOF())
}

func TestMany0StopsWithoutError(t *testing.T) {
	in := newInput(tk(token.Dot, ".", 0), tk(token.Dot, ".", 1), tk(token.Ident, "x", 2), tk(token.EOF, "", 3))
	rest, dots, err := many0(matchText("."))(in)
	require.Nil(t, err)
	assert.Len(t, dots, 2)
	assert.Equal(t, 2, rest.Pos)
	assert.Equal(t, []Reason{ExpectText(".")}, in.Backtrace.Reasons())
	assert.Equal(t, uint32(2), in.Backtrace.Span().Start)
}

func TestSeparated1LeavesTrailingSeparator(t *testing.T) {
	in := newInput(
		tk(token.IntLit, "1", 0),
		tk(token.Comma, ",", 1),
		tk(token.IntLit, "2", 2),
		tk(token.Comma, ",", 3),
		tk(token.EOF, "", 4),
	)
	rest, items, err := separated1(matchToken(token.IntLit), matchText(","))(in)
	require.Nil(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 3, rest.Pos)

	_, _, err = separated1(matchToken(token.StringLit), matchText(","))(in)
	assert.NotNil(t, err)
}

func TestNamedUsesFirstTokenSpan(t *testing.T) {
	in := newInput(tk(token.LParen, "(", 2), tk(token.Ident, "x", 3), tk(token.EOF, "", 4))
	p := named("group", delimited(matchText("("), matchToken(token.Ident), matchText(")")))
	rest, _, err := p(in)
	require.NotNil(t, err)
	assert.Equal(t, 0, rest.Pos)
	require.Len(t, err.Contexts, 1)
	assert.Equal(t, Context{Span: in.Span(), Label: "group"}, err.Contexts[0])
	assert.Equal(t, uint32(4), err.Span.Start)
}

func TestMapResReportsAtStart(t *testing.T) {
	in := newInput(tk(token.IntLit, "7", 0), tk(token.EOF, "", 1))
	p := mapRes(matchToken(token.IntLit), func(token.Token) (int, *Reason) {
		r := Other("nope")
		return 0, &r
	})
	rest, _, err := p(in)
	require.NotNil(t, err)
	assert.Equal(t, 0, rest.Pos)
	assert.Equal(t, uint32(0), err.Span.Start)
	assert.Equal(t, "nope", PrimaryMessage(err))
}

func TestMatchTextNeedsPunctuation(t *testing.T) {
	in := newInput(tk(token.StringLit, `"$"`, 0), tk(token.EOF, "", 3))
	_, _, err := matchText(`"$"`)(in)
	assert.NotNil(t, err)
}

func TestInputPastEnd(t *testing.T) {
	in := newInput(tk(token.EOF, "", 5))
	in = in.Advance().Advance()
	assert.True(t, in.AtEOF())
	assert.Equal(t, uint32(5), in.Span().Start)

	var empty Input
	assert.Equal(t, token.EOF, empty.Peek().Kind)
}

func TestInputSpanFrom(t *testing.T) {
	start := threeIdents()
	end := start.Advance().Advance()
	assert.Equal(t, source.Span{Start: 0, End: 4}, end.SpanFrom(start))
	assert.Equal(t, source.Span{Start: 0, End: 0}, start.SpanFrom(start))
}
