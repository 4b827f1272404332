package parser

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpath/internal/source"
	"jpath/internal/token"
)

func at(start uint32) source.Span {
	return source.Span{Start: start, End: start + 1}
}

// errAt records reasons into bt and returns a branch error at start.
func errAt(bt *Backtrace, start uint32, reasons ...Reason) *Error {
	for _, r := range reasons {
		bt.Record(at(start), r)
	}
	return &Error{Span: at(start), Reasons: reasons, Backtrace: bt}
}

func TestBacktraceRecord(t *testing.T) {
	bt := NewBacktrace()
	assert.True(t, bt.Empty())
	assert.Nil(t, bt.Reasons())

	bt.Record(at(5), ExpectText("a"))
	bt.Record(at(3), ExpectText("b"))
	assert.Equal(t, []Reason{ExpectText("a")}, bt.Reasons(), "earlier position is ignored")

	bt.Record(at(5), ExpectText("c"))
	assert.Equal(t, []Reason{ExpectText("a"), ExpectText("c")}, bt.Reasons(), "same position accumulates")

	bt.Record(at(9), ExpectToken(token.Ident))
	assert.Equal(t, uint32(9), bt.Span().Start)
	assert.Equal(t, []Reason{ExpectToken(token.Ident)}, bt.Reasons(), "later position replaces")

	bt.Clear()
	assert.True(t, bt.Empty())
	bt.Record(at(1), ExpectText("x"))
	assert.Equal(t, uint32(1), bt.Span().Start, "cleared tracker accepts any position")
}

func TestBacktraceReasonsIsCopy(t *testing.T) {
	bt := NewBacktrace()
	bt.Record(at(0), ExpectText("a"))
	rs := bt.Reasons()
	rs[0] = ExpectText("z")
	assert.Equal(t, ExpectText("a"), bt.Reasons()[0])

	var nilBT *Backtrace
	assert.True(t, nilBT.Empty())
	assert.Zero(t, nilBT.Span())
}

func TestMerge(t *testing.T) {
	bt := NewBacktrace()
	near := errAt(bt, 3, ExpectText(","))
	far := errAt(bt, 7, ExpectText(":"))

	assert.Same(t, far, Merge(near, far))
	assert.Same(t, far, Merge(far, near))
	assert.Same(t, far, near.Or(far))
	assert.Same(t, near, Merge(nil, near))
	assert.Same(t, near, Merge(near, nil))

	a := errAt(bt, 7, ExpectText("a")).WithContext(at(0), "outer")
	b := errAt(bt, 7, ExpectText("b"))
	m := Merge(a, b)
	assert.Equal(t, []Reason{ExpectText("a"), ExpectText("b")}, m.Reasons)
	assert.Empty(t, m.Contexts)
	assert.Equal(t, []Reason{ExpectText("b"), ExpectText("a")}, Merge(b, a).Reasons)
}

func TestWithContextOrder(t *testing.T) {
	bt := NewBacktrace()
	base := errAt(bt, 4, ExpectText(")"))
	e := base.WithContext(at(2), "inner").WithContext(at(0), "outer")

	require.Len(t, e.Contexts, 2)
	assert.Equal(t, "outer", e.Contexts[0].Label)
	assert.Equal(t, "inner", e.Contexts[1].Label)
	assert.Empty(t, base.Contexts, "original error is unchanged")
	assert.Nil(t, (*Error)(nil).WithContext(at(0), "x"))
}

func TestNewErrorRecords(t *testing.T) {
	bt := NewBacktrace()
	in := Input{Tokens: []token.Token{{Kind: token.EOF, Span: at(6)}}, Backtrace: bt}
	err := NewError(in, ExpectText("]"))
	assert.Equal(t, uint32(6), err.Span.Start)
	assert.Equal(t, []Reason{ExpectText("]")}, bt.Reasons())
	assert.Same(t, bt, err.Backtrace)
}

func TestPrimaryLabel(t *testing.T) {
	letters := func(n int) []Reason {
		out := make([]Reason, n)
		for i := range out {
			out[i] = ExpectText(string(rune('a' + i)))
		}
		return out
	}
	tests := []struct {
		name    string
		branch  []Reason
		tracked []Reason
		want    string
	}{
		{"single", nil, []Reason{ExpectText(")")}, "expected `)`"},
		{"two", nil, letters(2), "expected `a` or `b`"},
		{"three", nil, letters(3), "expected `a`, `b`, or `c`"},
		{"six", nil, letters(6), "expected `a`, `b`, `c`, `d`, `e`, or `f`"},
		{"capped", nil, letters(8), "expected `a`, `b`, `c`, `d`, `e`, `f`, or 2 more ..."},
		{
			"end of input hidden",
			nil,
			[]Reason{ExpectToken(token.EOF), ExpectText(")")},
			"expected `)`",
		},
		{"only end of input", nil, []Reason{ExpectToken(token.EOF)}, "expected <end of input>"},
		{
			"keywords and classes",
			nil,
			[]Reason{ExpectToken(token.KwLast), ExpectToken(token.Ident), ExpectToken(token.IntLit)},
			"expected `last`, <identifier>, or <integer>",
		},
		{
			"free-form wins",
			nil,
			[]Reason{ExpectText("x"), Other("slice step cannot be zero"), Other("second")},
			"slice step cannot be zero",
		},
		{
			"branch first then dedup",
			[]Reason{ExpectText(")")},
			[]Reason{ExpectText(")"), ExpectText(".")},
			"expected `)` or `.`",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bt := NewBacktrace()
			for _, r := range tt.tracked {
				bt.Record(at(4), r)
			}
			err := &Error{Span: at(4), Reasons: tt.branch, Backtrace: bt}
			assert.Equal(t, tt.want, PrimaryMessage(err))
		})
	}
}

func TestPrimaryLabelIgnoresNearBranch(t *testing.T) {
	bt := NewBacktrace()
	errAt(bt, 7, ExpectText(":"))
	near := &Error{Span: at(3), Reasons: []Reason{ExpectText(",")}, Backtrace: bt}

	assert.Equal(t, "expected `:`", PrimaryMessage(near))
	labels := ErrorLabels(near)
	require.Len(t, labels, 1)
	assert.Equal(t, uint32(7), labels[0].Span.Start)
}

func TestErrorLabelsEmpty(t *testing.T) {
	assert.Nil(t, ErrorLabels(nil))
	assert.Nil(t, ErrorLabels(&Error{Backtrace: NewBacktrace()}))
	assert.Empty(t, DisplayError(&Error{}, "$"))
	assert.Equal(t, "<nil>", (*Error)(nil).Error())
}

func TestErrorLabelsContexts(t *testing.T) {
	bt := NewBacktrace()
	err := errAt(bt, 10, ExpectText(")")).
		WithContext(at(4), "json path").
		WithContext(at(0), "exists predicate")

	labels := ErrorLabels(err)
	require.Len(t, labels, 3)
	assert.Equal(t, "expected `)`", labels[0].Msg)
	assert.Equal(t, "while parsing exists predicate", labels[1].Msg)
	assert.Equal(t, "while parsing json path", labels[2].Msg)
	assert.Equal(t, "expected `)`", err.Error())
}

func TestNumberReasons(t *testing.T) {
	parse := func(lit string) error {
		_, err := strconv.ParseInt(lit, 10, 64)
		return err
	}
	tests := []struct {
		lit  string
		want string
	}{
		{"12a", "unable to parse number because it contains invalid characters"},
		{"99999999999999999999", "unable to parse number because it positively overflowed"},
		{"-99999999999999999999", "unable to parse number because it negatively overflowed"},
	}
	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			assert.Equal(t, Other(tt.want), ReasonFromIntError(tt.lit, parse(tt.lit)))
		})
	}
	assert.Equal(t, Other("unable to parse number"), ReasonFromIntError("1", errors.New("boom")))

	_, ferr := strconv.ParseFloat("1e", 64)
	assert.Equal(t, Other("unable to parse float number"), ReasonFromFloatError(ferr))
}
