package parser

import (
	"jpath/internal/token"
)

// parseFn is one grammar rule. On failure the returned Input is the one it
// was given, so callers backtrack by ignoring it.
type parseFn[T any] func(Input) (Input, T, *Error)

// matchToken accepts a token of kind k.
func matchToken(k token.Kind) parseFn[token.Token] {
	return func(in Input) (Input, token.Token, *Error) {
		tok := in.Peek()
		if tok.Kind == k {
			return in.Advance(), tok, nil
		}
		return in, token.Token{}, NewError(in, ExpectToken(k))
	}
}

// matchText accepts a punctuation or operator token spelled text.
func matchText(text string) parseFn[token.Token] {
	return func(in Input) (Input, token.Token, *Error) {
		tok := in.Peek()
		if tok.Kind.IsPunctOrOp() && tok.Text == text {
			return in.Advance(), tok, nil
		}
		return in, token.Token{}, NewError(in, ExpectText(text))
	}
}

// alt tries each rule from the same input and returns the first success.
// When all fail, their errors are merged.
func alt[T any](ps ...parseFn[T]) parseFn[T] {
	return func(in Input) (Input, T, *Error) {
		var errAcc *Error
		for _, p := range ps {
			rest, v, err := p(in)
			if err == nil {
				return rest, v, nil
			}
			errAcc = errAcc.Or(err)
		}
		var zero T
		return in, zero, errAcc
	}
}

// opt returns nil without consuming input when p fails.
func opt[T any](p parseFn[T]) parseFn[*T] {
	return func(in Input) (Input, *T, *Error) {
		rest, v, err := p(in)
		if err != nil {
			return in, nil, nil
		}
		return rest, &v, nil
	}
}

// many0 applies p until it fails or stops consuming input.
func many0[T any](p parseFn[T]) parseFn[[]T] {
	return func(in Input) (Input, []T, *Error) {
		var out []T
		for {
			rest, v, err := p(in)
			if err != nil || rest.Pos == in.Pos {
				return in, out, nil
			}
			out = append(out, v)
			in = rest
		}
	}
}

// separated1 parses p (sep p)*. A separator without a following item is not consumed.
func separated1[T, S any](p parseFn[T], sep parseFn[S]) parseFn[[]T] {
	return func(in Input) (Input, []T, *Error) {
		rest, first, err := p(in)
		if err != nil {
			return in, nil, err
		}
		out := []T{first}
		for {
			afterSep, _, err := sep(rest)
			if err != nil {
				return rest, out, nil
			}
			next, v, err := p(afterSep)
			if err != nil {
				return rest, out, nil
			}
			out = append(out, v)
			rest = next
		}
	}
}

// named labels the production p for "while parsing ..." notes.
func named[T any](label string, p parseFn[T]) parseFn[T] {
	return func(in Input) (Input, T, *Error) {
		rest, v, err := p(in)
		if err != nil {
			return in, v, AddContext(in, label, err)
		}
		return rest, v, nil
	}
}

// mapRes converts the value of p; a conversion failure is reported at the
// input p started from.
func mapRes[T, U any](p parseFn[T], f func(T) (U, *Reason)) parseFn[U] {
	return func(in Input) (Input, U, *Error) {
		var zero U
		rest, v, err := p(in)
		if err != nil {
			return in, zero, err
		}
		u, reason := f(v)
		if reason != nil {
			return in, zero, NewError(in, *reason)
		}
		return rest, u, nil
	}
}

func mapFn[T, U any](p parseFn[T], f func(T) U) parseFn[U] {
	return func(in Input) (Input, U, *Error) {
		rest, v, err := p(in)
		if err != nil {
			var zero U
			return in, zero, err
		}
		return rest, f(v), nil
	}
}

// constant replaces the result of p with v.
func constant[T, U any](v U, p parseFn[T]) parseFn[U] {
	return mapFn(p, func(T) U { return v })
}

func preceded[A, B any](first parseFn[A], second parseFn[B]) parseFn[B] {
	return func(in Input) (Input, B, *Error) {
		var zero B
		rest, _, err := first(in)
		if err != nil {
			return in, zero, err
		}
		rest, v, err := second(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, v, nil
	}
}

func terminated[A, B any](first parseFn[A], second parseFn[B]) parseFn[A] {
	return func(in Input) (Input, A, *Error) {
		var zero A
		rest, v, err := first(in)
		if err != nil {
			return in, zero, err
		}
		rest, _, err = second(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, v, nil
	}
}

func delimited[A, B, C any](open parseFn[A], p parseFn[B], closing parseFn[C]) parseFn[B] {
	return preceded(open, terminated(p, closing))
}

type tuple[A, B any] struct {
	First  A
	Second B
}

// pair runs a then b.
func pair[A, B any](a parseFn[A], b parseFn[B]) parseFn[tuple[A, B]] {
	return func(in Input) (Input, tuple[A, B], *Error) {
		rest, va, err := a(in)
		if err != nil {
			return in, tuple[A, B]{}, err
		}
		rest, vb, err := b(rest)
		if err != nil {
			return in, tuple[A, B]{}, err
		}
		return rest, tuple[A, B]{First: va, Second: vb}, nil
	}
}

// eof succeeds only at the end of input.
func eof(in Input) (Input, struct{}, *Error) {
	if in.AtEOF() {
		return in.Advance(), struct{}{}, nil
	}
	return in, struct{}{}, NewError(in, ExpectToken(token.EOF))
}
