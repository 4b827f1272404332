package ast

import (
	"strconv"
	"strings"

	"jpath/internal/source"
)

type RootKind uint8

const (
	RootDollar RootKind = iota // $
	RootAt                     // @
)

type AccessorKind uint8

const (
	AccDotField        AccessorKind = iota // .name
	AccDotWildcard                         // .*
	AccDescField                           // ..name
	AccDescWildcard                        // ..*
	AccBracketWildcard                     // [*]
	AccBracketFields                       // ['a', 'b']
	AccBracketIndices                      // [0, last - 1, 2 to 4]
	AccSlice                               // [start:end:step]
	AccFilter                              // [?(expr)]
	AccPostfixFilter                       // ? (expr)
)

// Accessor is one step of a path. Which fields are set depends on Kind.
type Accessor struct {
	Kind    AccessorKind
	Span    source.Span
	Field   Identifier   // AccDotField, AccDescField
	Fields  []Identifier // AccBracketFields
	Indices []ArrayIndex // AccBracketIndices
	Slice   Slice        // AccSlice
	Filter  Expr         // AccFilter, AccPostfixFilter
}

func (a Accessor) String() string {
	var sb strings.Builder
	switch a.Kind {
	case AccDotField:
		sb.WriteByte('.')
		sb.WriteString(a.Field.String())
	case AccDotWildcard:
		sb.WriteString(".*")
	case AccDescField:
		sb.WriteString("..")
		sb.WriteString(a.Field.String())
	case AccDescWildcard:
		sb.WriteString("..*")
	case AccBracketWildcard:
		sb.WriteString("[*]")
	case AccBracketFields:
		sb.WriteByte('[')
		writeCommaList(&sb, a.Fields)
		sb.WriteByte(']')
	case AccBracketIndices:
		sb.WriteByte('[')
		writeCommaList(&sb, a.Indices)
		sb.WriteByte(']')
	case AccSlice:
		sb.WriteByte('[')
		sb.WriteString(a.Slice.String())
		sb.WriteByte(']')
	case AccFilter:
		sb.WriteString("[?(")
		sb.WriteString(exprString(a.Filter))
		sb.WriteString(")]")
	case AccPostfixFilter:
		sb.WriteString(" ? (")
		sb.WriteString(exprString(a.Filter))
		sb.WriteByte(')')
	}
	return sb.String()
}

// IndexBound is either an absolute index or an offset from the last element.
type IndexBound struct {
	Last  bool
	Value int64 // для Last: смещение n в `last - n`
}

func (b IndexBound) String() string {
	if !b.Last {
		return strconv.FormatInt(b.Value, 10)
	}
	if b.Value == 0 {
		return "last"
	}
	return "last - " + strconv.FormatInt(b.Value, 10)
}

// ArrayIndex is a single index or an inclusive range `start to end`.
type ArrayIndex struct {
	Start IndexBound
	End   *IndexBound
}

func (i ArrayIndex) String() string {
	if i.End == nil {
		return i.Start.String()
	}
	return i.Start.String() + " to " + i.End.String()
}

type Slice struct {
	Start *int64
	End   *int64
	Step  *int64
}

func (s Slice) String() string {
	var sb strings.Builder
	writeOptInt(&sb, s.Start)
	sb.WriteByte(':')
	writeOptInt(&sb, s.End)
	if s.Step != nil {
		sb.WriteByte(':')
		writeOptInt(&sb, s.Step)
	}
	return sb.String()
}

func writeOptInt(sb *strings.Builder, v *int64) {
	if v != nil {
		sb.WriteString(strconv.FormatInt(*v, 10))
	}
}

// Path is `$` or `@` followed by accessors. It is also an Expr.
type Path struct {
	Root      RootKind
	Accessors []Accessor
	Sp        source.Span
}

func (p *Path) Span() source.Span { return p.Sp }

func (p *Path) String() string {
	var sb strings.Builder
	if p.Root == RootAt {
		sb.WriteByte('@')
	} else {
		sb.WriteByte('$')
	}
	for _, a := range p.Accessors {
		sb.WriteString(a.String())
	}
	return sb.String()
}

func (*Path) exprNode() {}
