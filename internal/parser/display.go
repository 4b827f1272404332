package parser

import (
	"fmt"
	"strings"

	"jpath/internal/diagfmt"
	"jpath/internal/token"
)

// maxDisplayedExpectations caps the "expected ..." list.
const maxDisplayedExpectations = 6

// ErrorLabels builds the diagnostic for a failed parse: the primary label at
// the farthest failure first, then one "while parsing" label per context,
// outer first. It returns nil when the backtrace recorded nothing.
func ErrorLabels(err *Error) []diagfmt.Label {
	if err == nil || err.Backtrace.Empty() {
		return nil
	}
	bt := err.Backtrace
	labels := make([]diagfmt.Label, 0, 1+len(err.Contexts))
	labels = append(labels, diagfmt.Label{Span: bt.Span(), Msg: primaryLabel(err)})
	for _, c := range err.Contexts {
		labels = append(labels, diagfmt.Label{Span: c.Span, Msg: "while parsing " + c.Label})
	}
	return labels
}

// PrimaryMessage returns only the primary label text, or "" when there is none.
func PrimaryMessage(err *Error) string {
	if err == nil || err.Backtrace.Empty() {
		return ""
	}
	return primaryLabel(err)
}

// DisplayError renders err over src, the text its spans point into.
func DisplayError(err *Error, src string) string {
	labels := ErrorLabels(err)
	if len(labels) == 0 {
		return ""
	}
	return diagfmt.RenderLabels(src, labels)
}

func primaryLabel(err *Error) string {
	bt := err.Backtrace
	tracked := bt.Reasons()
	for _, r := range tracked {
		if r.Kind == ReasonOther {
			return r.Text
		}
	}

	// Причины ветки берём, только если она упала там же, где самый дальний
	// отказ; иначе они описывают другую позицию.
	var all []Reason
	if err.Span.Start == bt.Span().Start {
		all = append(all, err.Reasons...)
	}
	all = append(all, tracked...)
	return formatExpected(expectations(all))
}

// expectations renders the expected tokens once each, in first-seen order.
// End of input is listed only when nothing else was expected.
func expectations(reasons []Reason) []string {
	var (
		out     []string
		seen    = make(map[string]struct{})
		sawEOF  bool
		display string
	)
	for _, r := range reasons {
		switch r.Kind {
		case ReasonExpectToken:
			if r.Token.IsEOF() {
				sawEOF = true
				continue
			}
			display = tokenDisplay(r.Token)
		case ReasonExpectText:
			display = "`" + r.Text + "`"
		default:
			continue
		}
		if _, ok := seen[display]; ok {
			continue
		}
		seen[display] = struct{}{}
		out = append(out, display)
	}
	if len(out) == 0 && sawEOF {
		out = append(out, tokenDisplay(token.EOF))
	}
	return out
}

func tokenDisplay(k token.Kind) string {
	if k.IsKeyword() {
		return "`" + k.String() + "`"
	}
	return "<" + k.String() + ">"
}

// formatExpected joins items as "expected A", "expected A or B",
// "expected A, B, or C", cutting the list after maxDisplayedExpectations.
func formatExpected(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		last := i == len(items)-1
		switch {
		case i == maxDisplayedExpectations:
			fmt.Fprintf(&sb, ", or %d more ...", len(items)-maxDisplayedExpectations)
			return sb.String()
		case i == 0:
			sb.WriteString("expected ")
		case last && i == 1:
			sb.WriteString(" or ")
		case last:
			sb.WriteString(", or ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(item)
	}
	return sb.String()
}
