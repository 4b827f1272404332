package diagfmt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"jpath/internal/source"
)

// Label is one annotation over source text. The first label passed to
// RenderLabels is the primary one.
type Label struct {
	Span source.Span
	Msg  string
}

const tabWidth = 4

// RenderLabels draws labels under the source lines they point at:
//
//	  |
//	1 | exists($.a
//	  |           ^ expected `)`
//	  | - while parsing exists predicate
//
// Each labelled line is printed once; its labels follow in the given order,
// `^` marks the primary label and `-` the others. Span offsets index src.
func RenderLabels(src string, labels []Label) string {
	return renderLabels(src, labels, 0, plainStyle)
}

type labelStyle struct {
	gutter    func(string) string
	primary   func(string) string
	secondary func(string) string
}

func identity(s string) string { return s }

var plainStyle = labelStyle{gutter: identity, primary: identity, secondary: identity}

type placedLabel struct {
	idx      int
	line     int // 0-based
	startCol int // байтовое смещение внутри строки
	endCol   int
}

func renderLabels(src string, labels []Label, context int, st labelStyle) string {
	if len(labels) == 0 {
		return ""
	}
	lines := strings.Split(src, "\n")
	placed := make([]placedLabel, 0, len(labels))
	for i, l := range labels {
		placed = append(placed, placeLabel(lines, src, i, l.Span))
	}
	sort.SliceStable(placed, func(i, j int) bool { return placed[i].line < placed[j].line })

	maxLine := placed[len(placed)-1].line + 1
	gutterW := len(strconv.Itoa(maxLine))
	blank := strings.Repeat(" ", gutterW)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", blank, st.gutter("|"))
	printed := -1
	for i := 0; i < len(placed); {
		ln := placed[i].line
		from := max(ln-context, printed+1)
		for k := from; k <= ln; k++ {
			num := fmt.Sprintf("%*d", gutterW, k+1)
			fmt.Fprintf(&sb, "%s %s %s\n", st.gutter(num), st.gutter("|"), expandTabs(lines[k]))
		}
		printed = ln
		for ; i < len(placed) && placed[i].line == ln; i++ {
			p := placed[i]
			text := lines[ln]
			pad := displayWidth(text[:p.startCol])
			width := max(displayWidth(text[p.startCol:p.endCol]), 1)
			mark, paint := "-", st.secondary
			if p.idx == 0 {
				mark, paint = "^", st.primary
			}
			marker := strings.Repeat(mark, width)
			if msg := labels[p.idx].Msg; msg != "" {
				marker += " " + msg
			}
			fmt.Fprintf(&sb, "%s %s %s%s\n", blank, st.gutter("|"), strings.Repeat(" ", pad), paint(marker))
		}
	}
	return sb.String()
}

// placeLabel maps a span onto a line; spans crossing a line end are cut there.
func placeLabel(lines []string, src string, idx int, sp source.Span) placedLabel {
	start := min(int(sp.Start), len(src))
	end := min(max(int(sp.End), start), len(src))

	line, lineStart := 0, 0
	for line < len(lines)-1 && lineStart+len(lines[line]) < start {
		lineStart += len(lines[line]) + 1
		line++
	}
	text := lines[line]
	startCol := min(start-lineStart, len(text))
	endCol := min(end-lineStart, len(text))
	return placedLabel{idx: idx, line: line, startCol: startCol, endCol: max(endCol, startCol)}
}

func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += tabWidth
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
