package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"jpath/internal/diag"
	"jpath/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<SEV> <CODE>: <Message>
//	  --> <path>:<line>:<col>
//
// затем строку исходника с ^ под Span и notes как подписи с '-'.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	st := newPrettyStyle(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w) //nolint:errcheck
		}
		prettyOne(w, d, fs, opts, st)
	}
}

type prettyStyle struct {
	labels labelStyle
	sev    map[diag.Severity]func(...any) string
	bold   func(...any) string
	note   func(...any) string
}

func newPrettyStyle(enabled bool) prettyStyle {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	blue := mk(color.FgBlue, color.Bold)
	red := mk(color.FgRed, color.Bold)
	cyan := mk(color.FgCyan)
	return prettyStyle{
		labels: labelStyle{
			gutter:    func(s string) string { return blue.Sprint(s) },
			primary:   func(s string) string { return red.Sprint(s) },
			secondary: func(s string) string { return cyan.Sprint(s) },
		},
		sev: map[diag.Severity]func(...any) string{
			diag.SevError:   red.SprintFunc(),
			diag.SevWarning: mk(color.FgYellow, color.Bold).SprintFunc(),
			diag.SevInfo:    mk(color.FgGreen).SprintFunc(),
		},
		bold: mk(color.Bold).SprintFunc(),
		note: cyan.SprintFunc(),
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, st prettyStyle) {
	sev := st.sev[d.Severity]
	if sev == nil {
		sev = fmt.Sprint
	}
	fmt.Fprintf(w, "%s %s: %s\n", sev(d.Severity.String()), d.Code.ID(), st.bold(d.Message)) //nolint:errcheck

	f := fs.Get(d.Primary.File)
	if f == nil {
		return
	}
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "  --> %s:%d:%d\n", formatPath(f, opts.PathMode, fs.BaseDir()), start.Line, start.Col) //nolint:errcheck

	labels := []Label{{Span: d.Primary}}
	var foreign []diag.Note
	if opts.ShowNotes {
		for _, n := range d.Notes {
			if n.Span.File != d.Primary.File {
				foreign = append(foreign, n)
				continue
			}
			labels = append(labels, Label{Span: n.Span, Msg: n.Msg})
		}
	}
	io.WriteString(w, renderLabels(string(f.Content), labels, int(opts.Context), st.labels)) //nolint:errcheck
	for _, n := range foreign {
		fmt.Fprintf(w, "   = %s: %s\n", st.note("note"), n.Msg) //nolint:errcheck
	}
}
