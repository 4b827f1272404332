package diagfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// SummaryStats is the tally printed after `jpath check`.
type SummaryStats struct {
	Files   int
	Queries int
	Failed  int
	Errors  int
	Cached  int
}

type summaryStyles struct {
	title   lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newSummaryStyles(color bool) summaryStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return summaryStyles{title: plain, value: plain, success: plain, failure: plain}
	}
	return summaryStyles{
		title:   lipgloss.NewStyle().Bold(true),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Summary prints one line like
// "checked 2 files, 5 queries: 1 failed, 2 errors".
func Summary(w io.Writer, s SummaryStats, color bool) error {
	st := newSummaryStyles(color)
	status := st.success.Render("ok")
	if s.Failed > 0 || s.Errors > 0 {
		status = st.failure.Render(fmt.Sprintf("%d failed, %d errors", s.Failed, s.Errors))
	}
	line := fmt.Sprintf("%s %s files, %s queries: %s",
		st.title.Render("checked"),
		st.value.Render(fmt.Sprint(s.Files)),
		st.value.Render(fmt.Sprint(s.Queries)),
		status,
	)
	if s.Cached > 0 {
		line += fmt.Sprintf(" (%d from cache)", s.Cached)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
