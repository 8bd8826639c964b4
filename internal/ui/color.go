package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// DiagLine prints one diagnostic with its severity colored and the offending
// step dimmed underneath.
func DiagLine(w io.Writer, severity, code string, line int, message, step string) {
	style := warningStyle
	if severity == "error" {
		style = errorStyle
	}
	fmt.Fprintf(w, "%s %s line %d: %s\n", style.Render(severity), code, line, message)
	if step != "" {
		fmt.Fprintln(w, faintStyle.Render("  "+step))
	}
}

// SummaryLine prints the conversion tally.
func SummaryLine(w io.Writer, lines, diags int) {
	fmt.Fprintf(w, "converted %d lines, %d diagnostics\n", lines, diags)
}

// CheckOK prints the all-clear line for a lint pass.
func CheckOK(w io.Writer, steps int) {
	fmt.Fprintf(w, "%s  %d steps recognized\n", okStyle.Render("ok"), steps)
}

// HistoryRow prints one recorded conversion, aligned to the given widths.
func HistoryRow(w io.Writer, id int64, createdAt, sourcePath string, lineCount, diagCount, idWidth, pathWidth int) {
	tag := fmt.Sprintf("#%d", id)
	row := fmt.Sprintf("%-*s  %s  %-*s  %3d lines", idWidth, tag, createdAt, pathWidth, sourcePath, lineCount)
	if diagCount > 0 {
		row += "  " + warningStyle.Render(fmt.Sprintf("%d diagnostics", diagCount))
	}
	fmt.Fprintln(w, row)
}

// ShowHeader prints the heading for a stored conversion.
func ShowHeader(w io.Writer, id int64, sourcePath, createdAt string) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("#%d %s", id, sourcePath))+faintStyle.Render("  "+createdAt))
}

// MacroLine prints one stored macro line, dimming the wait lines so the
// actions stand out.
func MacroLine(w io.Writer, line string) {
	if strings.HasPrefix(line, "Wait for ") {
		fmt.Fprintln(w, faintStyle.Render(line))
		return
	}
	fmt.Fprintln(w, line)
}

// RuleRow prints one pattern-table row, aligned to the given widths.
func RuleRow(w io.Writer, name, kind, pattern string, nameWidth, kindWidth int) {
	fmt.Fprintf(w, "%-*s  %s  %s\n", nameWidth, name, faintStyle.Render(fmt.Sprintf("%-*s", kindWidth, kind)), pattern)
}
