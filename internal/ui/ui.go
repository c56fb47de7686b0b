// Package ui renders the status lines commands print: one symbol-prefixed
// line per checked unit, coloured when the writer is a terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Symbols prefixed to status lines.
const (
	SymbolPass = "✅"
	SymbolFail = "❌"
	SymbolWarn = "⚠️ "
	SymbolInfo = "ℹ️ "
	SymbolDone = "✨"
	SymbolWork = "🔄"
)

// Printer writes styled status lines to a writer.
type Printer struct {
	w      io.Writer
	pass   lipgloss.Style
	fail   lipgloss.Style
	warn   lipgloss.Style
	info   lipgloss.Style
	detail lipgloss.Style
}

// NewPrinter returns a Printer for w. Colour is only used when w is a
// terminal, so output captured in files or tests stays plain.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		pass:   r.NewStyle().Foreground(lipgloss.Color("10")),
		fail:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warn:   r.NewStyle().Foreground(lipgloss.Color("11")),
		info:   r.NewStyle().Foreground(lipgloss.Color("12")),
		detail: r.NewStyle().Faint(true),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Pass prints a success line.
func (p *Printer) Pass(format string, args ...interface{}) {
	p.line(p.pass, SymbolPass, format, args...)
}

// Fail prints a failure line.
func (p *Printer) Fail(format string, args ...interface{}) {
	p.line(p.fail, SymbolFail, format, args...)
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...interface{}) {
	p.line(p.warn, SymbolWarn, format, args...)
}

// Info prints an informational line.
func (p *Printer) Info(format string, args ...interface{}) {
	p.line(p.info, SymbolInfo, format, args...)
}

// Done prints a completion line.
func (p *Printer) Done(format string, args ...interface{}) {
	p.line(p.pass, SymbolDone, format, args...)
}

// Working prints a line announcing a step in progress.
func (p *Printer) Working(format string, args ...interface{}) {
	p.line(p.info, SymbolWork, format, args...)
}

// Detail prints an indented, de-emphasised line under the previous one.
func (p *Printer) Detail(format string, args ...interface{}) {
	fmt.Fprintln(p.w, "   "+p.detail.Render(fmt.Sprintf(format, args...)))
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) line(style lipgloss.Style, symbol, format string, args ...interface{}) {
	fmt.Fprintln(p.w, symbol+" "+style.Render(fmt.Sprintf(format, args...)))
}
