// Package logging builds the run logger and the operator console.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/gedex/inflector"
	"github.com/mattn/go-isatty"
)

// Level maps the quiet/verbose switches onto a slog level.
func Level(quiet, verbose bool) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case quiet:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at level and above.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Console prints the final status line of a run.
type Console struct {
	w    io.Writer
	ok   *color.Color
	warn *color.Color
	fail *color.Color
}

// NewConsole colours its output only when w is a terminal and noColor is off.
func NewConsole(w io.Writer, noColor bool) *Console {
	c := &Console{
		w:    w,
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed, color.Bold),
	}

	if noColor || !isTerminal(w) {
		c.ok.DisableColor()
		c.warn.DisableColor()
		c.fail.DisableColor()
	} else {
		c.ok.EnableColor()
		c.warn.EnableColor()
		c.fail.EnableColor()
	}
	return c
}

func (c *Console) Done(format string, a ...any) {
	_, _ = c.ok.Fprintf(c.w, format+"\n", a...)
}

func (c *Console) Warn(format string, a ...any) {
	_, _ = c.warn.Fprintf(c.w, "WARN: "+format+"\n", a...)
}

func (c *Console) Fail(format string, a ...any) {
	_, _ = c.fail.Fprintf(c.w, "ERROR: "+format+"\n", a...)
}

// Count renders n with noun, pluralised when n != 1.
func Count(n int, noun string) string {
	if n != 1 {
		noun = inflector.Pluralize(noun)
	}
	return fmt.Sprintf("%d %s", n, noun)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
