package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// printer writes optionally coloured CLI output.
type printer struct {
	out    io.Writer
	bold   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
	gray   *color.Color
}

func newPrinter(out io.Writer, noColor bool) *printer {
	p := &printer{
		out:    out,
		bold:   color.New(color.Bold),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
		gray:   color.New(color.FgHiBlack),
	}

	enabled := colorEnabled(out, noColor)

	for _, c := range []*color.Color{p.bold, p.green, p.yellow, p.red, p.gray} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// colorEnabled reports whether out is a terminal and colour is not turned
// off by flag or NO_COLOR.
func colorEnabled(out io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := out.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
