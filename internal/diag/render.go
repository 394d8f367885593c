package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// RenderOptions controls Fprint.
type RenderOptions struct {
	// Color enables ANSI colors.
	Color bool
	// Kinds appends the diagnostic kind to every line.
	Kinds bool
}

// DetectColor reports whether w is a terminal that should get colored
// output. It honors the NO_COLOR convention and TERM=dumb.
func DetectColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiFaint = "\x1b[2m"
)

// Fprint writes one line per diagnostic to w, in list order:
//
//	file:line:col: message
//
// A trailing summary line reports dropped diagnostics when truncated is
// true.
func Fprint(w io.Writer, list []*Diagnostic, truncated bool, opts RenderOptions) error {
	for _, d := range list {
		if err := fprintOne(w, d, opts); err != nil {
			return err
		}
	}
	if truncated {
		_, err := fmt.Fprintln(w, "too many errors")
		return err
	}
	return nil
}

func fprintOne(w io.Writer, d *Diagnostic, opts RenderOptions) error {
	where := ""
	if d.Span.IsValid() {
		where = d.Span.Start.String() + ": "
	}
	suffix := ""
	if opts.Kinds {
		suffix = " [" + d.Kind.String() + "]"
	}
	var err error
	if opts.Color {
		_, err = fmt.Fprintf(w, "%s%s%s%s%s%s%s%s\n",
			ansiBold, where, ansiReset,
			ansiRed, d.Msg, ansiReset,
			ansiFaint+suffix, ansiReset)
	} else {
		_, err = fmt.Fprintf(w, "%s%s%s\n", where, d.Msg, suffix)
	}
	return err
}

// Print writes the sink's diagnostics to w, coloring them when w is a
// terminal.
func (s *Sink) Print(w io.Writer) error {
	return Fprint(w, s.list, s.truncated, RenderOptions{Color: DetectColor(w)})
}
