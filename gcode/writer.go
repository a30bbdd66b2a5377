package gcode

import (
	"fmt"
	"io"
	"strconv"
)

// writer emits G-code lines to the sink and remembers the first write error,
// so emission code can stay free of error plumbing. Coordinates and E values
// are formatted with 5 decimals, feedrates and temperatures as integers; Go's
// strconv formatting is locale-independent, so the decimal point is always a
// point.
type writer struct {
	w   io.Writer
	err error
}

func newWriter(w io.Writer) *writer {
	return &writer{w: w}
}

// line writes one command line followed by LF.
func (w *writer) line(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format+"\n", args...)
}

// comment writes a ; comment line.
func (w *writer) comment(format string, args ...any) {
	w.line("; "+format, args...)
}

// num formats a coordinate or extrusion value.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}

// feed formats a feedrate in mm/min.
func feed(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
