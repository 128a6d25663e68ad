package calc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var caretColor = color.New(color.FgRed, color.Bold)

// Pretty writes the statement with a caret under the failing position:
//
//	x + 7 / 2
//	      ^ operator '/' is not supported
//
// Errors that are not *Error write nothing.
func Pretty(w io.Writer, src string, err error) {
	var cerr *Error
	if !errors.As(err, &cerr) {
		return
	}
	text := Normalize(src)
	if strings.ContainsAny(text, "\n\r") {
		text = strings.NewReplacer("\n", " ", "\r", " ").Replace(text)
	}
	pos := min(max(cerr.Pos, 0), len(text))
	pad := runewidth.StringWidth(strings.ReplaceAll(text[:pos], "\t", " "))
	fmt.Fprintf(w, "  %s\n  %s%s %s\n", text, strings.Repeat(" ", pad), caretColor.Sprint("^"), cerr.Msg)
}
