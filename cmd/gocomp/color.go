package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func addColorFlag(fs *pflag.FlagSet) *string {
	return fs.String("color", "auto", "highlight JSON output: auto, always or never")
}

// useColor resolves a --color value against whether f is a terminal.
func useColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		return term.IsTerminal(int(f.Fd())), nil
	}
	return false, usageError{fmt.Sprintf("--color: %q is not auto, always or never", mode)}
}

// writeJSON writes data to w, highlighted when color is set. Highlighting
// failures fall back to the plain bytes.
func writeJSON(w io.Writer, data []byte, color bool) error {
	if color {
		var buf bytes.Buffer
		if err := quick.Highlight(&buf, string(data), "json", "terminal256", "monokai"); err == nil {
			_, err = w.Write(buf.Bytes())
			return err
		}
	}
	_, err := w.Write(data)
	return err
}
