package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the plantctl banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	// Teal to amber, top to bottom.
	lines := []struct{ text, color string }{
		{"        _             _        _   _ ", "#2dd4bf"},
		{"  _ __ | | __ _ _ __ | |_ ___| |_| |", "#34d399"},
		{" | '_ \\| |/ _` | '_ \\| __/ __| __| |", "#a3e635"},
		{" | |_) | | (_| | | | | || (__| |_| |", "#facc15"},
		{" | .__/|_|\\__,_|_| |_|\\__\\___|\\__|_|", "#fbbf24"},
		{" |_|", "#f59e0b"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
