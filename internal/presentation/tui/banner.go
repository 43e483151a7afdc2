package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Wayfinder banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{` __      __              __ _         _`, "#66ffb2"},
		{` \ \    / /_ _ _  _ ___ / _(_)_ _  __| |___ _ _`, "#5ee0c0"},
		{`  \ \/\/ / _' | || |___|  _| | ' \/ _' / -_) '_|`, "#58c2cf"},
		{`   \_/\_/\__,_|\_, |   |_| |_|_||_\__,_\___|_|`, "#6a7bd1"},
		{`               |__/`, "#884444"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, termenv.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}

// Swatch renders a colored block followed by the hex code, e.g. for region colors.
func Swatch(hex string) string {
	p := termenv.ColorProfile()
	return termenv.String("██").Foreground(p.Color(hex)).String() + " " + hex
}
