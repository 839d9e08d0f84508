package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"  _____ _                           _   _",
	" | ____| | ___ _ __ ___   ___ _ __ | |_(_)_   _ _ __ ___",
	" |  _| | |/ _ \\ '_ ` _ \\ / _ \\ '_ \\| __| | | | | '_ ` _ \\",
	" | |___| |  __/ | | | | |  __/ | | | |_| | |_| | | | | | |",
	" |_____|_|\\___|_| |_| |_|\\___|_| |_|\\__|_|\\__,_|_| |_| |_|",
}

// Emerald to teal.
var bannerColors = []string{"#34d399", "#10b981", "#14b8a6", "#0d9488", "#0f766e"}

// PrintBanner writes the Elementium ASCII art banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w)
}
