package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`  _            _`, "#818cf8"},
	{` | |_ _____  _| |_ ___  _ __  ___`, "#a78bfa"},
	{` | __/ _ \ \/ / __/ _ \| '_ \/ __|`, "#c084fc"},
	{` | ||  __/>  <| || (_) | |_) \__ \`, "#e879f9"},
	{`  \__\___/_/\_\\__\___/| .__/|___/`, "#f472b6"},
	{`                       |_|`, "#fb7185"},
}

// PrintBanner writes the ASCII banner to w, colored when w is a capable terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
