// Package banner draws the application title.
package banner

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/terminal"
)

const (
	colorEnv   = "INSTANCE_PORT_REPORT_BANNER_COLOR"
	colorReset = "\x1b[0m"
)

type color struct {
	name string
	code string
}

var palette = []color{
	{"orange", "\x1b[38;2;255;153;0m"},
	{"red", "\x1b[38;2;229;9;20m"},
	{"green", "\x1b[38;2;30;215;96m"},
	{"blue", "\x1b[38;2;24;119;242m"},
	{"purple", "\x1b[38;2;145;70;255m"},
	{"white", "\x1b[38;2;255;255;255m"},
}

const (
	defaultColor        = 0 // orange
	blueBackgroundColor = 5 // white
)

var titleLines = []string{
	" ██████╗   ██████╗  ██████╗  ████████╗     ██████╗  ███████╗ ██████╗   ██████╗  ██████╗  ████████╗",
	" ██╔══██╗ ██╔═══██╗ ██╔══██╗ ╚══██╔══╝     ██╔══██╗ ██╔════╝ ██╔══██╗ ██╔═══██╗ ██╔══██╗ ╚══██╔══╝",
	" ██████╔╝ ██║   ██║ ██████╔╝    ██║        ██████╔╝ █████╗   ██████╔╝ ██║   ██║ ██████╔╝    ██║   ",
	" ██╔═══╝  ██║   ██║ ██╔══██╗    ██║        ██╔══██╗ ██╔══╝   ██╔═══╝  ██║   ██║ ██╔══██╗    ██║   ",
	" ██║      ╚██████╔╝ ██║  ██║    ██║        ██║  ██║ ███████╗ ██║      ╚██████╔╝ ██║  ██║    ██║   ",
	" ╚═╝       ╚═════╝  ╚═╝  ╚═╝    ╚═╝        ╚═╝  ╚═╝ ╚══════╝ ╚═╝       ╚═════╝  ╚═╝  ╚═╝    ╚═╝   ",
}

// subtitle is printed under the title.
const subtitle = "EC2 instance port exposure report"

// titleColor picks the colour from the environment, then the background.
func titleColor() color {
	if c, ok := colorFromEnv(os.Getenv(colorEnv)); ok {
		return c
	}
	if terminal.BlueBackground() {
		return palette[blueBackgroundColor]
	}
	return palette[defaultColor]
}

// colorFromEnv accepts a palette name or a raw escape sequence.
func colorFromEnv(raw string) (color, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return color{}, false
	}

	for _, c := range palette {
		if strings.EqualFold(raw, c.name) {
			return c, true
		}
	}
	if strings.HasPrefix(raw, "\x1b[") {
		return color{name: "custom", code: raw}, true
	}
	return color{}, false
}

func centered(lines []string, width int) string {
	var b strings.Builder
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); width > n {
			b.WriteString(strings.Repeat(" ", (width-n)/2))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// DrawBannerTitle prints the application title banner to stdout.
func DrawBannerTitle() {
	terminal.EnableANSI()
	width := terminal.Width()

	fmt.Print(titleColor().code + centered(titleLines, width) + colorReset)
	fmt.Print(centered([]string{subtitle}, width))
}
