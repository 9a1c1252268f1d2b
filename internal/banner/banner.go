package banner

import (
	"strings"

	"github.com/fatih/color"
)

const version = "1.0"

// Separator returns a horizontal rule of the given width, capped for wide terminals
func Separator(width int) string {
	if width <= 0 || width > 60 {
		width = 60
	}
	return strings.Repeat("━", width)
}

// GetBanner returns the startup banner with rules sized to width
func GetBanner(width int) string {
	cyan := color.New(color.FgCyan).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	banner := `
` + cyan(`
 ▄████  █     ▄▄▄  ▄▄▄▄  ▄▄▄▄▄ █     ▄▄▄   ▄▄▄  ▄▄▄▄
 █▄▄    █    █▄▄▄█ █▄▄▀  █▄▄   █    █   █ █▄▄▄█ █   █
 █      █▄▄▄ █   █ █  ▀▄ █▄▄▄▄ █▄▄▄  ▀▄▄▄▀ █   █ █▄▄▄▀
`) + `
          ` + red(`FlareLoad - Adaptive XSS Filter Bypass v`+version) + `
                   ` + yellow(`by @Serdar715`) + `

` + cyan(Separator(width)) + `
  ` + yellow(`Phases:`) + `
    • Context probe
    • Event handler resolution
    • Object / property accessor resolution
    • Payload assembly and delivery
` + cyan(Separator(width)) + `
`
	return banner
}
