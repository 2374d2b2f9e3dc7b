package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// MissionStatement prints the mission banner followed by the mission text in blue
func MissionStatement(out io.Writer, text ...string) {
	fmt.Fprintln(out, color.New(color.FgBlue, color.Bold, color.Underline).Sprint("Your mission:"))
	if body := strings.TrimSpace(strings.Join(text, " ")); body != "" {
		color.New(color.FgBlue).Fprintln(out, body)
	}
}
