package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/payday-labs/sndeploy/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// HumanStatus turns ACCEPTED_ON_L2 into "Accepted On L2"
func HumanStatus(status domain.TransactionStatus) string {
	words := strings.ReplaceAll(strings.ToLower(string(status)), "_", " ")
	return cases.Title(language.English).String(words)
}

// StatusColor picks a color for a transaction status
func StatusColor(status domain.TransactionStatus) *color.Color {
	switch {
	case status.IsAccepted():
		return color.New(color.FgGreen)
	case status.IsRejected():
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

// writeJSON writes v as indented JSON
func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
