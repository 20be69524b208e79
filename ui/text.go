package ui

import (
	"os"

	"github.com/logrusorgru/aurora"
)

var color = aurora.NewAurora(SupportsANSICodes())

func Bold(text string) string {
	return color.Sprintf(color.Bold(text))
}

func RedText(text string) string {
	return color.Sprintf(color.Red(text))
}

func YellowText(text string) string {
	return color.Sprintf(color.Yellow(text))
}

func GreenText(text string) string {
	return color.Sprintf(color.Green(text))
}

func BlueText(text string) string {
	return color.Sprintf(color.Blue(text))
}

func MagentaText(text string) string {
	return color.Sprintf(color.Magenta(text))
}

// Warn prints a yellow warning line to stderr, keeping stdout clean for
// machine-readable output.
func Warn(text string) {
	os.Stderr.WriteString(YellowText(text) + "\n")
}

func AlertWarning(text string) string {
	return YellowText("⚠ " + text)
}
