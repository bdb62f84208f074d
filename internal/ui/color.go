package ui

import (
	"os"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
)

var initColors sync.Once

var colorDisabled = sync.OnceValue(func() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
})

func ensureColors() {
	initColors.Do(func() {
		if colorDisabled() {
			text.DisableColors()
		}
	})
}

// SetNoColor overrides the color-disabled flag for testing.
func SetNoColor(disabled bool) {
	colorDisabled = func() bool { return disabled }
	if disabled {
		text.DisableColors()
	} else {
		text.EnableColors()
	}
}

func sprint(c text.Color, s string) string {
	ensureColors()
	if colorDisabled() {
		return s
	}
	return c.Sprint(s)
}

// Green formats text in green.
func Green(s string) string {
	return sprint(text.FgGreen, s)
}

// Yellow formats text in yellow.
func Yellow(s string) string {
	return sprint(text.FgYellow, s)
}

// Red formats text in red.
func Red(s string) string {
	return sprint(text.FgRed, s)
}

// Blue formats text in blue.
func Blue(s string) string {
	return sprint(text.FgBlue, s)
}

// Cyan formats text in cyan.
func Cyan(s string) string {
	return sprint(text.FgCyan, s)
}

// Bold formats text in bold.
func Bold(s string) string {
	ensureColors()
	if colorDisabled() {
		return s
	}
	return text.Bold.Sprint(s)
}

// Header formats a section header: === text ===
func Header(s string) string {
	ensureColors()
	out := "=== " + s + " ==="
	if colorDisabled() {
		return out
	}
	return text.Colors{text.FgHiMagenta, text.Bold}.Sprint(out)
}

// Step formats a progress step: → text
func Step(s string) string {
	return Blue("→ " + s)
}

// Success formats a success message: ✓ text
func Success(s string) string {
	return Green("✓ " + s)
}

// Failure formats an error message: ✗ text
func Failure(s string) string {
	return Red("✗ " + s)
}
