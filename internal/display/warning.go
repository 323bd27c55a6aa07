package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/AhmedTyson/accountscan/internal/scanner"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Locations  []string // Related source locations (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when useColor is set
func (w Warning) Display(out io.Writer, useColor bool) {
	var b strings.Builder

	if useColor {
		b.WriteString("\x1b[33m")
	}
	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Locations) > 0 {
		b.WriteString("    ")
		if len(w.Locations) == 1 {
			b.WriteString("Location:\n")
		} else {
			b.WriteString("Locations:\n")
		}

		for i, loc := range w.Locations {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, loc))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if useColor {
		b.WriteString("\x1b[0m")
	}

	fmt.Fprint(out, b.String())
}

// WarnDuplicates builds a warning listing every duplicate the scan found.
// Line numbers are shown one-based, as an editor shows them.
// Returns false when nothing is duplicated.
func WarnDuplicates(pos scanner.Positions) (Warning, bool) {
	var locations []string

	if pos.SecondVerifyEmail != scanner.NotFound {
		locations = append(locations, fmt.Sprintf("VerifyEmail(string token) redeclared at line %d (first at line %d)",
			pos.SecondVerifyEmail+1, pos.FirstVerifyEmail+1))
	}
	if pos.SecondResend != scanner.NotFound {
		locations = append(locations, fmt.Sprintf("[HttpGet] ResendVerificationEmail() redeclared at line %d (first at line %d)",
			pos.SecondResend+1, pos.FirstResend+1))
	}
	if pos.DuplicateTailorPolicy != scanner.NotFound {
		locations = append(locations, fmt.Sprintf("TailorPolicy CompleteTailorProfile redeclared at line %d",
			pos.DuplicateTailorPolicy+1))
	}

	if len(locations) == 0 {
		return Warning{}, false
	}

	return Warning{
		Title:      fmt.Sprintf("Found %d duplicated declaration(s) in AccountController", len(locations)),
		Message:    "The controller will not compile until the later copies are removed",
		Locations:  locations,
		Suggestion: "Delete the second declaration of each action together with its attributes",
	}, true
}
