package scanner

import (
	"fmt"
	"strings"
)

// Markers searched for in the controller source.
const (
	VerifyEmailMarker  = "public async Task<IActionResult> VerifyEmail(string token)"
	ResendMarker       = "public IActionResult ResendVerificationEmail()"
	HTTPGetMarker      = "[HttpGet]"
	TailorPolicyMarker = `[Authorize(Policy = "TailorPolicy")]`

	// TailorPolicyAfter is the last line index that cannot hold the duplicate
	// TailorPolicy attribute; the original declaration sits above it.
	TailorPolicyAfter = 1200

	// NotFound marks a position that was never set.
	NotFound = -1
)

// Logger is the subset of logging the scan reports progress through.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Positions holds the line indexes found by Scan. Indexes are zero-based;
// NotFound marks a slot that was never set.
//
// The Second* slots hold the most recent match after the first one, not
// literally the second match.
type Positions struct {
	FirstVerifyEmail      int `yaml:"first_verify_email"`
	SecondVerifyEmail     int `yaml:"second_verify_email"`
	FirstResend           int `yaml:"first_resend"`
	SecondResend          int `yaml:"second_resend"`
	DuplicateTailorPolicy int `yaml:"duplicate_tailor_policy"`
}

// NewPositions returns Positions with every slot unset.
func NewPositions() Positions {
	return Positions{
		FirstVerifyEmail:      NotFound,
		SecondVerifyEmail:     NotFound,
		FirstResend:           NotFound,
		SecondResend:          NotFound,
		DuplicateTailorPolicy: NotFound,
	}
}

// Scan walks the source lines and records marker positions.
// log may be nil.
func Scan(src *Source, log Logger) Positions {
	pos := NewPositions()

	for i, line := range src.Lines {
		if strings.Contains(line, VerifyEmailMarker) {
			record(&pos.FirstVerifyEmail, &pos.SecondVerifyEmail, i)
			debugf(log, "VerifyEmail declaration at line %d", i)
		}

		if strings.Contains(line, ResendMarker) {
			// Only counts when the attribute sits on the line directly above.
			// Line 0 has no line above; it does not wrap to the last line.
			if i > 0 && strings.Contains(src.Lines[i-1], HTTPGetMarker) {
				record(&pos.FirstResend, &pos.SecondResend, i)
				debugf(log, "ResendVerificationEmail GET action at line %d", i)
			} else if log != nil {
				log.LogWarn(fmt.Sprintf("ResendVerificationEmail at line %d skipped: no %s on the line above", i, HTTPGetMarker))
			}
		}
	}

	pos.DuplicateTailorPolicy = findTailorPolicy(src.Lines)
	if pos.DuplicateTailorPolicy != NotFound {
		debugf(log, "TailorPolicy attribute past line %d at line %d", TailorPolicyAfter, pos.DuplicateTailorPolicy)
	}

	return pos
}

// record sets first if unset, otherwise overwrites second.
func record(first, second *int, index int) {
	if *first == NotFound {
		*first = index
		return
	}
	*second = index
}

// findTailorPolicy returns the first TailorPolicy attribute strictly after
// TailorPolicyAfter, or NotFound.
func findTailorPolicy(lines []string) int {
	for i, line := range lines {
		if i > TailorPolicyAfter && strings.Contains(line, TailorPolicyMarker) {
			return i
		}
	}
	return NotFound
}

func debugf(log Logger, format string, args ...interface{}) {
	if log == nil {
		return
	}
	log.LogDebug(fmt.Sprintf(format, args...))
}
