// Package display formats the scan findings for the terminal.
//
// WriteReport prints the five marker positions on stdout, one per line:
//
//	First VerifyEmail at line: 50
//	Second VerifyEmail at line: 1150
//	First ResendVerificationEmail at line: -1
//	Second ResendVerificationEmail at line: -1
//	Duplicate CompleteTailorProfile at line: -1
//
// Positions are zero-based line indexes and -1 means the marker was not found.
// When color is off the report is plain text and identical from run to run.
//
// WarnDuplicates summarizes any duplicates as a Warning, shown on stderr:
//
//	if w, ok := display.WarnDuplicates(pos); ok {
//	    w.Display(os.Stderr, display.ColorEnabled(cfg.Color, os.Stderr))
//	}
package display
