package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/AhmedTyson/accountscan/internal/config"
	"github.com/AhmedTyson/accountscan/internal/scanner"
)

// Report labels, printed in this order.
const (
	LabelFirstVerifyEmail      = "First VerifyEmail at line"
	LabelSecondVerifyEmail     = "Second VerifyEmail at line"
	LabelFirstResend           = "First ResendVerificationEmail at line"
	LabelSecondResend          = "Second ResendVerificationEmail at line"
	LabelDuplicateTailorPolicy = "Duplicate CompleteTailorProfile at line"
)

// reportLine pairs a label with its position.
type reportLine struct {
	label string
	value int
}

func reportLines(pos scanner.Positions) []reportLine {
	return []reportLine{
		{LabelFirstVerifyEmail, pos.FirstVerifyEmail},
		{LabelSecondVerifyEmail, pos.SecondVerifyEmail},
		{LabelFirstResend, pos.FirstResend},
		{LabelSecondResend, pos.SecondResend},
		{LabelDuplicateTailorPolicy, pos.DuplicateTailorPolicy},
	}
}

// WriteReport prints the five positions as "<label>: <index>" lines.
// Not-found positions print as -1. With useColor, labels are cyan and
// not-found values yellow; without it the output is plain text.
func WriteReport(w io.Writer, pos scanner.Positions, useColor bool) error {
	label := color.New(color.FgCyan)
	missing := color.New(color.FgYellow)
	if useColor {
		label.EnableColor()
		missing.EnableColor()
	} else {
		label.DisableColor()
		missing.DisableColor()
	}

	for _, line := range reportLines(pos) {
		value := fmt.Sprintf("%d", line.value)
		if line.value == scanner.NotFound {
			value = missing.Sprint(value)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", label.Sprint(line.label), value); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// ColorEnabled resolves a config color mode for the given writer.
// "auto" enables color only when w is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
