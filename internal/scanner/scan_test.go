package scanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures scan log calls for assertions.
type recordingLogger struct {
	debug []string
	warn  []string
}

func (l *recordingLogger) LogDebug(message string) { l.debug = append(l.debug, message) }
func (l *recordingLogger) LogWarn(message string)  { l.warn = append(l.warn, message) }

// buildLines returns n filler lines with the given overrides applied by index.
func buildLines(n int, overrides map[int]string) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("        // filler %d", i)
	}
	for i, text := range overrides {
		lines[i] = text
	}
	return lines
}

func verifyDecl() string {
	return "        " + VerifyEmailMarker
}

func resendDecl() string {
	return "        " + ResendMarker
}

func TestScan_VerifyEmailSlots(t *testing.T) {
	tests := []struct {
		name       string
		at         []int
		wantFirst  int
		wantSecond int
	}{
		{name: "none", at: nil, wantFirst: NotFound, wantSecond: NotFound},
		{name: "single", at: []int{7}, wantFirst: 7, wantSecond: NotFound},
		{name: "pair", at: []int{3, 12}, wantFirst: 3, wantSecond: 12},
		{name: "second slot keeps the last match", at: []int{2, 9, 15}, wantFirst: 2, wantSecond: 15},
		{name: "first line", at: []int{0, 1}, wantFirst: 0, wantSecond: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrides := map[int]string{}
			for _, i := range tt.at {
				overrides[i] = verifyDecl()
			}
			src := &Source{Lines: buildLines(20, overrides)}

			pos := Scan(src, nil)

			assert.Equal(t, tt.wantFirst, pos.FirstVerifyEmail)
			assert.Equal(t, tt.wantSecond, pos.SecondVerifyEmail)
		})
	}
}

func TestScan_ResendRequiresHttpGetAbove(t *testing.T) {
	src := &Source{Lines: buildLines(30, map[int]string{
		4:  "        [HttpGet]",
		5:  resendDecl(),
		19: "        [HttpGet]",
		20: resendDecl(),
	})}

	pos := Scan(src, nil)

	assert.Equal(t, 5, pos.FirstResend)
	assert.Equal(t, 20, pos.SecondResend)
}

func TestScan_ResendWithoutAttributeIgnored(t *testing.T) {
	log := &recordingLogger{}
	src := &Source{Lines: buildLines(30, map[int]string{
		4:  "        [HttpPost]",
		5:  resendDecl(),
		10: "        [HttpGet]",
		11: "        [AllowAnonymous]",
		12: resendDecl(),
	})}

	pos := Scan(src, log)

	assert.Equal(t, NotFound, pos.FirstResend)
	assert.Equal(t, NotFound, pos.SecondResend)
	require.Len(t, log.warn, 2)
	assert.Contains(t, log.warn[0], "line 5")
	assert.Contains(t, log.warn[1], "line 12")
}

func TestScan_ResendIgnoredOccurrenceDoesNotConsumeFirstSlot(t *testing.T) {
	src := &Source{Lines: buildLines(30, map[int]string{
		5:  resendDecl(),
		14: "        [HttpGet]",
		15: resendDecl(),
	})}

	pos := Scan(src, nil)

	assert.Equal(t, 15, pos.FirstResend)
	assert.Equal(t, NotFound, pos.SecondResend)
}

func TestScan_ResendOnFirstLineHasNoPredecessor(t *testing.T) {
	src := &Source{Lines: []string{resendDecl(), "}", "[HttpGet]"}}

	pos := Scan(src, nil)

	assert.Equal(t, NotFound, pos.FirstResend)
}

func TestScan_TailorPolicyThreshold(t *testing.T) {
	attr := "        " + TailorPolicyMarker

	tests := []struct {
		name      string
		overrides map[int]string
		want      int
	}{
		{
			name:      "before threshold only",
			overrides: map[int]string{100: attr, 900: attr},
			want:      NotFound,
		},
		{
			name:      "exactly at threshold is not reported",
			overrides: map[int]string{TailorPolicyAfter: attr},
			want:      NotFound,
		},
		{
			name:      "first line past threshold",
			overrides: map[int]string{TailorPolicyAfter + 1: attr},
			want:      TailorPolicyAfter + 1,
		},
		{
			name:      "only the first match past threshold",
			overrides: map[int]string{300: attr, 1203: attr, 1210: attr, 1250: attr},
			want:      1203,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &Source{Lines: buildLines(1300, tt.overrides)}

			pos := Scan(src, nil)

			assert.Equal(t, tt.want, pos.DuplicateTailorPolicy)
		})
	}
}

func TestScan_SecondAlwaysAfterFirst(t *testing.T) {
	src := &Source{Lines: buildLines(50, map[int]string{
		8:  verifyDecl(),
		30: verifyDecl(),
		9:  "[HttpGet]",
		10: resendDecl(),
		40: "[HttpGet]",
		41: resendDecl(),
	})}

	pos := Scan(src, nil)

	assert.Less(t, pos.FirstVerifyEmail, pos.SecondVerifyEmail)
	assert.Less(t, pos.FirstResend, pos.SecondResend)
}

func TestScan_SyntheticControllerFile(t *testing.T) {
	src := &Source{Lines: buildLines(1205, map[int]string{
		50:   verifyDecl(),
		1150: verifyDecl(),
	})}

	pos := Scan(src, nil)

	assert.Equal(t, 50, pos.FirstVerifyEmail)
	assert.Equal(t, 1150, pos.SecondVerifyEmail)
	assert.Equal(t, NotFound, pos.FirstResend)
	assert.Equal(t, NotFound, pos.SecondResend)
	assert.Equal(t, NotFound, pos.DuplicateTailorPolicy)
}

func TestScan_NoMarkers(t *testing.T) {
	src := &Source{Lines: buildLines(200, nil)}

	assert.Equal(t, NewPositions(), Scan(src, nil))
}

func TestScan_LogsHits(t *testing.T) {
	log := &recordingLogger{}
	src := &Source{Lines: buildLines(1300, map[int]string{
		3:    verifyDecl(),
		1220: "        " + TailorPolicyMarker,
	})}

	Scan(src, log)

	joined := strings.Join(log.debug, "\n")
	assert.Contains(t, joined, "VerifyEmail declaration at line 3")
	assert.Contains(t, joined, "at line 1220")
	assert.Empty(t, log.warn)
}

func TestScan_MarkerMustMatchExactly(t *testing.T) {
	src := &Source{Lines: []string{
		"public async Task<IActionResult> VerifyEmail(string code)",
		"public async Task<IActionResult> verifyemail(string token)",
		"[HttpGet]",
		"public IActionResult ResendVerificationEmail(string email)",
	}}

	assert.Equal(t, NewPositions(), Scan(src, nil))
}
