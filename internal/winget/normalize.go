// ABOUTME: Output normalizer for raw winget process text
// ABOUTME: BOM/UTF-16 decode, CRLF and progress-overwrite resolution, exit policy

package winget

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ExitPolicy decides how a non-zero exit status is interpreted.
type ExitPolicy int

const (
	// ExitLenient treats non-zero exit as success when stdout is non-empty;
	// winget signals "no results" for read queries this way.
	ExitLenient ExitPolicy = iota
	// ExitStrict treats any non-zero exit as failure. Used for mutations.
	ExitStrict
)

// ProcessFailure reports a winget invocation that violated its exit policy,
// or that could not be started at all (ExitCode -1).
type ProcessFailure struct {
	ExitCode int
	Message  string
}

func (e *ProcessFailure) Error() string {
	if e.ExitCode < 0 {
		return "winget: " + e.Message
	}
	return fmt.Sprintf("winget exited with code %d: %s", e.ExitCode, e.Message)
}

// decodeConsole converts captured console bytes to UTF-8. Windows console
// redirection can produce UTF-16 with a BOM; anything BOM-marked is decoded,
// plain bytes pass through as UTF-8.
func decodeConsole(raw []byte) string {
	t := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(t, raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}

// Normalize resolves line endings and in-place progress overwrites.
// CRLF becomes LF; a line with an embedded carriage return is a spinner
// overwrite, and only the substring after the last CR is the rendered state.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if !strings.Contains(s, "\r") {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if idx := strings.LastIndexByte(line, '\r'); idx >= 0 {
			lines[i] = line[idx+1:]
		}
	}
	return strings.Join(lines, "\n")
}

// Resolve applies the exit policy to a completed invocation and returns the
// normalized stdout text. Failure text prefers stderr, else trimmed stdout.
func Resolve(stdout, stderr []byte, exitCode int, policy ExitPolicy) (string, error) {
	out := Normalize(decodeConsole(stdout))

	failed := exitCode != 0
	if failed && policy == ExitLenient && strings.TrimSpace(out) != "" {
		failed = false
	}
	if failed {
		msg := strings.TrimSpace(decodeConsole(stderr))
		if msg == "" {
			msg = strings.TrimSpace(out)
		}
		return "", &ProcessFailure{ExitCode: exitCode, Message: msg}
	}
	return out, nil
}
