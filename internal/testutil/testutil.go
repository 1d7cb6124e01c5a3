// Package testutil provides shell stubs that stand in for host tools in tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	writeScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteStubWithStderr writes a stub that prints stderr to standard error and
// exits with exitCode.
func WriteStubWithStderr(t *testing.T, dir string, name string, stderr string, exitCode int) {
	t.Helper()
	writeScript(t, dir, name, fmt.Sprintf("printf '%%s\\n' %s >&2\nexit %d\n", shellQuote(stderr), exitCode))
}

// WriteStubExpectArg writes a stub that succeeds only when expectedArg is present.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) {
	t.Helper()
	body := fmt.Sprintf("for arg in \"$@\"; do\n  if [ \"$arg\" = %s ]; then exit 0; fi\ndone\nexit 1\n", shellQuote(expectedArg))
	writeScript(t, dir, name, body)
}

// WriteRecordingStub writes a stub that appends one line per call to logPath:
// the stub name, its arguments, and the listed environment variables as KEY=VALUE.
func WriteRecordingStub(t *testing.T, dir string, name string, logPath string, envKeys ...string) {
	t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "line=%s\n", shellQuote(name))
	b.WriteString("for arg in \"$@\"; do line=\"$line $arg\"; done\n")
	for _, key := range envKeys {
		fmt.Fprintf(&b, "line=\"$line %s=${%s}\"\n", key, key)
	}
	fmt.Fprintf(&b, "printf '%%s\\n' \"$line\" >> %s\n", shellQuote(logPath))
	writeScript(t, dir, name, b.String())
}

// ReadLog returns the non-empty lines a recording stub wrote to logPath.
func ReadLog(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read stub log: %v", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// PrependPath puts dir first on PATH for the rest of the test.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func writeScript(t *testing.T, dir string, name string, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
