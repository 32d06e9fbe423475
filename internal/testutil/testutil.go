// Package testutil provides shell-stub helpers for tests that exercise
// external commands through PATH.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	writeStub(t, dir, name, fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
}

// WriteStubWithStderr writes an executable shell stub that prints message to
// stderr and exits with the provided code.
func WriteStubWithStderr(t *testing.T, dir string, name string, message string, exitCode int) {
	t.Helper()
	writeStub(t, dir, name, fmt.Sprintf("#!/bin/sh\necho %q >&2\nexit %d\n", message, exitCode))
}

// WriteStubWithStdout writes an executable shell stub that prints message to
// stdout and exits successfully.
func WriteStubWithStdout(t *testing.T, dir string, name string, message string) {
	t.Helper()
	writeStub(t, dir, name, fmt.Sprintf("#!/bin/sh\necho %q\nexit 0\n", message))
}

// WriteStubExpectArg writes an executable shell stub that succeeds only when expectedArg is present.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) {
	t.Helper()
	content := fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit 0; fi\ndone\nexit 1\n", expectedArg)
	writeStub(t, dir, name, content)
}

func writeStub(t *testing.T, dir string, name string, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}
