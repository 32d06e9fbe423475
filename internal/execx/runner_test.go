package execx

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/pc-onboard/internal/testutil"
)

func newTestRunner() *Local {
	log := logrus.New()
	log.SetOutput(&strings.Builder{})
	return &Local{Log: log}
}

func TestLocalRunSuccess(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStub(t, dir, "tool")
	t.Setenv("PATH", dir)

	result, err := newTestRunner().Run(Command{Name: "tool"}, Options{Capture: true, Check: true})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if result.ExitCode != 0 {
		t.Fatalf("exit code = %d", result.ExitCode)
	}
}

func TestLocalRunCapturesStdout(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithStdout(t, dir, "tool", "Python 3.11.8")
	t.Setenv("PATH", dir)

	result, err := newTestRunner().Run(Command{Name: "tool"}, Options{Capture: true, Check: true})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if strings.TrimSpace(result.Stdout) != "Python 3.11.8" {
		t.Fatalf("stdout = %q", result.Stdout)
	}
}

func TestLocalRunCheckFailureCarriesStderr(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithStderr(t, dir, "tool", "something broke", 2)
	t.Setenv("PATH", dir)

	_, err := newTestRunner().Run(Command{Name: "tool", Args: []string{"install"}}, Options{Capture: true, Check: true})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %v", err)
	}
	if exitErr.ExitCode != 2 {
		t.Fatalf("exit code = %d", exitErr.ExitCode)
	}
	if !strings.Contains(exitErr.Stderr, "something broke") {
		t.Fatalf("stderr = %q", exitErr.Stderr)
	}
	if !strings.Contains(exitErr.Error(), "tool install") {
		t.Fatalf("error message = %q", exitErr.Error())
	}
}

func TestLocalRunNoCheckReportsExitCode(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, "tool", 5)
	t.Setenv("PATH", dir)

	result, err := newTestRunner().Run(Command{Name: "tool"}, Options{Capture: true})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if result.ExitCode != 5 {
		t.Fatalf("exit code = %d, want 5", result.ExitCode)
	}
}

func TestLocalRunLaunchFailure(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := newTestRunner().Run(Command{Name: "no-such-binary"}, Options{Capture: true, Check: true})
	if err == nil {
		t.Fatal("expected launch error")
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		t.Fatalf("launch failure must not be an *ExitError: %v", err)
	}
	if !strings.Contains(err.Error(), "no-such-binary") {
		t.Fatalf("error message = %q", err.Error())
	}
}

func TestLocalRunHonorsDir(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubExpectArg(t, dir, "tool", "--ready")
	t.Setenv("PATH", dir)

	workDir := t.TempDir()
	_, err := newTestRunner().Run(Command{Name: "tool", Args: []string{"--ready"}}, Options{Dir: workDir, Capture: true, Check: true})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
}

func TestCommandString(t *testing.T) {
	cmd := Command{Name: "uv", Args: []string{"add", "--dev", "ruff"}}
	if cmd.String() != "uv add --dev ruff" {
		t.Fatalf("String() = %q", cmd.String())
	}
	if (Command{Name: "uv"}).String() != "uv" {
		t.Fatalf("bare String() = %q", (Command{Name: "uv"}).String())
	}
}
