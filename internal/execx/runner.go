// Package execx is the single point of external process execution.
package execx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/pc-onboard/internal/messages"
)

// Command is an external program invocation: a program name plus its arguments.
type Command struct {
	Name string
	Args []string
}

// String renders the command as a shell-like line for logs and errors.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Options controls how a command runs.
type Options struct {
	// Dir is the working directory; empty means the process cwd.
	Dir string
	// Capture collects stdout into the Result instead of streaming it.
	Capture bool
	// Check turns a non-zero exit into an *ExitError.
	Check bool
}

// Result reports a completed command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExitError reports a command that ran to completion and exited non-zero.
// Stderr carries the captured standard-error text for the operator message.
type ExitError struct {
	Cmd      Command
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf(messages.ExecFailedFmt, e.Cmd.String(), e.ExitCode)
	}
	return fmt.Sprintf(messages.ExecFailedStderrFmt, e.Cmd.String(), e.ExitCode, stderr)
}

// Runner abstracts process execution so workflows can be tested without
// spawning anything.
type Runner interface {
	Run(cmd Command, opts Options) (Result, error)
}

// Local runs commands on the local machine. Commands inherit stdin and, unless
// captured, stream output to the terminal; stderr is always teed into a buffer
// so failures carry their diagnostic text.
type Local struct {
	Log *logrus.Logger
}

// Run executes cmd and reports its outcome per opts.
func (l *Local) Run(cmd Command, opts Options) (Result, error) {
	if l.Log != nil {
		l.Log.WithField("dir", opts.Dir).Debugf("$ %s", cmd)
	}

	c := exec.Command(cmd.Name, cmd.Args...)
	c.Dir = opts.Dir

	var stdout, stderr bytes.Buffer
	if opts.Capture {
		c.Stdout = &stdout
		c.Stderr = &stderr
	} else {
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = io.MultiWriter(os.Stderr, &stderr)
	}

	err := c.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, fmt.Errorf(messages.ExecLaunchFailedFmt, cmd.Name, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	if opts.Check && result.ExitCode != 0 {
		return result, &ExitError{Cmd: cmd, ExitCode: result.ExitCode, Stderr: result.Stderr}
	}
	return result, nil
}
