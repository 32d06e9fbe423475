// Package onboard sequences the repository onboarding workflow: detect the
// package manager, provision the Python runtime, install dev tooling, write
// the managed hook configuration, register git hooks, and optionally run them.
package onboard

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/pc-onboard/internal/detect"
	"github.com/conn-castle/pc-onboard/internal/execx"
	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/mise"
	"github.com/conn-castle/pc-onboard/internal/templates"
	"github.com/conn-castle/pc-onboard/internal/tooling"
)

// Phase names, in execution order.
const (
	PhaseDetect        = "detect"
	PhaseProvision     = "provision-python"
	PhaseInstallDeps   = "install-dev-deps"
	PhaseWriteConfig   = "write-config"
	PhaseRegisterHooks = "register-hooks"
	PhaseRunAll        = "run-all"
)

// Outcome classifies how a phase ended.
type Outcome string

// Phase outcomes.
const (
	OutcomeSuccess Outcome = "success"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// PhaseResult records one attempted phase.
type PhaseResult struct {
	Name    string
	Outcome Outcome
	Err     error
}

// Result accumulates the outcome of a full onboarding run. It is created at
// the start of a run, appended to by each phase, and consumed by the CLI.
type Result struct {
	Phases    []PhaseResult
	Detection detect.Result
	ExitCode  int
}

func (r *Result) record(name string, outcome Outcome, err error) {
	r.Phases = append(r.Phases, PhaseResult{Name: name, Outcome: outcome, Err: err})
}

// fail records a fatal phase failure and returns the cause.
func (r *Result) fail(name string, err error) error {
	r.record(name, OutcomeFailed, err)
	r.ExitCode = 1
	return err
}

// RunAllChoice is the caller's tri-state decision about running all hooks.
type RunAllChoice int

// Run-all decisions. Unset defers to the interactive prompt.
const (
	RunAllUnset RunAllChoice = iota
	RunAllYes
	RunAllNo
)

// ToolingError reports a manager command that exited non-zero during
// dependency installation or hook registration.
type ToolingError struct {
	Phase string
	Err   error
}

func (e *ToolingError) Error() string {
	return fmt.Sprintf(messages.OnboardToolingFailedFmt, e.Phase, e.Err)
}

func (e *ToolingError) Unwrap() error {
	return e.Err
}

// Options configures a workflow run. The orchestrator never reads terminal or
// environment state itself; the CLI supplies everything here.
type Options struct {
	RepoRoot    string
	RunAll      RunAllChoice
	NoPrompt    bool
	Interactive bool
	Runner      execx.Runner
	// Prompt asks the operator a yes/no question. Only consulted when RunAll
	// is unset, prompting is allowed, and the session is interactive.
	Prompt func(title string) (bool, error)
	Log    *logrus.Logger
}

// Run executes the workflow phases in order. The returned Result is always
// populated with the phases attempted; err is the fatal cause when a phase
// failed. Result.ExitCode is the process exit status: 0 on success, 1 on a
// fatal failure, or the propagated status of the final run-all invocation.
func Run(opts Options) (*Result, error) {
	res := &Result{}

	det, err := detect.Detect(opts.RepoRoot)
	if err != nil {
		return res, res.fail(PhaseDetect, err)
	}
	res.Detection = det
	res.record(PhaseDetect, OutcomeSuccess, nil)
	opts.Log.Infof(messages.OnboardDetectedManagerFmt, det.Manager)
	for _, clause := range det.Dropped {
		opts.Log.Warnf(messages.OnboardDroppedConstraintFmt, clause)
	}

	if det.Version == "" {
		opts.Log.Warn(messages.OnboardNoVersionWarn)
		res.record(PhaseProvision, OutcomeSkipped, nil)
	} else {
		if err := mise.EnsurePython(opts.RepoRoot, det.Version, opts.Runner, opts.Log); err != nil {
			return res, res.fail(PhaseProvision, err)
		}
		res.record(PhaseProvision, OutcomeSuccess, nil)
	}

	for _, cmd := range tooling.InstallDevDeps(det.Manager, tooling.DevPackages) {
		if _, err := opts.Runner.Run(cmd, execx.Options{Dir: opts.RepoRoot, Check: true}); err != nil {
			return res, res.fail(PhaseInstallDeps, &ToolingError{Phase: PhaseInstallDeps, Err: err})
		}
	}
	res.record(PhaseInstallDeps, OutcomeSuccess, nil)

	if _, _, err := templates.WriteConfig(opts.RepoRoot, opts.Log); err != nil {
		return res, res.fail(PhaseWriteConfig, err)
	}
	res.record(PhaseWriteConfig, OutcomeSuccess, nil)

	install := tooling.PreCommitInstall(det.Manager)
	if _, err := opts.Runner.Run(install, execx.Options{Dir: opts.RepoRoot, Check: true}); err != nil {
		return res, res.fail(PhaseRegisterHooks, &ToolingError{Phase: PhaseRegisterHooks, Err: err})
	}
	res.record(PhaseRegisterHooks, OutcomeSuccess, nil)

	if !decideRunAll(opts) {
		res.record(PhaseRunAll, OutcomeSkipped, nil)
		return res, nil
	}

	runAll := tooling.Wrap(det.Manager, []string{"pre-commit", "run", "--all-files"})
	runResult, err := opts.Runner.Run(runAll, execx.Options{Dir: opts.RepoRoot})
	if err != nil {
		return res, res.fail(PhaseRunAll, err)
	}
	res.ExitCode = runResult.ExitCode
	if runResult.ExitCode != 0 {
		res.record(PhaseRunAll, OutcomeFailed, nil)
	} else {
		res.record(PhaseRunAll, OutcomeSuccess, nil)
	}
	return res, nil
}

// decideRunAll resolves the tri-state run-all decision. Explicit choices and
// the no-prompt flag bypass the prompt deterministically; the prompt is only
// reached in an interactive session. A prompt aborted by the operator counts
// as a decline.
func decideRunAll(opts Options) bool {
	switch opts.RunAll {
	case RunAllYes:
		return true
	case RunAllNo:
		return false
	}
	if opts.NoPrompt || !opts.Interactive || opts.Prompt == nil {
		return false
	}
	run, err := opts.Prompt(messages.InitRunAllPrompt)
	if err != nil {
		opts.Log.Debugf("run-all prompt aborted: %v", err)
		return false
	}
	return run
}
