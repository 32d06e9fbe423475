package onboard

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/conn-castle/pc-onboard/internal/detect"
	"github.com/conn-castle/pc-onboard/internal/execx"
	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/tooling"
)

// Check is the result of a single doctor diagnostic.
type Check struct {
	Name   string
	Passed bool
	// Message is the human-readable status line.
	Message string
	// Source names the file that supplied a value, when relevant.
	Source string
}

// DoctorOptions configures the diagnostics run.
type DoctorOptions struct {
	RepoRoot string
	Runner   execx.Runner
	// LookPath resolves a binary on PATH; defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

// Doctor runs the environment diagnostics and returns one Check per probe.
// It never mutates anything and never fails the process itself; the CLI
// decides the exit status from the check results.
func Doctor(opts DoctorOptions) []Check {
	lookPath := opts.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	var checks []Check

	if path, err := lookPath("mise"); err == nil {
		checks = append(checks, Check{Name: messages.DoctorCheckMise, Passed: true, Message: fmt.Sprintf(messages.DoctorMiseFoundFmt, path)})
	} else {
		checks = append(checks, Check{Name: messages.DoctorCheckMise, Message: messages.DoctorMiseMissing})
	}

	mgr, err := detect.DetectManager(opts.RepoRoot)
	if err != nil {
		checks = append(checks,
			Check{Name: messages.DoctorCheckManager, Message: fmt.Sprintf(messages.DoctorNoManagerFmt, err)},
			Check{Name: messages.DoctorCheckVersion, Message: messages.DoctorVersionNoMgr},
			Check{Name: messages.DoctorCheckVersionMatch, Message: messages.DoctorMatchNoVersion},
		)
		checks = append(checks, packageChecks(lookPath)...)
		checks = append(checks, fileChecks(opts.RepoRoot)...)
		return checks
	}
	checks = append(checks, Check{Name: messages.DoctorCheckManager, Passed: true, Message: fmt.Sprintf(messages.DoctorManagerFmt, mgr)})

	version := ""
	if det, err := detect.Detect(opts.RepoRoot); err == nil && det.Version != "" {
		version = det.Version
		checks = append(checks, Check{
			Name:    messages.DoctorCheckVersion,
			Passed:  true,
			Message: fmt.Sprintf(messages.DoctorVersionFmt, version),
			Source:  fmt.Sprintf(messages.DoctorVersionSrcFmt, det.Source),
		})
	} else {
		checks = append(checks, Check{Name: messages.DoctorCheckVersion, Message: messages.DoctorVersionMissing})
	}

	checks = append(checks, versionMatchCheck(opts.Runner, version))
	checks = append(checks, packageChecks(lookPath)...)
	checks = append(checks, fileChecks(opts.RepoRoot)...)
	return checks
}

// versionMatchCheck compares the interpreter on PATH against the resolved
// version, major.minor only.
func versionMatchCheck(runner execx.Runner, version string) Check {
	check := Check{Name: messages.DoctorCheckVersionMatch}
	if version == "" {
		check.Message = messages.DoctorMatchNoVersion
		return check
	}
	current := currentPythonVersion(runner)
	if current == "" {
		check.Message = messages.DoctorNoCurrentPython
		return check
	}
	if majorMinor(current) == majorMinor(version) {
		check.Passed = true
		check.Message = fmt.Sprintf(messages.DoctorMatchFmt, current, version)
	} else {
		check.Message = fmt.Sprintf(messages.DoctorMismatchFmt, current, version)
	}
	return check
}

// currentPythonVersion asks the interpreter on PATH for its version.
// Output format: "Python 3.11.8".
func currentPythonVersion(runner execx.Runner) string {
	cmd := execx.Command{Name: "python", Args: []string{"--version"}}
	result, err := runner.Run(cmd, execx.Options{Capture: true, Check: true})
	if err != nil {
		return ""
	}
	fields := strings.Fields(strings.TrimSpace(result.Stdout))
	if len(fields) == 2 && fields[0] == "Python" {
		return fields[1]
	}
	return ""
}

// majorMinor truncates a dotted version to its first two components.
func majorMinor(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}

// packageChecks verifies each dev tool is available on PATH.
func packageChecks(lookPath func(string) (string, error)) []Check {
	var checks []Check
	for _, pkg := range tooling.DevPackages {
		check := Check{Name: fmt.Sprintf(messages.DoctorCheckPackageFmt, pkg)}
		if _, err := lookPath(pkg); err == nil {
			check.Passed = true
			check.Message = fmt.Sprintf(messages.DoctorPackageOKFmt, pkg)
		} else {
			check.Message = fmt.Sprintf(messages.DoctorPackageMissFmt, pkg)
		}
		checks = append(checks, check)
	}
	return checks
}

// fileChecks verifies the generated artifacts are in place.
func fileChecks(root string) []Check {
	checks := make([]Check, 0, 2)

	configCheck := Check{Name: messages.DoctorCheckConfig, Message: messages.DoctorConfigMissing}
	if fileExists(filepath.Join(root, ".pre-commit-config.yaml")) {
		configCheck.Passed = true
		configCheck.Message = messages.DoctorConfigOK
	}
	checks = append(checks, configCheck)

	hooksCheck := Check{Name: messages.DoctorCheckHooks, Message: messages.DoctorHooksMissing}
	if fileExists(filepath.Join(root, ".git", "hooks", "pre-commit")) {
		hooksCheck.Passed = true
		hooksCheck.Message = messages.DoctorHooksOK
	}
	checks = append(checks, hooksCheck)

	return checks
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
