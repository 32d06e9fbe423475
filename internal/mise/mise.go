// Package mise provisions Python runtimes through the mise version manager.
package mise

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/pc-onboard/internal/execx"
	"github.com/conn-castle/pc-onboard/internal/messages"
)

// ProvisioningError reports a failed mise operation: the tool is absent from
// the environment or one of its commands exited non-zero.
type ProvisioningError struct {
	Msg string
	Err error
}

func (e *ProvisioningError) Error() string {
	return e.Msg
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// EnsurePython installs version and pins it for the repository at root.
// version must be non-empty; the skip-when-unresolved policy belongs to the
// caller. mise presence is probed first so a missing tool fails with an
// actionable message instead of a launch error mid-install.
func EnsurePython(root string, version string, runner execx.Runner, log *logrus.Logger) error {
	probe := execx.Command{Name: "mise", Args: []string{"--version"}}
	if _, err := runner.Run(probe, execx.Options{Capture: true, Check: true}); err != nil {
		return &ProvisioningError{Msg: messages.MiseNotInstalled, Err: err}
	}

	log.Infof(messages.MiseInstallingFmt, version)

	install := execx.Command{Name: "mise", Args: []string{"install", "python@" + version}}
	if _, err := runner.Run(install, execx.Options{Dir: root, Check: true}); err != nil {
		return &ProvisioningError{Msg: fmt.Sprintf(messages.MiseInstallFailFmt, version, err), Err: err}
	}

	use := execx.Command{Name: "mise", Args: []string{"use", "python@" + version}}
	if _, err := runner.Run(use, execx.Options{Dir: root, Check: true}); err != nil {
		return &ProvisioningError{Msg: fmt.Sprintf(messages.MiseUseFailFmt, version, err), Err: err}
	}

	return nil
}
