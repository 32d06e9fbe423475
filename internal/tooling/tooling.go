// Package tooling maps logical operations onto package-manager command lines.
// It is pure: the same manager and operation always yield the same commands,
// which keeps every other package manager-agnostic.
package tooling

import (
	"fmt"

	"github.com/conn-castle/pc-onboard/internal/detect"
	"github.com/conn-castle/pc-onboard/internal/execx"
)

// DevPackages are the development tools every onboarded repository gets.
var DevPackages = []string{"ruff", "sqlfluff", "pre-commit"}

// InstallDevDeps returns the ordered commands that install packages as dev
// dependencies under mgr.
func InstallDevDeps(mgr detect.Manager, packages []string) []execx.Command {
	switch mgr {
	case detect.ManagerUV:
		return []execx.Command{
			{Name: "uv", Args: append([]string{"add", "--dev"}, packages...)},
			{Name: "uv", Args: []string{"sync"}},
		}
	case detect.ManagerPipenv:
		return []execx.Command{
			{Name: "pipenv", Args: append([]string{"install", "--dev"}, packages...)},
		}
	}
	panic(unsupported(mgr))
}

// PreCommitInstall returns the command that registers the git hooks through mgr.
func PreCommitInstall(mgr detect.Manager) execx.Command {
	return Wrap(mgr, []string{"pre-commit", "install"})
}

// Wrap rewrites cmd so it runs inside mgr's managed environment.
func Wrap(mgr detect.Manager, cmd []string) execx.Command {
	switch mgr {
	case detect.ManagerUV:
		return execx.Command{Name: "uv", Args: append([]string{"run"}, cmd...)}
	case detect.ManagerPipenv:
		return execx.Command{Name: "pipenv", Args: append([]string{"run"}, cmd...)}
	}
	panic(unsupported(mgr))
}

// unsupported formats the panic message for a manager outside the closed set.
func unsupported(mgr detect.Manager) string {
	return fmt.Sprintf("tooling: unsupported package manager %q", mgr)
}
