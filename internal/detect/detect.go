// Package detect identifies the repository's package manager and the Python
// version it asks for.
package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/pyversion"
)

// Manager is the detected package-management ecosystem.
type Manager string

// The two supported ecosystems. This is a closed set, not a plugin seam.
const (
	ManagerUV     Manager = "uv"
	ManagerPipenv Manager = "pipenv"
)

// DetectionError reports that no supported package manager was identified.
type DetectionError struct {
	Root string
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf(messages.DetectNoManagerFmt, e.Root)
}

// Source names the file that supplied a version expression.
type Source string

// Version expression sources, in lookup priority order per manager.
const (
	SourcePyproject     Source = "pyproject.toml"
	SourcePipfile       Source = "Pipfile"
	SourcePythonVersion Source = ".python-version"
	SourceToolVersions  Source = ".tool-versions"
	SourceNone          Source = ""
)

// Expression is a raw version expression and the file it came from.
type Expression struct {
	Raw    string
	Source Source
}

// Found reports whether any expression was located.
func (e Expression) Found() bool {
	return e.Source != SourceNone
}

// Result is the single per-run detection decision: which manager, which
// version. Version is empty when no expression resolved; Dropped carries
// malformed specifier clauses that were ignored during resolution.
type Result struct {
	Manager Manager
	Version string
	Source  Source
	Dropped []string
}

// Detect composes manager detection with version resolution for one repo.
// A missing manager is fatal; a missing version expression is not, it is
// surfaced as an empty Version for the caller to decide.
func Detect(root string) (Result, error) {
	mgr, err := DetectManager(root)
	if err != nil {
		return Result{}, err
	}
	expr := ScanVersionExpression(root, mgr)
	res := Result{Manager: mgr, Source: expr.Source}
	if !expr.Found() {
		return res, nil
	}
	version, dropped, err := pyversion.ResolveExpr(expr.Raw)
	if err != nil {
		return Result{}, err
	}
	res.Version = version
	res.Dropped = dropped
	if version == "" {
		res.Source = SourceNone
	}
	return res, nil
}

// DetectManager decides between uv and pipenv by marker files.
//
// Priority: uv.lock → uv; Pipfile.lock or Pipfile → pipenv. First match wins,
// so a repo carrying both ecosystems' markers detects as uv. Neither marker
// is a *DetectionError.
func DetectManager(root string) (Manager, error) {
	if fileExists(filepath.Join(root, "uv.lock")) {
		return ManagerUV, nil
	}
	if fileExists(filepath.Join(root, "Pipfile.lock")) || fileExists(filepath.Join(root, "Pipfile")) {
		return ManagerPipenv, nil
	}
	return "", &DetectionError{Root: root}
}

// ScanVersionExpression locates the raw version expression for mgr without
// interpreting it. Lookup order: the manager's own manifest, then
// .python-version, then .tool-versions. An unreadable or malformed manifest
// is treated the same as an absent one and the next source is tried.
func ScanVersionExpression(root string, mgr Manager) Expression {
	switch mgr {
	case ManagerUV:
		if raw := versionFromPyproject(filepath.Join(root, "pyproject.toml")); raw != "" {
			return Expression{Raw: raw, Source: SourcePyproject}
		}
	case ManagerPipenv:
		if raw := versionFromPipfile(filepath.Join(root, "Pipfile")); raw != "" {
			return Expression{Raw: raw, Source: SourcePipfile}
		}
	}

	if raw := versionFromFile(filepath.Join(root, ".python-version")); raw != "" {
		return Expression{Raw: raw, Source: SourcePythonVersion}
	}
	if raw := versionFromToolVersions(filepath.Join(root, ".tool-versions")); raw != "" {
		return Expression{Raw: raw, Source: SourceToolVersions}
	}
	return Expression{}
}

// pyprojectManifest models the slice of pyproject.toml we care about.
type pyprojectManifest struct {
	Project struct {
		RequiresPython string `toml:"requires-python"`
	} `toml:"project"`
}

// versionFromPyproject extracts [project].requires-python.
func versionFromPyproject(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var manifest pyprojectManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return strings.TrimSpace(manifest.Project.RequiresPython)
}

// pipfileManifest models the [requires] table of a Pipfile.
type pipfileManifest struct {
	Requires struct {
		PythonVersion     string `toml:"python_version"`
		PythonFullVersion string `toml:"python_full_version"`
	} `toml:"requires"`
}

// versionFromPipfile extracts the Python requirement from a Pipfile,
// preferring python_full_version over python_version.
func versionFromPipfile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var manifest pipfileManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	if full := strings.TrimSpace(manifest.Requires.PythonFullVersion); full != "" {
		return full
	}
	return strings.TrimSpace(manifest.Requires.PythonVersion)
}

// versionFromFile reads a single-version marker file such as .python-version.
func versionFromFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// versionFromToolVersions finds the python line in a .tool-versions file.
func versionFromToolVersions(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "python" {
			return fields[1]
		}
	}
	return ""
}

// fileExists reports whether path exists as a regular file or directory.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
