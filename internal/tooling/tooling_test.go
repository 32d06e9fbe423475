package tooling

import (
	"reflect"
	"testing"

	"github.com/conn-castle/pc-onboard/internal/detect"
	"github.com/conn-castle/pc-onboard/internal/execx"
)

func TestInstallDevDepsUV(t *testing.T) {
	got := InstallDevDeps(detect.ManagerUV, []string{"ruff", "pre-commit"})
	want := []execx.Command{
		{Name: "uv", Args: []string{"add", "--dev", "ruff", "pre-commit"}},
		{Name: "uv", Args: []string{"sync"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InstallDevDeps = %v, want %v", got, want)
	}
}

func TestInstallDevDepsPipenv(t *testing.T) {
	got := InstallDevDeps(detect.ManagerPipenv, []string{"ruff", "pre-commit"})
	want := []execx.Command{
		{Name: "pipenv", Args: []string{"install", "--dev", "ruff", "pre-commit"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InstallDevDeps = %v, want %v", got, want)
	}
}

func TestPreCommitInstall(t *testing.T) {
	got := PreCommitInstall(detect.ManagerUV)
	want := execx.Command{Name: "uv", Args: []string{"run", "pre-commit", "install"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PreCommitInstall(uv) = %v", got)
	}

	got = PreCommitInstall(detect.ManagerPipenv)
	want = execx.Command{Name: "pipenv", Args: []string{"run", "pre-commit", "install"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PreCommitInstall(pipenv) = %v", got)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap(detect.ManagerUV, []string{"pre-commit", "run", "--all-files"})
	want := execx.Command{Name: "uv", Args: []string{"run", "pre-commit", "run", "--all-files"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap(uv) = %v", got)
	}

	got = Wrap(detect.ManagerPipenv, []string{"pre-commit", "run", "--all-files"})
	want = execx.Command{Name: "pipenv", Args: []string{"run", "pre-commit", "run", "--all-files"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap(pipenv) = %v", got)
	}
}

func TestWrapIsDeterministic(t *testing.T) {
	first := Wrap(detect.ManagerUV, []string{"pre-commit", "install"})
	second := Wrap(detect.ManagerUV, []string{"pre-commit", "install"})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Wrap not deterministic: %v vs %v", first, second)
	}
}

func TestUnknownManagerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown manager")
		}
	}()
	Wrap(detect.Manager("poetry"), []string{"x"})
}
