package templates

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPreCommitConfigContent(t *testing.T) {
	content := string(PreCommitConfig())
	for _, want := range []string{"Managed by pc-onboard", "ruff-pre-commit", "sqlfluff", "mirrors-prettier"} {
		if !strings.Contains(content, want) {
			t.Fatalf("config missing %q", want)
		}
	}
}

func TestWriteConfigFreshRepoWritesNoBackup(t *testing.T) {
	root := t.TempDir()

	path, backup, err := WriteConfig(root, quietLogger())
	if err != nil {
		t.Fatalf("WriteConfig error: %v", err)
	}
	if backup != "" {
		t.Fatalf("unexpected backup %q", backup)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !bytes.Equal(data, PreCommitConfig()) {
		t.Fatal("written content differs from template")
	}
}

func TestWriteConfigBacksUpExistingFile(t *testing.T) {
	root := t.TempDir()
	existing := []byte("repos: []\n")
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), existing, 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	_, backup, err := WriteConfig(root, quietLogger())
	if err != nil {
		t.Fatalf("WriteConfig error: %v", err)
	}
	if backup == "" {
		t.Fatal("expected a backup path")
	}
	saved, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if !bytes.Equal(saved, existing) {
		t.Fatalf("backup content = %q, want original", saved)
	}
}

func TestWriteConfigBacksUpEvenWhenContentIdentical(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), PreCommitConfig(), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	_, backup, err := WriteConfig(root, quietLogger())
	if err != nil {
		t.Fatalf("WriteConfig error: %v", err)
	}
	if backup == "" {
		t.Fatal("identical content must still be backed up")
	}
}

func TestWriteConfigBackupNameCarriesTimestamp(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("old\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	fixed := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = orig }()

	_, backup, err := WriteConfig(root, quietLogger())
	if err != nil {
		t.Fatalf("WriteConfig error: %v", err)
	}
	want := filepath.Join(root, ConfigFileName+".backup.20260825_103000")
	if backup != want {
		t.Fatalf("backup = %q, want %q", backup, want)
	}
}

func TestWriteConfigSecondRunAddsExactlyOneBackup(t *testing.T) {
	root := t.TempDir()

	if _, _, err := WriteConfig(root, quietLogger()); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, backup, err := WriteConfig(root, quietLogger()); err != nil || backup == "" {
		t.Fatalf("second write: backup=%q err=%v", backup, err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	backups := 0
	for _, e := range entries {
		if strings.Contains(e.Name(), ".backup.") {
			backups++
		}
	}
	if backups != 1 {
		t.Fatalf("backup count = %d, want 1", backups)
	}
}
