// Package templates holds the managed hook configuration asset and applies
// the backup-before-overwrite rule when writing it.
package templates

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/pc-onboard/internal/messages"
)

//go:embed precommit.yaml
var preCommitConfig []byte

// ConfigFileName is the repository-relative hook configuration path.
const ConfigFileName = ".pre-commit-config.yaml"

const backupTimeFormat = "20060102_150405"

// timeNow is a seam for deterministic backup names in tests.
var timeNow = time.Now

// PreCommitConfig returns the managed .pre-commit-config.yaml content.
func PreCommitConfig() []byte {
	return preCommitConfig
}

// WriteConfig writes the managed hook configuration into root. A pre-existing
// file is first copied to a timestamped backup; a failed backup aborts the
// write. The content is then replaced unconditionally, even when it is
// byte-identical to what is already there.
func WriteConfig(root string, log *logrus.Logger) (path string, backup string, err error) {
	path = filepath.Join(root, ConfigFileName)

	existing, readErr := os.ReadFile(path)
	switch {
	case readErr == nil:
		backup = fmt.Sprintf("%s.backup.%s", path, timeNow().Format(backupTimeFormat))
		if err := os.WriteFile(backup, existing, 0o644); err != nil {
			return "", "", fmt.Errorf(messages.TemplatesBackupFailedFmt, ConfigFileName, err)
		}
		log.Infof(messages.TemplatesBackedUpFmt, backup)
	case errors.Is(readErr, os.ErrNotExist):
		// Nothing to back up.
	default:
		return "", "", fmt.Errorf(messages.TemplatesBackupFailedFmt, ConfigFileName, readErr)
	}

	if err := os.WriteFile(path, preCommitConfig, 0o644); err != nil {
		return "", "", fmt.Errorf(messages.TemplatesWriteFailedFmt, ConfigFileName, err)
	}
	log.Infof(messages.TemplatesWroteFmt, path)
	return path, backup, nil
}
