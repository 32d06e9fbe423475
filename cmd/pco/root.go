package main

import (
	"io"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/conn-castle/pc-onboard/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newDoctorCmd())
	return cmd
}

// resolveRepoRoot expands a leading ~ and absolutizes the --repo-root value.
func resolveRepoRoot(flagValue string) (string, error) {
	expanded, err := homedir.Expand(flagValue)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// newLogger builds the run logger. Configuration is explicit per run; nothing
// reads ambient state. Verbose enables command echo at debug level.
func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
