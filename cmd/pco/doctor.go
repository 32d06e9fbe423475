package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/pc-onboard/internal/execx"
	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/onboard"
)

var runDoctor = onboard.Doctor

func newDoctorCmd() *cobra.Command {
	var repoRoot string
	var verbose bool

	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRepoRoot(repoRoot)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.DoctorRepositoryFmt, root)

			log := newLogger(cmd.ErrOrStderr(), verbose)
			checks := runDoctor(onboard.DoctorOptions{
				RepoRoot: root,
				Runner:   &execx.Local{Log: log},
			})

			allPassed := true
			for _, check := range checks {
				printCheck(out, check, verbose)
				if !check.Passed {
					allPassed = false
				}
			}
			_, _ = fmt.Fprintln(out)

			if !allPassed {
				_, _ = fmt.Fprintln(out, color.YellowString(messages.DoctorFailuresHint))
				return &SilentExitError{Code: 1}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&repoRoot, "repo-root", "r", ".", messages.InitFlagRepoRoot)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, messages.DoctorFlagVerbose)

	return cmd
}

// printCheck renders one diagnostic line, with the value source in verbose mode.
func printCheck(out io.Writer, check onboard.Check, verbose bool) {
	var status string
	if check.Passed {
		status = color.GreenString(messages.DoctorStatusOK)
	} else {
		status = color.RedString(messages.DoctorStatusFail)
	}
	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, check.Name, check.Message)
	if verbose && check.Source != "" {
		_, _ = fmt.Fprintf(out, messages.DoctorSourceFmt, check.Source)
	}
}
