package main

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/conn-castle/pc-onboard/internal/execx"
	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/onboard"
	"github.com/conn-castle/pc-onboard/internal/terminal"
)

var runOnboard = onboard.Run
var isTerminal = terminal.IsInteractive

func newInitCmd() *cobra.Command {
	var repoRoot string
	var runAll bool
	var noRunAll bool
	var noPrompt bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runAll && noRunAll {
				return errors.New(messages.InitRunAllConflict)
			}
			root, err := resolveRepoRoot(repoRoot)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), verbose)

			choice := onboard.RunAllUnset
			if runAll {
				choice = onboard.RunAllYes
			} else if noRunAll {
				choice = onboard.RunAllNo
			}

			opts := onboard.Options{
				RepoRoot:    root,
				RunAll:      choice,
				NoPrompt:    noPrompt,
				Interactive: isTerminal(),
				Runner:      &execx.Local{Log: log},
				Prompt:      confirmRunAll,
				Log:         log,
			}
			result, err := runOnboard(opts)
			if err != nil {
				return err
			}
			if result.ExitCode != 0 {
				return &SilentExitError{Code: result.ExitCode}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&repoRoot, "repo-root", "r", ".", messages.InitFlagRepoRoot)
	cmd.Flags().BoolVar(&runAll, "run-all", false, messages.InitFlagRunAll)
	cmd.Flags().BoolVar(&noRunAll, "no-run-all", false, messages.InitFlagNoRunAll)
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, messages.InitFlagNoPrompt)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, messages.InitFlagVerbose)

	return cmd
}

// confirmRunAll asks the run-all question through a huh confirm field.
func confirmRunAll(title string) (bool, error) {
	var run bool
	if err := huh.NewConfirm().Title(title).Value(&run).Run(); err != nil {
		return false, err
	}
	return run, nil
}
