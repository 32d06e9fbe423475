// Package messages centralizes user-facing CLI strings and error formats.
package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "pco"
	// RootShort is the short description for the root command.
	RootShort = "Onboard repositories onto the standard pre-commit workflow"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Onboard this repository to the pre-commit standards"

	InitFlagRepoRoot = "Path to the repository root"
	InitFlagRunAll   = "Run pre-commit on all files after setup"
	InitFlagNoRunAll = "Skip running pre-commit on all files after setup"
	InitFlagNoPrompt = "Skip interactive prompts"
	InitFlagVerbose  = "Print every command before execution"

	InitRunAllConflict = "--run-all and --no-run-all are mutually exclusive"
	InitRunAllPrompt   = "Run pre-commit on all files now?"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the environment and print diagnostic results"

	DoctorFlagVerbose = "Show detailed diagnostic information"

	DoctorRepositoryFmt = "Repository: %s\n\n"
	DoctorResultLineFmt = "  %s %s: %s\n"
	DoctorSourceFmt     = "      (%s)\n"
	DoctorStatusOK      = "✓"
	DoctorStatusFail    = "✗"
	DoctorFailuresHint  = "Some checks failed. Run 'pco init' to set up the repository."
)

// Workflow log and error messages.
const (
	OnboardDetectedManagerFmt   = "detected package manager: %s"
	OnboardNoVersionWarn        = "no Python version found in repo config files; skipping mise setup"
	OnboardDroppedConstraintFmt = "ignoring malformed version constraint %q"
	OnboardToolingFailedFmt     = "%s failed: %v"

	DetectNoManagerFmt = "could not detect package manager: expected uv.lock (uv) or Pipfile/Pipfile.lock (pipenv) in %s"

	ResolveMinorUnderflowFmt = "cannot resolve a version below %q: minor version underflow"

	MiseNotInstalled   = "mise is not installed or not on PATH; install it from https://mise.jdx.dev"
	MiseInstallFailFmt = "failed to install Python %s via mise: %v"
	MiseUseFailFmt     = "failed to activate Python %s via mise: %v"
	MiseInstallingFmt  = "installing Python %s via mise"

	ExecFailedFmt       = "command %q failed with exit code %d"
	ExecFailedStderrFmt = "command %q failed with exit code %d: %s"
	ExecLaunchFailedFmt = "failed to launch %q: %w"

	TemplatesBackupFailedFmt = "failed to back up existing %s: %w"
	TemplatesWriteFailedFmt  = "failed to write %s: %w"
	TemplatesBackedUpFmt     = "backed up existing config to %s"
	TemplatesWroteFmt        = "wrote %s"
)

// Doctor check names and messages.
const (
	DoctorCheckMise          = "mise"
	DoctorCheckManager       = "package_manager"
	DoctorCheckVersion       = "python_version"
	DoctorCheckVersionMatch  = "python_match"
	DoctorCheckPackageFmt    = "package_%s"
	DoctorCheckConfig        = "pre_commit_config"
	DoctorCheckHooks         = "pre_commit_hooks"

	DoctorMiseFoundFmt    = "found at %s"
	DoctorMiseMissing     = "NOT FOUND, install from https://mise.jdx.dev"
	DoctorManagerFmt      = "detected: %s"
	DoctorNoManagerFmt    = "NOT DETECTED: %v"
	DoctorVersionFmt      = "resolved: %s"
	DoctorVersionMissing  = "not found in repo config files"
	DoctorVersionNoMgr    = "cannot check (no package manager detected)"
	DoctorVersionSrcFmt   = "from %s"
	DoctorMatchFmt        = "current Python %s matches %s"
	DoctorMismatchFmt     = "current Python %s does not match required %s"
	DoctorNoCurrentPython = "cannot determine current Python version"
	DoctorMatchNoVersion  = "cannot check (no Python version resolved)"
	DoctorPackageOKFmt    = "%s is installed"
	DoctorPackageMissFmt  = "%s is NOT installed"
	DoctorConfigOK        = ".pre-commit-config.yaml exists"
	DoctorConfigMissing   = ".pre-commit-config.yaml not found"
	DoctorHooksOK         = "pre-commit hooks installed in .git/hooks"
	DoctorHooksMissing    = "pre-commit hooks NOT installed in .git/hooks"
)
