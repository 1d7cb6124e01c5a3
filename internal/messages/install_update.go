package messages

// Install, reset, update, and remove pipeline messages.
const (
	// InstallConfigRequired indicates a pipeline was started without a config.
	InstallConfigRequired      = "config is required"
	InstallRunnerRequired      = "command runner is required"
	InstallAlreadyInstalled    = "linux-msvc is already installed"
	InstallAlreadyInstalledFmt = "%w (config %s)"
	InstallNoDestination       = "no destination given and no config file found"
	InstallLicenseNotAccepted  = "the Microsoft Visual Studio license was not accepted"
	InstallStepFailedFmt       = "%s: %w"
	InstallCreateDirFailedFmt  = "failed to create directory %s: %w"
	InstallStatFailedFmt       = "failed to check %s: %w"
	InstallFailedWriteFmt      = "failed to write %s: %w"
	InstallFailedReadFmt       = "failed to read %s: %w"
	InstallStepStartFmt        = "==> %s\n"
	InstallSkipCloneFmt        = "%s already holds a checkout; skipping clone\n"
	InstallAuxToolFailedFmt    = "Warning: could not install %s: %v\n"
	InstallAuxToolSkippedFmt   = "skipped because %s is not installed"
	InstallCrossFileChangedFmt = "Updating %s:\n"
	InstallDiffTruncatedFmt    = "... (truncated to %d lines)"

	// InstallStepCreateDirs names the directory creation step.
	InstallStepCreateDirs    = "create directories"
	InstallStepClone         = "clone repositories"
	InstallStepDownloadMsvc  = "download msvc"
	InstallStepInstallMsvc   = "install msvc"
	InstallStepConfigureWine = "configure wine"
	InstallStepAuxTools      = "install auxiliary tools"
	InstallStepCrossFiles    = "write cross files"
	InstallStepSaveConfig    = "save config"
	InstallStepRemovePrefix  = "remove wine prefix"
	InstallStepRemoveMsvc    = "remove msvc"
	InstallStepPullRepos     = "update repositories"

	// ResetUnknownResourceFmt reports an unsupported config reset argument.
	ResetUnknownResourceFmt = "unknown resource %q (expected all, wine_prefix or msvc)"

	// RemoveTargetFmt is printed in verbose mode for each deleted directory.
	RemoveTargetFmt       = "Removing %s directory: %s\n"
	RemoveTargetFailedFmt = "failed to remove %s (%s): %w"
	RemoveCheckFailedFmt  = "failed to check %s (%s): %w"
)
