package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "linux-msvc"
	// RootShort is the short description for the root command.
	RootShort       = "Use the MSVC toolchain on Linux through wine"
	RootLong        = "linux-msvc installs MSVC, a wine prefix and the Windows package managers into one destination\nand launches the compiler, linker and build tools with the right environment."
	RootVersionFlag = "Print version and exit"
	RootVerboseFlag = "Print more information"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	HostUnsupportedFmt = "This tool is not meant to be run on %s; a POSIX host is required."

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Install MSVC, the wine prefix and the auxiliary tools"

	InstallFlagDestination         = "Where to install linux-msvc"
	InstallFlagNoWinePrefix        = "Don't override the wine prefix with <destination>/.wineenv"
	InstallFlagNoConfigFile        = "Don't create a config file. The config file saves the paths and options."
	InstallFlagNoCrossFiles        = "Don't create cross files. The cross files are used by meson to cross compile."
	InstallFlagNoCache             = "Don't use the cache. This will cause everything to be downloaded again."
	InstallFlagUseSystemWinetricks = "Use the winetricks installed on the host instead of downloading the latest one"
	InstallFlagAcceptLicense       = "Accept the Microsoft Visual Studio license without prompting"
	InstallFlagNoAuxTools          = "Skip installing PowerShell, Chocolatey and vcpkg"

	InstallAlreadyInstalledHint = "If you want to reinstall linux-msvc, please remove it first.\nTo update use the update command."
	InstallFinished             = "Finished installing. Use `linux-msvc shell` or the cl/link/meson commands to work with the toolchain."
	InstallLicensePrompt        = "The MSVC download requires accepting the Microsoft Visual Studio license. Accept it?"
	InstallLicenseRequiresFlag  = "accepting the MSVC license requires an interactive terminal; re-run with --accept_license"

	// RemoveUse is the remove command name.
	RemoveUse   = "remove"
	RemoveShort = "Remove or uninstall linux-msvc"

	RemoveFlagDestination    = "Where linux-msvc was installed. Only used when no config file is present."
	RemoveFlagDeleteCache    = "Delete the cache. Everything is downloaded again on the next install."
	RemoveFlagKeepWinePrefix = "Keep the wine prefix and all settings inside it"
	RemoveFlagKeepMSVC       = "Keep the msvc installation and the msvc-wine repository"
	RemoveFlagKeepCrossFiles = "Keep the meson cross files"
	RemoveFlagDeleteMainRepo = "Delete the clone of the main repository"
	RemoveFlagKeepVcpkg      = "Keep the vcpkg installation"
	RemoveNoDestinationHint  = "No config file exists and no destination was given.\nPlease specify a destination with --destination."
	RemoveFinished           = "Finished removing linux-msvc."

	// UpdateUse is the update command name.
	UpdateUse      = "update"
	UpdateShort    = "Update msvc-wine and re-run the MSVC download and install"
	UpdateFinished = "Finished updating."

	// ConfigUse is the config command name.
	ConfigUse        = "config"
	ConfigShort      = "Inspect or reset parts of the installation"
	ConfigResetUse   = "reset {all|wine_prefix|msvc}"
	ConfigResetShort = "Delete and reinstall one part of the installation"
	ConfigShowUse    = "show"
	ConfigShowShort  = "Print the current configuration"
	ConfigShowLine   = "%s = %v\n"
	ConfigResetDone  = "Finished resetting %s.\n"

	NotInstalled = "linux-msvc is not installed (no config file found); run `linux-msvc install` first"

	// ShellUse is the shell command name.
	ShellUse          = "shell"
	ShellShort        = "Launch a login shell with the MSVC environment"
	ShellFlagType     = "The shell to launch (defaults to $SHELL)"
	ShellNotFoundFmt  = "the shell %s is not installed; install it first or select a different shell with --type"
	ShellLaunchingFmt = "launching a new shell of type: %s\n"

	MesonUse                 = "meson [--add_cross_file] -- <args>"
	MesonShort               = "Run meson with the MSVC environment"
	MesonCrossFileMissingFmt = "cross file %s does not exist; re-run install without --no_cross_files"
	WineUse                  = "wine -- <args>"
	WineShort                = "Run wine inside the linux-msvc prefix"
	PwshUse                  = "pwsh -- <args>"
	PwshShort                = "Run PowerShell inside the linux-msvc prefix"
	ClUse                    = "cl -- <args>"
	ClShort                  = "Run the MSVC compiler"
	LinkUse                  = "link -- <args>"
	LinkShort                = "Run the MSVC linker"
	PassArgsInvalidBoolFmt   = "invalid value for %s: %q"

	// DependencyMissingFmt reports one missing host dependency.
	DependencyMissingFmt     = "Error: %s is not installed.\n"
	DependencyMissingSummary = "wine, winetricks, git, msitools, winbind and python3 are required. Install them and try again."
	DependenciesInstalled    = "Dependencies are installed."
	ConfigFileExists         = "Config file exists."
	ConfigFileMissing        = "No config file exists yet."
)
