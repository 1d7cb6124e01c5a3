package messages

// Doctor messages for dependency, config, and resource checks.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check host dependencies, configuration, and installed resources"

	DoctorHealthCheckFmt = "Checking linux-msvc health (config %s)...\n"

	DoctorCheckNameDependencies = "Dependency"
	DoctorCheckNameConfig       = "Config"
	DoctorCheckNameResources    = "Resource"

	DoctorDependencyFoundFmt            = "%s found at %s"
	DoctorDependencyMissingFmt          = "%s is not installed"
	DoctorDependencyMissingRecommendFmt = "Install %s with your package manager and make sure it is on PATH."

	DoctorConfigMissingFmt       = "No config file at %s"
	DoctorConfigMissingRecommend = "Run `linux-msvc install` to create an installation."
	DoctorConfigLoadFailedFmt    = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend    = "Fix the file by hand or delete it and rerun `linux-msvc install`."
	DoctorConfigLoadedFmt        = "Configuration loaded from %s"

	DoctorResourcePresentFmt           = "%s present: %s"
	DoctorResourceMissingFmt           = "%s missing: %s"
	DoctorResourceNotDirFmt            = "%s exists but is not a directory: %s"
	DoctorResourceStatFailedFmt        = "Failed to check %s: %v"
	DoctorResourceResetRecommendFmt    = "Run `linux-msvc config reset %s` to restore it."
	DoctorResourceOptionalRecommendFmt = "Run `linux-msvc config reset all` if you need %s."
	DoctorResourceNotDirRecommend      = "Move the file out of the way, then run `linux-msvc config reset all`."

	DoctorFailureSummary = "Some checks failed or raised warnings. Address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "All checks passed. linux-msvc is ready."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       > "
	DoctorRecommendationIndent = "         "
)
