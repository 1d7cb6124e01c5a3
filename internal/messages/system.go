package messages

// System messages for the cache, process runner, and install pipeline internals.
const (
	// CacheURLRequired indicates a fetch was requested without a URL.
	CacheURLRequired         = "download url is required"
	CacheDirRequired         = "cache directory is required"
	CacheInvalidURLFmt       = "invalid download url %q: %w"
	CacheNoFileNameFmt       = "cannot derive a file name from %q"
	CacheCheckCachedFileFmt  = "check cached file %s: %w"
	CacheCreateDirFmt        = "create cache dir %s: %w"
	CacheCreateTempFileFmt   = "create temp file: %w"
	CacheSyncTempFileFmt     = "sync temp file: %w"
	CacheCloseTempFileFmt    = "close temp file: %w"
	CacheMoveCachedFileFmt   = "move cached file into place: %w"
	CacheCreateRequestFmt    = "create request: %w"
	CacheUnexpectedStatusFmt = "unexpected status %s"
	CacheShortWriteFmt       = "short write: got %d of %d bytes"
	CacheFetchErrorFmt       = "download %s: %v"
	CacheDownloadingFmt      = "Downloading %s...\n"
	CacheOpenLockFmt         = "open lock %s: %w"
	CacheLockFmt             = "lock %s: %w"
	CacheLockTimeoutFmt      = "timed out waiting for lock after %s"

	// RunnerCommandRequired indicates a command without an executable name.
	RunnerCommandRequired = "command name is required"
	RunnerStartFailedFmt  = "start %s: %w"
	ToolErrorFmt          = "%s exited with status %d"
	ToolErrorStderrFmt    = "%s exited with status %d: %s"

	WrapperToolMissingFmt    = "%s not found at %s; run `linux-msvc install` or `linux-msvc config reset msvc`"
	WrapperPrefixMissingFmt  = "wine prefix could not be resolved: %w"
	EnvOverlayConfigRequired = "config is required to build the environment"
)
