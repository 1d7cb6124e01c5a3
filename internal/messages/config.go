package messages

// Config messages for configuration loading and validation.
const (
	// ConfigNotFound is the text of the config.ErrNotFound sentinel.
	ConfigNotFound               = "config file not found"
	ConfigInvalid                = "config invalid"
	ConfigRequired               = "config is required"
	ConfigReadFailedFmt          = "failed to read config %s: %w"
	ConfigInvalidConfigFmt       = "invalid config %s: %w"
	ConfigEncodeFailedFmt        = "failed to encode config: %w"
	ConfigCreateDirFailedFmt     = "failed to create config directory %s: %w"
	ConfigWriteFailedFmt         = "failed to write config %s: %w"
	ConfigStatFailedFmt          = "failed to stat config %s: %w"
	ConfigDestinationRequired    = "destination is required"
	ConfigDestinationRequiredFmt = "%s: destination is required"
	ConfigExpandDestinationFmt   = "failed to resolve destination %q: %w"
	ConfigResolveHomeFmt         = "failed to resolve home directory: %w"
	ConfigPosixOnlyFmt           = "config directories are only supported on POSIX hosts (got %s)"
	ConfigUnknownKeyFmt          = "unknown config key %q"
	ConfigFieldTypeFmt           = "config key %q expects a %s value, got %v"

	// EnvfileExpectedKeyValue reports a line without KEY=VALUE form.
	EnvfileExpectedKeyValue        = "expected KEY=VALUE"
	EnvfileUnterminatedQuotedValue = "unterminated quoted value"
	EnvfileInvalidQuotedSuffix     = "unexpected content after quoted value"
	EnvfileLineErrorFmt            = "line %d: %w"
	EnvfileReadFailedFmt           = "failed to read env file: %w"
	EnvfileInvalidFmt              = "invalid env file %s: %w"
	EnvfileReadPathFailedFmt       = "failed to read env file %s: %w"
)
