package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/linux-msvc/internal/fsutil"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

// ErrNotFound reports that no config file exists at the expected path.
var ErrNotFound = errors.New(messages.ConfigNotFound)

// ErrConfigInvalid wraps syntax and validation failures so callers can tell
// a broken file apart from a missing one.
var ErrConfigInvalid = errors.New(messages.ConfigInvalid)

// Load reads and validates the config file at path.
// A missing file yields an error matching ErrNotFound.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes config TOML. Keys missing from data keep their defaults;
// unknown keys are rejected. source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigInvalidConfigFmt, ErrConfigInvalid, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	return &cfg, nil
}

// Save writes the full key set to path, creating parent directories and
// replacing any previous content.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf(messages.ConfigRequired)
	}
	if err := cfg.Validate(path); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf(messages.ConfigEncodeFailedFmt, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf(messages.ConfigCreateDirFailedFmt, filepath.Dir(path), err)
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.ConfigWriteFailedFmt, path, err)
	}
	return nil
}

// Exists reports whether a config file is present at path.
func Exists(path string) (bool, error) {
	ok, err := fsutil.Exists(path)
	if err != nil {
		return false, fmt.Errorf(messages.ConfigStatFailedFmt, path, err)
	}
	return ok, nil
}
