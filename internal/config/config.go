// Package config owns the persisted linux-msvc configuration and the
// filesystem layout derived from it.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

// DefaultDestination is the install destination used when none is given.
const DefaultDestination = "~/msvc_linux"

// Config is the persisted installation record.
type Config struct {
	Destination         string `toml:"destination"`
	NoWinePrefix        bool   `toml:"no_wine_prefix"`
	CreateConfigFile    bool   `toml:"create_config_file"`
	CopyCrossFiles      bool   `toml:"copy_cross_files"`
	UseCache            bool   `toml:"use_cache"`
	UseSystemWinetricks bool   `toml:"use_system_winetricks"`
}

// Default returns a Config populated with the default of every field.
func Default() Config {
	return Config{
		Destination:         DefaultDestination,
		NoWinePrefix:        false,
		CreateConfigFile:    true,
		CopyCrossFiles:      true,
		UseCache:            true,
		UseSystemWinetricks: false,
	}
}

// ResolveDestination expands a leading ~ and makes raw absolute.
func ResolveDestination(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf(messages.ConfigDestinationRequired)
	}
	expanded, err := homedir.Expand(raw)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandDestinationFmt, raw, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandDestinationFmt, raw, err)
	}
	return abs, nil
}

// DestinationDir returns the expanded absolute install destination.
func (c *Config) DestinationDir() (string, error) {
	return ResolveDestination(c.Destination)
}

// Layout returns the directory layout under the install destination.
func (c *Config) Layout() (Layout, error) {
	dest, err := c.DestinationDir()
	if err != nil {
		return Layout{}, err
	}
	return NewLayout(dest), nil
}

// WinePrefix returns the wine prefix the installation uses. When the prefix
// override is disabled it falls back to $WINEPREFIX, then ~/.wine.
func (c *Config) WinePrefix(getenv func(string) string) (string, error) {
	if !c.NoWinePrefix {
		layout, err := c.Layout()
		if err != nil {
			return "", err
		}
		return layout.WinePrefix, nil
	}
	if getenv != nil {
		if prefix := strings.TrimSpace(getenv("WINEPREFIX")); prefix != "" {
			return prefix, nil
		}
	}
	return ResolveDestination("~/.wine")
}
