package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

// AppName is the per-user configuration directory name.
const AppName = "msvc_linux"

// EnvConfigDir overrides the application config directory when set.
const EnvConfigDir = "LINUX_MSVC_CONFIG_DIR"

// Paths holds resolved paths for the per-user config files.
type Paths struct {
	ConfigDir  string
	ConfigPath string
	EnvPath    string
}

// Layout holds the directory resources under an install destination.
type Layout struct {
	Root         string
	Msvc         string
	MsvcBin      string
	MsvcWineRepo string
	WinePrefix   string
	Vcpkg        string
	Cache        string
	CrossFiles   string
	MainRepo     string
}

// NewLayout returns the layout rooted at dest.
func NewLayout(dest string) Layout {
	msvc := filepath.Join(dest, "msvc")
	return Layout{
		Root:         dest,
		Msvc:         msvc,
		MsvcBin:      filepath.Join(msvc, "bin", "x64"),
		MsvcWineRepo: filepath.Join(dest, "msvc-wine-repo"),
		WinePrefix:   filepath.Join(dest, ".wineenv"),
		Vcpkg:        filepath.Join(dest, "vcpkg"),
		Cache:        filepath.Join(dest, "cache"),
		CrossFiles:   filepath.Join(dest, "cross_files"),
		MainRepo:     filepath.Join(dest, "main-repo"),
	}
}

// PathsFor returns the config paths inside configDir.
func PathsFor(configDir string) Paths {
	return Paths{
		ConfigDir:  configDir,
		ConfigPath: filepath.Join(configDir, "config.toml"),
		EnvPath:    filepath.Join(configDir, ".env"),
	}
}

// DefaultPaths resolves the config paths for the current user.
func DefaultPaths(getenv func(string) string) (Paths, error) {
	home, err := homedir.Dir()
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	dir, err := AppConfigDir(getenv, runtime.GOOS, home)
	if err != nil {
		return Paths{}, err
	}
	return PathsFor(dir), nil
}

// ConfigsDir returns the user's configuration root: $XDG_CONFIG_HOME when set,
// ~/Library/Preferences on darwin, ~/.config elsewhere.
func ConfigsDir(getenv func(string) string, goos string, home string) (string, error) {
	if goos == "windows" {
		return "", fmt.Errorf(messages.ConfigPosixOnlyFmt, goos)
	}
	if xdg := strings.TrimSpace(getenv("XDG_CONFIG_HOME")); xdg != "" {
		return xdg, nil
	}
	if goos == "darwin" {
		return filepath.Join(home, "Library", "Preferences"), nil
	}
	return filepath.Join(home, ".config"), nil
}

// AppConfigDir returns the linux-msvc config directory. LINUX_MSVC_CONFIG_DIR
// takes precedence over the platform default.
func AppConfigDir(getenv func(string) string, goos string, home string) (string, error) {
	if override := strings.TrimSpace(getenv(EnvConfigDir)); override != "" {
		return override, nil
	}
	root, err := ConfigsDir(getenv, goos, home)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, AppName), nil
}
