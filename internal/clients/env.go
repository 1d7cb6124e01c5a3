package clients

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/conn-castle/linux-msvc/internal/config"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

// Wine environment variables the overlay manages.
const (
	EnvPath       = "PATH"
	EnvWinePrefix = "WINEPREFIX"
	EnvWineArch   = "WINEARCH"
	EnvWineDebug  = "WINEDEBUG"
)

// Overlay is an immutable set of environment changes. Every method returns a
// new value; the receiver and the process environment are never modified.
type Overlay struct {
	pathPrefix []string
	vars       map[string]string
}

// NewOverlay returns an empty overlay.
func NewOverlay() Overlay {
	return Overlay{}
}

// ForConfig computes the overlay every wrapped tool and install step runs with.
func ForConfig(cfg *config.Config, verbose bool) (Overlay, error) {
	if cfg == nil {
		return Overlay{}, errors.New(messages.EnvOverlayConfigRequired)
	}
	layout, err := cfg.Layout()
	if err != nil {
		return Overlay{}, err
	}
	o := NewOverlay().
		WithPathPrefix(layout.MsvcBin, filepath.Join(layout.MsvcWineRepo, "wrappers")).
		With(EnvWineArch, "win64")
	if !cfg.NoWinePrefix {
		o = o.With(EnvWinePrefix, layout.WinePrefix)
	}
	if !verbose {
		o = o.With(EnvWineDebug, "-all")
	}
	return o, nil
}

// WithPathPrefix returns a copy whose PATH prefix ends with dirs.
func (o Overlay) WithPathPrefix(dirs ...string) Overlay {
	next := o.clone()
	next.pathPrefix = append(next.pathPrefix, dirs...)
	return next
}

// With returns a copy that sets key to value.
func (o Overlay) With(key string, value string) Overlay {
	next := o.clone()
	if next.vars == nil {
		next.vars = make(map[string]string)
	}
	next.vars[key] = value
	return next
}

// Merge returns o followed by other: other's PATH entries are searched first
// and its variables win on conflict.
func (o Overlay) Merge(other Overlay) Overlay {
	next := other.clone()
	next.pathPrefix = append(next.pathPrefix, o.pathPrefix...)
	for key, value := range o.vars {
		if _, ok := next.vars[key]; ok {
			continue
		}
		if next.vars == nil {
			next.vars = make(map[string]string)
		}
		next.vars[key] = value
	}
	return next
}

// Get returns the value the overlay sets for key.
func (o Overlay) Get(key string) (string, bool) {
	value, ok := o.vars[key]
	return value, ok
}

// PathPrefix returns the directories prepended to PATH, in search order.
func (o Overlay) PathPrefix() []string {
	return append([]string(nil), o.pathPrefix...)
}

// Apply returns a new env slice with the overlay applied to base. Existing
// PATH entries that resolve to a prefix directory are dropped so repeated
// application does not grow PATH.
func (o Overlay) Apply(base []string) []string {
	env := append([]string(nil), base...)
	if len(o.pathPrefix) > 0 {
		current, _ := GetEnv(env, EnvPath)
		env = SetEnv(env, EnvPath, prependPath(o.pathPrefix, current))
	}
	keys := make([]string, 0, len(o.vars))
	for key := range o.vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		env = SetEnv(env, key, o.vars[key])
	}
	return env
}

func (o Overlay) clone() Overlay {
	next := Overlay{pathPrefix: append([]string(nil), o.pathPrefix...)}
	if len(o.vars) > 0 {
		next.vars = make(map[string]string, len(o.vars))
		for key, value := range o.vars {
			next.vars[key] = value
		}
	}
	return next
}

func prependPath(prefix []string, current string) string {
	entries := append([]string(nil), prefix...)
	for _, entry := range strings.Split(current, string(os.PathListSeparator)) {
		if entry == "" || containsPath(prefix, entry) {
			continue
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, string(os.PathListSeparator))
}

func containsPath(dirs []string, candidate string) bool {
	for _, dir := range dirs {
		if SamePath(dir, candidate) {
			return true
		}
	}
	return false
}

// GetEnv returns the value for the key from an env slice.
func GetEnv(env []string, key string) (string, bool) {
	for _, entry := range env {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}

// SetEnv sets or appends a key=value entry in an env slice.
func SetEnv(env []string, key string, value string) []string {
	entry := fmt.Sprintf("%s=%s", key, value)
	for i, existing := range env {
		if strings.HasPrefix(existing, key+"=") {
			env[i] = entry
			return env
		}
	}
	return append(env, entry)
}

// FillMissing adds entries from additions whose keys are absent from env.
// Empty values are skipped.
func FillMissing(env []string, additions map[string]string) []string {
	keys := make([]string, 0, len(additions))
	for key := range additions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := additions[key]
		if value == "" {
			continue
		}
		if _, ok := GetEnv(env, key); ok {
			continue
		}
		env = SetEnv(env, key, value)
	}
	return env
}
