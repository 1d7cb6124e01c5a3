package config

import (
	"fmt"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

// FieldType classifies the kind of value a config field accepts.
type FieldType string

const (
	// FieldBool accepts true or false.
	FieldBool FieldType = "bool"
	// FieldPath accepts a filesystem path; a leading ~ is expanded on use.
	FieldPath FieldType = "path"
)

// Config keys as they appear in config.toml.
const (
	KeyDestination         = "destination"
	KeyNoWinePrefix        = "no_wine_prefix"
	KeyCreateConfigFile    = "create_config_file"
	KeyCopyCrossFiles      = "copy_cross_files"
	KeyUseCache            = "use_cache"
	KeyUseSystemWinetricks = "use_system_winetricks"
)

// FieldDef describes a single config field and its default.
type FieldDef struct {
	Key      string
	Type     FieldType
	Required bool
	Default  any
}

// fields is the canonical ordered registry of config fields.
// Order matches the on-disk order produced by Save.
var fields = []FieldDef{
	{Key: KeyDestination, Type: FieldPath, Required: true, Default: DefaultDestination},
	{Key: KeyNoWinePrefix, Type: FieldBool, Default: false},
	{Key: KeyCreateConfigFile, Type: FieldBool, Default: true},
	{Key: KeyCopyCrossFiles, Type: FieldBool, Default: true},
	{Key: KeyUseCache, Type: FieldBool, Default: true},
	{Key: KeyUseSystemWinetricks, Type: FieldBool, Default: false},
}

// Fields returns a copy of the field registry.
func Fields() []FieldDef {
	out := make([]FieldDef, len(fields))
	copy(out, fields)
	return out
}

// LookupField returns the field definition for key.
func LookupField(key string) (FieldDef, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Get returns the value stored under key, or def when the key is unknown or
// the value is unset. It never fails.
func (c *Config) Get(key string, def any) any {
	if c == nil {
		return def
	}
	switch key {
	case KeyDestination:
		if c.Destination == "" {
			return def
		}
		return c.Destination
	case KeyNoWinePrefix:
		return c.NoWinePrefix
	case KeyCreateConfigFile:
		return c.CreateConfigFile
	case KeyCopyCrossFiles:
		return c.CopyCrossFiles
	case KeyUseCache:
		return c.UseCache
	case KeyUseSystemWinetricks:
		return c.UseSystemWinetricks
	default:
		return def
	}
}

// Set stores value under key. The value must match the field type.
func (c *Config) Set(key string, value any) error {
	def, ok := LookupField(key)
	if !ok {
		return fmt.Errorf(messages.ConfigUnknownKeyFmt, key)
	}
	switch def.Type {
	case FieldPath:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf(messages.ConfigFieldTypeFmt, key, def.Type, value)
		}
		c.Destination = s
		return nil
	case FieldBool:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf(messages.ConfigFieldTypeFmt, key, def.Type, value)
		}
		switch key {
		case KeyNoWinePrefix:
			c.NoWinePrefix = b
		case KeyCreateConfigFile:
			c.CreateConfigFile = b
		case KeyCopyCrossFiles:
			c.CopyCrossFiles = b
		case KeyUseCache:
			c.UseCache = b
		case KeyUseSystemWinetricks:
			c.UseSystemWinetricks = b
		}
		return nil
	}
	return fmt.Errorf(messages.ConfigUnknownKeyFmt, key)
}
