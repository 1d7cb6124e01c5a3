package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

// Validate ensures the config is complete. path is used in error messages.
func (c *Config) Validate(path string) error {
	if strings.TrimSpace(c.Destination) == "" {
		return fmt.Errorf(messages.ConfigDestinationRequiredFmt, path)
	}
	return nil
}
