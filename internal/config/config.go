package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/cidr-tools/cidrgrep/internal/errors"
	"github.com/cidr-tools/cidrgrep/internal/logging"
)

// Defaults holds the user's configured defaults. Zero values mean
// "not set": explicit flags always win over the file.
type Defaults struct {
	Field int    `toml:"field"`
	Color string `toml:"color"`
}

// DefaultPath returns the conventional defaults-file location:
// $XDG_CONFIG_HOME/cidrgrep/config.toml, falling back to
// ~/.config/cidrgrep/config.toml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "cidrgrep", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cidrgrep", "config.toml")
}

// Load reads and validates a defaults file. The file must exist; use
// LoadDefault for the optional conventional location.
func Load(path string) (*Defaults, error) {
	var d Defaults
	if _, err := toml.DecodeFile(path, &d); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.IOError(path, err)
		}
		return nil, errors.Wrap(errors.ExitUsage, fmt.Sprintf("invalid config file %s", path), err)
	}

	if err := d.validate(); err != nil {
		return nil, errors.Wrap(errors.ExitUsage, fmt.Sprintf("invalid config file %s", path), err)
	}

	logging.Debug("loaded defaults file", "path", path, "field", d.Field, "color", d.Color)
	return &d, nil
}

// LoadDefault loads DefaultPath if it exists. A missing file is not an
// error; anything else is.
func LoadDefault() (*Defaults, error) {
	path := DefaultPath()
	if path == "" {
		return &Defaults{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Defaults{}, nil
	}
	return Load(path)
}

func (d *Defaults) validate() error {
	if d.Field < 0 {
		return fmt.Errorf("field must be >= 1, got %d", d.Field)
	}
	switch d.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", d.Color)
	}
	return nil
}
