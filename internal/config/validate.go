package config

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
)

// limitClause matches a LIMIT keyword; row_limit appends the only one.
var limitClause = regexp.MustCompile(`(?i)\blimit\b`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInstall(); err != nil {
		return err
	}
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validateEnumeration(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateInstall() error {
	if c.Install.AppsSubpath == "" {
		return errors.New("install.apps_subpath must be set")
	}
	if len(c.Install.GameDirNames) == 0 {
		return errors.New("install.game_dir_names must contain at least one name")
	}
	return nil
}

func (c *Config) validateLayout() error {
	fields := []struct {
		key   string
		value string
	}{
		{"layout.master_db", c.Layout.MasterDB},
		{"layout.persistent_subpath", c.Layout.PersistentSubpath},
		{"layout.extracted_subpath", c.Layout.ExtractedSubpath},
	}
	for _, field := range fields {
		if field.value == "" {
			return fmt.Errorf("%s must be set", field.key)
		}
		if path.IsAbs(field.value) || filepath.IsAbs(field.value) {
			return fmt.Errorf("%s must be relative, got %q", field.key, field.value)
		}
	}
	return nil
}

func (c *Config) validateEnumeration() error {
	if c.Enumeration.Query == "" {
		return errors.New("enumeration.query must be set")
	}
	if limitClause.MatchString(c.Enumeration.Query) {
		return errors.New("enumeration.query must not contain LIMIT; set enumeration.row_limit instead")
	}
	if c.Enumeration.RowLimit <= 0 {
		return errors.New("enumeration.row_limit must be positive")
	}
	if c.Enumeration.NativeScheme == "" {
		return errors.New("enumeration.native_scheme must be set")
	}
	if c.Enumeration.FilePrefix == "" {
		return errors.New("enumeration.file_prefix must be set")
	}
	if c.Enumeration.FileExt == "" {
		return errors.New("enumeration.file_ext must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
