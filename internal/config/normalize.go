package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeInstall(); err != nil {
		return err
	}
	c.normalizeLayout()
	c.normalizeEnumeration()
	return c.normalizeLogging()
}

func (c *Config) normalizeInstall() error {
	roots := make(map[string][]string, len(c.Install.CandidateRoots))
	for goos, entries := range c.Install.CandidateRoots {
		key := strings.ToLower(strings.TrimSpace(goos))
		if key == "" {
			continue
		}
		expanded := make([]string, 0, len(entries))
		for _, entry := range entries {
			trimmed := strings.TrimSpace(entry)
			if trimmed == "" {
				continue
			}
			value, err := expandHome(trimmed)
			if err != nil {
				return fmt.Errorf("install.candidate_roots.%s: %w", key, err)
			}
			expanded = append(expanded, value)
		}
		roots[key] = append(roots[key], expanded...)
	}
	c.Install.CandidateRoots = roots

	c.Install.AppsSubpath = strings.Trim(strings.TrimSpace(c.Install.AppsSubpath), "/")
	c.Install.GameDirNames = dedupeTrimmed(c.Install.GameDirNames)

	var err error
	if c.Install.GamePath, err = expandPath(strings.TrimSpace(c.Install.GamePath)); err != nil {
		return fmt.Errorf("install.game_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLayout() {
	c.Layout.MasterDB = strings.TrimSpace(c.Layout.MasterDB)
	c.Layout.PersistentSubpath = strings.TrimSpace(c.Layout.PersistentSubpath)
	c.Layout.ExtractedSubpath = strings.TrimSpace(c.Layout.ExtractedSubpath)
}

func (c *Config) normalizeEnumeration() {
	c.Enumeration.Query = strings.TrimSpace(c.Enumeration.Query)
	c.Enumeration.NativeScheme = strings.TrimSpace(c.Enumeration.NativeScheme)
	c.Enumeration.Category = strings.TrimSpace(c.Enumeration.Category)
	c.Enumeration.FilePrefix = strings.TrimSpace(c.Enumeration.FilePrefix)
	c.Enumeration.FileExt = strings.TrimSpace(c.Enumeration.FileExt)
	if c.Enumeration.FileExt != "" && !strings.HasPrefix(c.Enumeration.FileExt, ".") {
		c.Enumeration.FileExt = "." + c.Enumeration.FileExt
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func dedupeTrimmed(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
