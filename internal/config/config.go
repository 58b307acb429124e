// Package config loads per-project mvcpath settings from .mvcpath.yaml in
// the webroot, a .env file next to it, and MVCPATH_* environment variables.
// Environment variables win over .env, which wins over the YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the per-project settings file, looked up in the webroot.
const FileName = ".mvcpath.yaml"

const (
	defaultAddr     = "127.0.0.1:7878"
	defaultLogLevel = "info"
)

type Config struct {
	// Webroot pins the project root instead of detecting it from protected/.
	Webroot string `yaml:"webroot"`
	// AutoCreateView creates a missing view file when resolving it from a
	// controller action.
	AutoCreateView   bool     `yaml:"auto_create_view"`
	SourceExtensions []string `yaml:"source_extensions"`
	LogLevel         string   `yaml:"log_level"`
	Addr             string   `yaml:"addr"`
}

// Load reads the settings for the project rooted at dir. A missing YAML or
// .env file is not an error.
func Load(dir string) (*Config, error) {
	var cfg Config

	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Join(dir, FileName), err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read %s: %w", filepath.Join(dir, FileName), err)
	}

	dotenv, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil {
		dotenv = map[string]string{}
	}
	env := func(key string) string {
		return firstNonEmpty(strings.TrimSpace(os.Getenv(key)), strings.TrimSpace(dotenv[key]))
	}

	cfg.Webroot = firstNonEmpty(env("MVCPATH_WEBROOT"), cfg.Webroot)
	cfg.LogLevel = firstNonEmpty(env("MVCPATH_LOG_LEVEL"), cfg.LogLevel, defaultLogLevel)
	cfg.Addr = firstNonEmpty(env("MVCPATH_ADDR"), cfg.Addr, defaultAddr)
	if raw := env("MVCPATH_AUTO_CREATE_VIEW"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.AutoCreateView = v
		}
	}
	if exts := env("MVCPATH_SOURCE_EXTENSIONS"); exts != "" {
		cfg.SourceExtensions = strings.Split(exts, ",")
	}
	return &cfg, nil
}

// Preferences answers per-project preference queries by reloading the
// project's settings on every call.
type Preferences struct {
	// AutoCreate turns view auto-creation on for every project, whatever its
	// own settings say.
	AutoCreate bool
}

// AutoCreateView reports whether missing views should be created for the
// project rooted at webroot. Unreadable settings count as disabled.
func (p Preferences) AutoCreateView(webroot string) bool {
	if webroot == "" {
		return false
	}
	if p.AutoCreate {
		return true
	}
	cfg, err := Load(filepath.FromSlash(webroot))
	if err != nil {
		return false
	}
	return cfg.AutoCreateView
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
