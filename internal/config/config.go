// Package config handles loading the prefixgender configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	perrors "github.com/NikitaCOEUR/prefixgender/internal/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

// DefaultVerboseFormat renders the per-customer progress line
const DefaultVerboseFormat = `Customer #{{ .ID }}, {{ .FirstName }} {{ .LastName }}... `

// Config represents the prefixgender configuration
type Config struct {
	Database        string `koanf:"database"`
	EntityType      string `koanf:"entity_type"`
	GenderAttribute string `koanf:"gender_attribute"`
	LogLevel        string `koanf:"log_level"`
	VerboseFormat   string `koanf:"verbose_format"`
}

// Default returns the configuration used when no file overrides it
func Default() *Config {
	return &Config{
		Database:        DefaultDatabasePath(),
		EntityType:      "customer",
		GenderAttribute: "gender",
		LogLevel:        "warn",
		VerboseFormat:   DefaultVerboseFormat,
	}
}

// Loader handles loading and parsing configuration files
type Loader struct {
	k *koanf.Koanf
}

// New creates a new config loader
func New() *Loader {
	return &Loader{k: koanf.New(".")}
}

// Load reads the file at path on top of the defaults. An empty path looks
// for a config file in the user config directory and silently falls back to
// defaults when there is none.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = FindConfigFile()
		if path == "" {
			return cfg, nil
		}
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, perrors.NewConfigurationError(path, "unsupported config file", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perrors.NewConfigurationError(path, "failed to read config", err)
	}

	if err := l.k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, perrors.NewConfigurationError(path, "failed to parse config", err)
	}

	if err := l.k.Unmarshal("", cfg); err != nil {
		return nil, perrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, perrors.NewConfigurationError(path, "invalid config", err)
	}

	return cfg, nil
}

// Validate checks that required keys are non-empty
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Database) == "" {
		missing = append(missing, "database")
	}
	if strings.TrimSpace(c.EntityType) == "" {
		missing = append(missing, "entity_type")
	}
	if strings.TrimSpace(c.GenderAttribute) == "" {
		missing = append(missing, "gender_attribute")
	}
	if len(missing) > 0 {
		return perrors.NewValidationError(missing[0], "missing required keys: "+strings.Join(missing, ", "), nil)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// ConfigDir returns the prefixgender directory under XDG_CONFIG_HOME
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "prefixgender")
}

// FindConfigFile returns the first supported config file in ConfigDir, or ""
func FindConfigFile() string {
	dir := ConfigDir()
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultDatabasePath returns the SQLite file under XDG_DATA_HOME
func DefaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "prefixgender", "customers.db")
}
