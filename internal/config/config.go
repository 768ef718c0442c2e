package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/lcv/internal/constants"
	"github.com/Paintersrp/lcv/internal/display"
)

type LogConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file"   json:"file"`
}

type Config struct {
	Repository  string    `yaml:"repository"    json:"repository"`
	APIBase     string    `yaml:"api_base"      json:"api_base"`
	Theme       string    `yaml:"theme"         json:"theme"`
	Concurrency int       `yaml:"concurrency"   json:"concurrency"`
	CacheSizeMB int64     `yaml:"cache_size_mb" json:"cache_size_mb"`
	Log         LogConfig `yaml:"log"           json:"log"`

	path string `yaml:"-"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func Load(home string) (*Config, error) {
	return LoadFile(GetConfigPath(home))
}

// LoadFile reads the config at path. The log file defaults to a sibling of
// the config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) != 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.path = path
	cfg.ensureDefaults(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.syncViper()
	return cfg, nil
}

func (cfg *Config) ensureDefaults(dir string) {
	cfg.Repository = strings.TrimSpace(cfg.Repository)
	if cfg.Repository == "" {
		cfg.Repository = constants.DefaultRepository
	}
	cfg.APIBase = strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")
	if cfg.APIBase == "" {
		cfg.APIBase = constants.DefaultAPIBase
	}
	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = string(display.Light)
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = constants.DefaultConcurrency
	}
	if cfg.CacheSizeMB == 0 {
		cfg.CacheSizeMB = constants.DefaultCacheSizeMB
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = constants.DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Log.File == "" && dir != "" {
		cfg.Log.File = filepath.Join(dir, constants.LogFile)
	}
}

func (cfg *Config) Validate() error {
	if err := ValidateRepository(cfg.Repository); err != nil {
		return err
	}
	if _, err := display.ParseTheme(cfg.Theme); err != nil {
		return err
	}
	if cfg.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", cfg.Concurrency)
	}
	if cfg.CacheSizeMB < 1 {
		return fmt.Errorf("cache_size_mb must be at least 1, got %d", cfg.CacheSizeMB)
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %q. Please choose from 'debug', 'info', 'warn', or 'error'.", cfg.Log.Level)
	}
	return nil
}

// ValidateRepository checks the owner/name form.
func ValidateRepository(repo string) error {
	parts := strings.Split(strings.Trim(repo, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("invalid repository: %q. Expected the form owner/name.", repo)
	}
	return nil
}

// syncViper registers the file values as viper defaults, so flags bound with
// viper.BindPFlag still take precedence when set.
func (cfg *Config) syncViper() {
	viper.SetDefault("repository", cfg.Repository)
	viper.SetDefault("api_base", cfg.APIBase)
	viper.SetDefault("theme", cfg.Theme)
	viper.SetDefault("concurrency", cfg.Concurrency)
	viper.SetDefault("cache_size_mb", cfg.CacheSizeMB)
	viper.SetDefault("log_level", cfg.Log.Level)
}

// ApplyOverrides copies flag-provided viper values back into cfg and
// validates the result.
func (cfg *Config) ApplyOverrides() error {
	if repo := strings.TrimSpace(viper.GetString("repository")); repo != "" {
		cfg.Repository = repo
	}
	if level := strings.TrimSpace(viper.GetString("log_level")); level != "" {
		cfg.Log.Level = level
	}
	return cfg.Validate()
}

// ThemeValue returns the persisted theme.
func (cfg *Config) ThemeValue() display.Theme {
	t, err := display.ParseTheme(cfg.Theme)
	if err != nil {
		return display.Light
	}
	return t
}

// SetTheme persists theme.
func (cfg *Config) SetTheme(theme display.Theme) error {
	if _, err := display.ParseTheme(string(theme)); err != nil {
		return err
	}
	cfg.Theme = theme.String()
	viper.Set("theme", cfg.Theme)
	return cfg.Save()
}

// ToggleTheme flips and persists the theme, returning the new value.
func (cfg *Config) ToggleTheme() (display.Theme, error) {
	next := cfg.ThemeValue().Toggle()
	if err := cfg.SetTheme(next); err != nil {
		return cfg.ThemeValue(), err
	}
	return next, nil
}

// Reload re-reads the file the config was loaded from. Flag overrides
// still win over the new file values.
func (cfg *Config) Reload() error {
	if cfg.path == "" {
		return fmt.Errorf("config has no backing file")
	}

	data, err := os.ReadFile(cfg.path)
	if err != nil {
		return err
	}

	fresh := &Config{}
	if err := yaml.Unmarshal(data, fresh); err != nil {
		return fmt.Errorf("parse %s: %w", cfg.path, err)
	}
	fresh.path = cfg.path
	fresh.ensureDefaults(filepath.Dir(cfg.path))
	if err := fresh.Validate(); err != nil {
		return err
	}
	fresh.syncViper()
	if err := fresh.ApplyOverrides(); err != nil {
		return err
	}

	*cfg = *fresh
	return nil
}

// Path returns the file backing the config.
func (cfg *Config) Path() string {
	return cfg.path
}

// Save writes the theme into the config file. Every other key is left as
// the file has it, so defaults and flag overrides never reach the disk.
func (cfg *Config) Save() error {
	if _, err := display.ParseTheme(cfg.Theme); err != nil {
		return err
	}
	if cfg.path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		cfg.path = GetConfigPath(home)
	}

	data, err := os.ReadFile(cfg.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	var doc yaml.Node
	if len(bytes.TrimSpace(data)) != 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", cfg.path, err)
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: top level is not a mapping", cfg.path)
	}
	setString(root, "theme", cfg.Theme)

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(cfg.path, out, 0o644)
}

func setString(m *yaml.Node, key, value string) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			v := m.Content[i+1]
			v.Kind = yaml.ScalarNode
			v.Tag = "!!str"
			v.Value = value
			v.Style = 0
			v.Content = nil
			return
		}
	}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
	)
}
