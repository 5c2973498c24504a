package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the jiractx configuration. Values come from the
// optional config file, with environment variables taking precedence.
type Config struct {
	Domain   string `yaml:"domain"`              // e.g., "yourcompany.atlassian.net"
	Email    string `yaml:"email"`               // User email for API token
	APIToken string `yaml:"api_token,omitempty"` // Jira API token
	Project  string `yaml:"project,omitempty"`   // Project key for settings export

	// Defaults for the tickets command; overridable per invocation.
	JQL      string   `yaml:"jql,omitempty"`       // Default JQL query
	Fields   []string `yaml:"fields,omitempty"`    // Default fields to fetch
	PageSize int      `yaml:"page_size,omitempty"` // Search page size
}

const (
	// ConfigDirName is the name of the config directory
	ConfigDirName = ".jiractx"
	// ConfigFileName is the name of the config file
	ConfigFileName = "config.yaml"
	// ConfigFilePerms is the file permission for the config file (read/write for owner only)
	ConfigFilePerms = 0600
	// ConfigDirPerms is the directory permission for the config directory
	ConfigDirPerms = 0700

	// DefaultPageSize is the search page size used when none is configured
	DefaultPageSize = 100
)

// DefaultFields is the field set fetched when no --fields flag or
// config entry is present. The issue key always comes back separately.
var DefaultFields = []string{"summary", "creator", "created", "status", "priority", "parent"}

// GetConfigPath returns the full path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDirName, ConfigFileName), nil
}

// GetConfigDir returns the full path to the config directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDirName), nil
}

// Load builds the effective config: the config file at path (or the
// default location when path is empty) if one exists, overlaid with
// environment variables, then validated. A missing file is not an
// error as long as the environment provides the required values.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		defaultPath, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	fileCfg, err := LoadFromPath(path)
	switch {
	case err == nil:
		cfg = fileCfg
	case os.IsNotExist(err):
		// Env-only run
	default:
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadFromPath reads and parses the config file at a specific path.
// It does not apply environment overrides or defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// applyEnv overlays JIRA_* environment variables onto the config
func (c *Config) applyEnv() {
	if v := os.Getenv("JIRA_DOMAIN"); v != "" {
		c.Domain = v
	}
	if v := os.Getenv("JIRA_EMAIL"); v != "" {
		c.Email = v
	}
	if v := os.Getenv("JIRA_API_TOKEN"); v != "" {
		c.APIToken = v
	}
	if v := os.Getenv("JIRA_PROJECT_KEY"); v != "" {
		c.Project = v
	}
	if v := os.Getenv("JIRA_JQL"); v != "" {
		c.JQL = v
	}
	if v := os.Getenv("JIRA_FIELDS"); v != "" {
		fields := strings.Split(v, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		c.Fields = fields
	}
}

// applyDefaults fills in defaults for optional values
func (c *Config) applyDefaults() {
	if len(c.Fields) == 0 {
		c.Fields = append([]string(nil), DefaultFields...)
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
}

// Save writes the config to the default config file location
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("cannot save invalid config: %w", err)
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, ConfigDirPerms); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, ConfigFilePerms); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the values every command needs are present.
// The project key is only needed by the settings command and is
// checked there.
func (c *Config) Validate() error {
	if c.Domain == "" {
		return fmt.Errorf("domain is required (set JIRA_DOMAIN)")
	}
	if c.Email == "" {
		return fmt.Errorf("email is required (set JIRA_EMAIL)")
	}
	if c.APIToken == "" {
		return fmt.Errorf("api token is required (set JIRA_API_TOKEN)")
	}
	return nil
}

// GetBaseURL returns the full Jira API base URL
func (c *Config) GetBaseURL() string {
	return fmt.Sprintf("https://%s/rest/api/3", c.Domain)
}
