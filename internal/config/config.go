// Package config handles the XDG configuration directory and stored files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "taskboard"

	// StoreFile holds the remote store credentials.
	StoreFile = "store.json"

	// ProjectFile optionally overrides the project schedule.
	ProjectFile = "project.json"
)

// Backend selector values for Credentials.Backend.
const (
	BackendREST     = "rest"
	BackendPostgres = "postgres"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// Credentials describe how to reach the remote data store.
type Credentials struct {
	// Backend selects the store implementation: "rest" (PostgREST API)
	// or "postgres" (direct connection). Defaults to "rest".
	Backend string `json:"backend,omitempty"`

	// URL is the project base URL, e.g. https://abc.supabase.co.
	URL string `json:"url,omitempty"`

	// APIKey is the service or anon key sent as a bearer token.
	APIKey string `json:"api_key,omitempty"`

	// ConnString is the Postgres connection string for the "postgres"
	// backend.
	ConnString string `json:"conn_string,omitempty"`
}

// Project describes the tracked project: a display name and the fixed,
// ordered list of dates tasks are planned against. The first date drives
// the urgent recommendation rule.
type Project struct {
	Name  string   `json:"name"`
	Dates []string `json:"dates"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskboard or
// $HOME/.config/taskboard.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// StorePath returns the path to the stored credentials file.
func (c *Config) StorePath() string {
	return filepath.Join(c.Dir, StoreFile)
}

// ProjectPath returns the path to the project schedule file.
func (c *Config) ProjectPath() string {
	return filepath.Join(c.Dir, ProjectFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasCredentials checks if the credentials file exists.
func (c *Config) HasCredentials() bool {
	_, err := os.Stat(c.StorePath())
	return err == nil
}

// LoadCredentials reads and validates the stored credentials.
func (c *Config) LoadCredentials() (*Credentials, error) {
	data, err := os.ReadFile(c.StorePath())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", StoreFile, err)
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", StoreFile, err)
	}
	if creds.Backend == "" {
		creds.Backend = BackendREST
	}
	switch creds.Backend {
	case BackendREST:
		if creds.URL == "" || creds.APIKey == "" {
			return nil, fmt.Errorf("%s needs url and api_key for the rest backend", StoreFile)
		}
	case BackendPostgres:
		if creds.ConnString == "" {
			return nil, fmt.Errorf("%s needs conn_string for the postgres backend", StoreFile)
		}
	default:
		return nil, fmt.Errorf("unknown backend: %s", creds.Backend)
	}
	return &creds, nil
}

// SaveCredentials writes the credentials file with mode 0600.
func (c *Config) SaveCredentials(creds *Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.StorePath(), data, 0600)
}

// RemoveCredentials deletes the credentials file.
func (c *Config) RemoveCredentials() error {
	return os.Remove(c.StorePath())
}

// LoadProject reads the project schedule, falling back to the built-in
// default when no project file exists.
func (c *Config) LoadProject() (Project, error) {
	data, err := os.ReadFile(c.ProjectPath())
	if os.IsNotExist(err) {
		return DefaultProject(), nil
	}
	if err != nil {
		return Project{}, fmt.Errorf("failed to read %s: %w", ProjectFile, err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("invalid %s: %w", ProjectFile, err)
	}
	if len(p.Dates) == 0 {
		p.Dates = DefaultProject().Dates
	}
	return p, nil
}

// DefaultProject returns the built-in project schedule.
func DefaultProject() Project {
	return Project{
		Name:  "Case Review Project",
		Dates: []string{"August 4", "August 5", "August 6", "August 7", "August 8"},
	}
}
