package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// LocalFileName is the per-directory config file checked before the user config
const LocalFileName = ".usersearch.toml"

// Config represents the application configuration
type Config struct {
	BaseURL           string   `toml:"base_url"`
	Endpoint          string   `toml:"endpoint"`
	Debounce          Duration `toml:"debounce"`
	RequestTimeout    Duration `toml:"request_timeout"` // zero means no client-side timeout
	EncodeQuery       bool     `toml:"encode_query"`
	PlaceholderAvatar string   `toml:"placeholder_avatar"`
	VerifiedBadge     string   `toml:"verified_badge"`
	ToastTTL          Duration `toml:"toast_ttl"`
	LogFile           string   `toml:"log_file"`
	LogLevel          string   `toml:"log_level"`
	Server            Server   `toml:"server"`
}

// Server configures the local development backend
type Server struct {
	Addr           string   `toml:"addr"`
	UsersFile      string   `toml:"users_file"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Duration is a time.Duration that reads and writes as a Go duration string ("300ms")
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, string, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type configService struct {
	searchPaths []string
}

// NewConfigService creates a config service that looks in the working
// directory first and then in the user config directory
func NewConfigService() ConfigService {
	paths := []string{LocalFileName}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "usersearch", "config.toml"))
	}
	return &configService{searchPaths: paths}
}

// NewConfigServiceWithPaths creates a config service with an explicit lookup order
func NewConfigServiceWithPaths(paths ...string) ConfigService {
	return &configService{searchPaths: paths}
}

// Load returns the first config found on the search path along with its path.
// When no file exists the defaults are returned with an empty path.
func (cs *configService) Load() (*Config, string, error) {
	for _, path := range cs.searchPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := cs.LoadFromPath(path)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}
	return DefaultConfig(), "", nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that would otherwise fail later at request time
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint must not be empty")
	}
	if c.Debounce < 0 {
		return errors.New("debounce must not be negative")
	}
	if c.RequestTimeout < 0 {
		return errors.New("request_timeout must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           "http://localhost:8080",
		Endpoint:          "/api/users/search",
		Debounce:          Duration(300 * time.Millisecond),
		PlaceholderAvatar: "https://via.placeholder.com/150",
		VerifiedBadge:     "/verified.png",
		ToastTTL:          Duration(4 * time.Second),
		LogFile:           "usersearch.log",
		LogLevel:          "info",
		Server: Server{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}
