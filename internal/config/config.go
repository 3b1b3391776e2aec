package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"treefocus/internal/eventbus"
)

// FileName is the per-directory configuration file
const FileName = ".treefocus.toml"

// DefaultIgnore lists directory names skipped while scanning
var DefaultIgnore = []string{"node_modules", "vendor", ".git", "dist", "build", "__pycache__", "target"}

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	Root       string     `toml:"root"`
	MaxDepth   int        `toml:"max_depth"`
	ShowHidden bool       `toml:"show_hidden"`
	Ignore     []string   `toml:"ignore"`
	Expanded   []string   `toml:"expanded"` // paths of expanded directories
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp bool `toml:"show_help"`
	Preview  bool `toml:"preview"` // allow opening files in the pager
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus eventbus.EventBus
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus}
}

// LoadFromPath loads configuration from a specific path.
// A missing file is reported with an error wrapping fs.ErrNotExist.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig(filepath.Dir(path))
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize(filepath.Dir(path))

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Root: cfg.Root})
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

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}

	return nil
}

// LoadOrDefault loads the config file in dir, falling back to defaults when
// it does not exist.
func LoadOrDefault(cs ConfigService, dir string) (*Config, error) {
	cfg, err := cs.LoadFromPath(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(dir), nil
	}
	return cfg, err
}

// DefaultConfig returns the default configuration for browsing root
func DefaultConfig(root string) *Config {
	return &Config{
		Version:  1,
		Root:     root,
		MaxDepth: 6,
		Ignore:   append([]string(nil), DefaultIgnore...),
		UISettings: UISettings{
			ShowHelp: true,
			Preview:  true,
		},
	}
}

func (c *Config) normalize(dir string) {
	if c.Root == "" {
		c.Root = dir
	} else if !filepath.IsAbs(c.Root) {
		c.Root = filepath.Join(dir, c.Root)
	}
	if c.MaxDepth < 0 {
		c.MaxDepth = 0
	}
	if c.Ignore == nil {
		c.Ignore = append([]string(nil), DefaultIgnore...)
	}
}
