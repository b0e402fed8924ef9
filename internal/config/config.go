// Package config loads and saves the devicequery tool configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"devicequery/internal/watch"
)

// What to report while watching.
const (
	WatchMouse = "mouse"
	WatchKeys  = "keys"
	WatchAll   = "all"
)

// Config represents the application configuration
type Config struct {
	// Display is the X11 display to query; empty means $DISPLAY.
	Display string `json:"display,omitempty" yaml:"display,omitempty"`

	// PollIntervalMS is the time between two polls in milliseconds.
	PollIntervalMS int `json:"poll_interval_ms" yaml:"poll_interval_ms"`

	// Watch selects the events printed: "mouse", "keys" or "all".
	Watch string `json:"watch" yaml:"watch"`

	// QuitChord stops the tool when all of its keys are held (e.g. "LControl+Q").
	QuitChord string `json:"quit_chord,omitempty" yaml:"quit_chord,omitempty"`

	API  APIConfig  `json:"api" yaml:"api"`
	Tray TrayConfig `json:"tray" yaml:"tray"`
}

// APIConfig configures the monitor API server
type APIConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Port is the port for the API server (default: 8765)
	Port int `json:"port" yaml:"port"`

	// Token is an optional authentication token for API requests
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// TrayConfig configures the system tray readout
type TrayConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// DefaultConfig returns a new Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		PollIntervalMS: 50,
		Watch:          WatchAll,
		API: APIConfig{
			Enabled: false,
			Port:    8765,
		},
	}
}

// PollInterval is PollIntervalMS as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// Chord parses QuitChord.
func (c *Config) Chord() (watch.Chord, error) {
	return watch.ParseChord(c.QuitChord)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.PollIntervalMS <= 0 {
		return errors.Errorf("poll_interval_ms must be positive, got %d", c.PollIntervalMS)
	}
	switch c.Watch {
	case WatchMouse, WatchKeys, WatchAll:
	default:
		return errors.Errorf("watch must be %q, %q or %q, got %q", WatchMouse, WatchKeys, WatchAll, c.Watch)
	}
	if _, err := c.Chord(); err != nil {
		return errors.Wrap(err, "invalid quit_chord")
	}
	if c.API.Enabled && (c.API.Port <= 0 || c.API.Port > 65535) {
		return errors.Errorf("api.port out of range: %d", c.API.Port)
	}
	return nil
}

// Manager handles loading and saving configuration
type Manager struct {
	mu         sync.Mutex
	configPath string
	config     *Config
	onChanged  func()
	logger     golog.Logger
}

// NewManager creates a configuration manager for path. An empty path uses
// DefaultPath.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	return &Manager{
		configPath: path,
		config:     DefaultConfig(),
		logger:     golog.Global().Named("config"),
	}, nil
}

// DefaultPath returns the per-user configuration file path.
func DefaultPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "no home directory")
		}
		configDir = filepath.Join(home, "Library", "Application Support", "devicequery")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", errors.Wrap(err, "no home directory")
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "devicequery")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", errors.Wrap(err, "no home directory")
			}
			configDir = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(configDir, "devicequery")
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Path is the file the manager reads and writes.
func (m *Manager) Path() string {
	return m.configPath
}

func (m *Manager) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(m.configPath))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads the configuration from disk. Settings missing from the file keep
// their defaults; a missing file means all defaults.
func (m *Manager) Load() error {
	cfg, err := m.read()
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.config = cfg
	onChanged := m.onChanged
	m.mu.Unlock()
	if onChanged != nil {
		onChanged()
	}
	return nil
}

func (m *Manager) read() (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(m.configPath)
	if os.IsNotExist(err) {
		m.logger.Debugw("no config file, using defaults", "path", m.configPath)
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", m.configPath)
	}

	if m.isYAML() {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", m.configPath)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", m.configPath)
	}
	return cfg, nil
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var data []byte
	var err error
	if m.isYAML() {
		data, err = yaml.Marshal(m.config)
	} else {
		data, err = json.MarshalIndent(m.config, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "encode config")
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	m.logger.Debugw("saving configuration", "path", m.configPath, "bytes", len(data))
	return errors.Wrap(os.WriteFile(m.configPath, data, 0o644), "write config")
}

// Get returns a copy of the current configuration
func (m *Manager) Get() *Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg := *m.config
	return &cfg
}

// Set replaces the configuration after validating it
func (m *Manager) Set(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	cfg := *config
	m.mu.Lock()
	m.config = &cfg
	onChanged := m.onChanged
	m.mu.Unlock()
	if onChanged != nil {
		onChanged()
	}
	return nil
}

// RegisterChangeCallback registers a function to be called when config changes
func (m *Manager) RegisterChangeCallback(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChanged = fn
}
