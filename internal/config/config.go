package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/loom-ui/loom/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "loom.json"

	// DefaultPort is the default inspector port.
	DefaultPort = 7410

	// DefaultHost is the default inspector host.
	DefaultHost = "localhost"

	// DefaultSnapshotDir is the default local snapshot directory.
	DefaultSnapshotDir = ".loom/snapshots"
)

// Config represents the complete loom.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Inspect contains inspector server configuration.
	Inspect InspectConfig `json:"inspect,omitempty"`

	// Snapshots contains snapshot storage configuration.
	Snapshots SnapshotConfig `json:"snapshots,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// InspectConfig configures the inspector HTTP server.
type InspectConfig struct {
	// Host is the listen host.
	Host string `json:"host,omitempty"`

	// Port is the listen port.
	Port int `json:"port,omitempty"`
}

// SnapshotConfig configures snapshot persistence.
type SnapshotConfig struct {
	// Dir is the local directory for the disk store.
	Dir string `json:"dir,omitempty"`

	// Bucket switches storage to S3 when set.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the S3 key prefix.
	Prefix string `json:"prefix,omitempty"`

	// Region is the S3 bucket region.
	Region string `json:"region,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads loom.json from dir. A missing file yields the defaults,
// not an error; an unreadable or malformed file is a coded error.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.New("E040").Wrap(err).WithDetailf("reading %s", path)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E041").
			Wrap(err).
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E040").Wrap(err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E040").Wrap(err).WithDetailf("writing %s", path)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from, or empty for
// defaults.
func (c *Config) Path() string { return c.configPath }

// InspectAddress returns the host:port the inspector listens on.
func (c *Config) InspectAddress() string {
	return fmt.Sprintf("%s:%d", c.Inspect.Host, c.Inspect.Port)
}

func (c *Config) applyDefaults() {
	if c.Inspect.Host == "" {
		c.Inspect.Host = DefaultHost
	}
	if c.Inspect.Port == 0 {
		c.Inspect.Port = DefaultPort
	}
	if c.Snapshots.Dir == "" {
		c.Snapshots.Dir = DefaultSnapshotDir
	}
}
