package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/catbuffer/pkg/logging"
	"github.com/ssargent/catbuffer/pkg/model"
)

// Config represents the catbuffer configuration
type Config struct {
	DataDir  string   `yaml:"data_dir"`
	Port     int      `yaml:"port"`
	Bind     string   `yaml:"bind"`
	Codec    Codec    `yaml:"codec"`
	Security Security `yaml:"security"`
	Logging  Logging  `yaml:"logging"`
}

// Codec controls how decoded records are checked
type Codec struct {
	// StrictSize rejects framed records whose declared size disagrees with
	// their content instead of reporting it.
	StrictSize bool `yaml:"strict_size"`
	// DefaultNetwork, when set, is the only network transactions may carry.
	DefaultNetwork string `yaml:"default_network"`
}

// Security contains HTTP service security configuration
type Security struct {
	APIKey      string `yaml:"api_key"`
	MaxBodySize int64  `yaml:"max_body_size"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: "./data",
		Port:    8080,
		Bind:    "127.0.0.1",
		Codec: Codec{
			StrictSize: false,
		},
		Security: Security{
			MaxBodySize: 1 << 20,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return errors.Newf("port %d out of range", c.Port)
	}
	if c.Security.MaxBodySize <= 0 {
		return errors.Newf("max_body_size must be positive, got %d", c.Security.MaxBodySize)
	}
	if _, err := c.Network(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// Network returns the configured network, or nil when none is configured.
func (c *Config) Network() (*model.NetworkType, error) {
	if c.Codec.DefaultNetwork == "" {
		return nil, nil
	}
	n, ok := model.ParseNetworkType(strings.ToUpper(c.Codec.DefaultNetwork))
	if !ok {
		return nil, errors.Newf("unknown default_network %q", c.Codec.DefaultNetwork)
	}
	return &n, nil
}

// JournalPath returns the path of the entity journal under DataDir
func (c *Config) JournalPath() string {
	return filepath.Join(c.DataDir, "entities.journal")
}

// ArchivePath returns the directory of the entity archive under DataDir
func (c *Config) ArchivePath() string {
	return filepath.Join(c.DataDir, "archive")
}

// LoadConfig loads configuration from the specified path. Fields missing
// from the file keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.Newf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "invalid config path")
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "failed to generate secure key")
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig writes a default configuration with a generated API key
func BootstrapConfig(configPath string, dataDir string) (*Config, error) {
	config := DefaultConfig()
	if dataDir != "" {
		config.DataDir = dataDir
	}

	apiKey, err := GenerateSecureKey(32)
	if err != nil {
		return nil, err
	}
	config.Security.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, errors.Wrap(err, "failed to save bootstrap config")
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./catbuffer.yaml"
	}
	return filepath.Join(homeDir, ".config", "catbuffer", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
