package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ssargent/tdswire/pkg/codec"
	"github.com/ssargent/tdswire/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Config represents the tdswire configuration
type Config struct {
	Port     int      `yaml:"port"`
	Bind     string   `yaml:"bind"`
	Security Security `yaml:"security"`
	Logging  Logging  `yaml:"logging"`
	Codec    Codec    `yaml:"codec"`
	Samples  Samples  `yaml:"samples"`
}

// Security contains security-related configuration
type Security struct {
	APIKey string `yaml:"api_key"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Codec contains decoder configuration
type Codec struct {
	// TemporalScale is "fixed" (always scale 7) or "declared" (column scale).
	TemporalScale string `yaml:"temporal_scale"`
	// MaxValueSize bounds a single column value accepted by the inspector.
	MaxValueSize int `yaml:"max_value_size"`
}

// Samples contains the captured sample corpus configuration
type Samples struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Port: 9210,
		Bind: "127.0.0.1",
		Security: Security{
			APIKey: "",
		},
		Logging: Logging{
			Level: "info",
		},
		Codec: Codec{
			TemporalScale: "fixed",
			MaxValueSize:  8000,
		},
		Samples: Samples{
			Dir: filepath.Join(filepath.Dir(GetDefaultConfigPath()), "samples"),
		},
	}
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := codec.ParseScaleMode(c.Codec.TemporalScale); err != nil {
		return fmt.Errorf("invalid codec config: %w", err)
	}
	if c.Codec.MaxValueSize <= 0 {
		return fmt.Errorf("invalid codec config: max_value_size must be positive, got %d", c.Codec.MaxValueSize)
	}
	if c.Logging.Level != "" {
		if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
			return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
		}
	}
	return nil
}

// DecoderConfig translates the codec section into decoder options
func (c *Config) DecoderConfig() (codec.DecoderConfig, error) {
	mode, err := codec.ParseScaleMode(c.Codec.TemporalScale)
	if err != nil {
		return codec.DecoderConfig{}, err
	}
	return codec.DecoderConfig{TemporalScale: mode}, nil
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may carry the API key
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig writes a default configuration with a generated API key
func BootstrapConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	apiKey, err := GenerateSecureKey(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Security.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./tdswire.yaml"
	}

	// For Linux/macOS, use ~/.config/tdswire/config.yaml
	configDir := filepath.Join(homeDir, ".config", "tdswire")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
