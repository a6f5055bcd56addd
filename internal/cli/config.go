package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration
type Config struct {
	BaseURL     string `yaml:"base_url"`
	DefaultUser string `yaml:"default_user"`
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".qactl", "config.yaml"), nil
}

// LoadConfig loads the configuration from file
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if file doesn't exist
			return &Config{BaseURL: "http://localhost:8080"}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves the configuration to file
func SaveConfig(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Resolve determines the effective base URL and user id.
// Priority: command flags > environment variables > config file.
func Resolve(baseURLFlag, userFlag string) (baseURL, user string, err error) {
	cfg, err := LoadConfig()
	if err != nil {
		return "", "", err
	}

	baseURL = cfg.BaseURL
	if env := os.Getenv("QACTL_BASE_URL"); env != "" {
		baseURL = env
	}
	if baseURLFlag != "" {
		baseURL = baseURLFlag
	}

	user = cfg.DefaultUser
	if env := os.Getenv("QACTL_USER"); env != "" {
		user = env
	}
	if userFlag != "" {
		user = userFlag
	}

	if baseURL == "" {
		return "", "", fmt.Errorf("base URL must be set via --base-url, QACTL_BASE_URL or the config file")
	}

	return baseURL, user, nil
}

// InitConfig creates a default config file
func InitConfig() error {
	cfg := &Config{
		BaseURL:     "http://localhost:8080",
		DefaultUser: "",
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	return SaveConfig(cfg)
}
