package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

// Config represents the credential store configuration
type Config struct {
	Vault VaultConfig `json:"vault"`
}

// VaultConfig represents OS credential vault settings
type VaultConfig struct {
	Service  string   `json:"service"`  // keyring service name
	Backends []string `json:"backends"` // allowed keyring backends, empty means any
	FileDir  string   `json:"fileDir"`  // directory for the encrypted-file fallback backend
	Keychain string   `json:"keychain"` // macOS keychain name, empty means the default keychain
}

// Manager provides configuration management functionality
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		configPath: getConfigPath(),
	}
}

// Load loads configuration from file and merges with defaults
func (m *Manager) Load() (*Config, error) {
	// Start with default configuration
	config := getDefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
		return config, nil
	}

	// Parse config file into a temporary config
	var fileConfig Config
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge file config with defaults
	mergeConfigs(config, &fileConfig)
	return config, nil
}

// Save saves configuration to file
func (m *Manager) Save(config *Config) error {
	// Create the config directory if it doesn't exist
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Vault: VaultConfig{
			Service:  "credstore",
			Backends: nil,
			FileDir:  "",
			Keychain: "",
		},
	}
}

// getConfigPath returns the path to the configuration file following OS conventions
func getConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\credstore\config.json
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "config.json"
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "credstore")

	case "darwin":
		// macOS: ~/Library/Application Support/credstore/config.json
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.json"
		}
		configDir = filepath.Join(home, "Library", "Application Support", "credstore")

	default:
		// Linux/Unix: $XDG_CONFIG_HOME/credstore/config.json or ~/.config/credstore/config.json
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "config.json"
			}
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, "credstore")
	}

	return filepath.Join(configDir, "config.json")
}

// mergeConfigs merges file config values into default config
func mergeConfigs(defaultConfig *Config, fileConfig *Config) {
	if fileConfig.Vault.Service != "" {
		defaultConfig.Vault.Service = fileConfig.Vault.Service
	}
	if fileConfig.Vault.Backends != nil {
		defaultConfig.Vault.Backends = fileConfig.Vault.Backends
	}
	if fileConfig.Vault.FileDir != "" {
		defaultConfig.Vault.FileDir = fileConfig.Vault.FileDir
	}
	if fileConfig.Vault.Keychain != "" {
		defaultConfig.Vault.Keychain = fileConfig.Vault.Keychain
	}
}
