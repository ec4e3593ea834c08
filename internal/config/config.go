package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	DataDir          string `mapstructure:"data_dir"`
	TickIntervalMs   int    `mapstructure:"tick_interval_ms"`
	ChatHistoryLimit int    `mapstructure:"chat_history_limit"`
	Verbose          bool   `mapstructure:"verbose"`
}

var AppConfig *Config

// Initialize loads or creates the configuration file
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".intervu")
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	viper.SetDefault("data_dir", configDir)
	viper.SetDefault("tick_interval_ms", 1000)
	viper.SetDefault("chat_history_limit", 20)
	viper.SetDefault("verbose", false)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if AppConfig.DataDir == "" {
		AppConfig.DataDir = configDir
	}
	if AppConfig.TickIntervalMs <= 0 {
		AppConfig.TickIntervalMs = 1000
	}

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# Intervu Configuration
# Where session state and transcripts are stored (defaults to ~/.intervu)
data_dir: ""

# Deadline poll cadence in milliseconds
tick_interval_ms: 1000

# Transcript lines rendered in the interactive session
chat_history_limit: 20

# Emit structured debug logs to stderr
verbose: false
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".intervu", "config.yaml")
}
