package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	AppName     = "adminctl"
	EnvFileName = "config.env"
)

// Config holds the runtime configuration, read from the environment after
// the config.env file (if any) has been loaded.
type Config struct {
	APIBaseURL     string        `env:"ADMINCTL_API_BASE_URL" env-default:"http://localhost:8000"`
	RequestTimeout time.Duration `env:"ADMINCTL_REQUEST_TIMEOUT" env-default:"30s"`

	// Retry settings are accepted for compatibility with existing
	// deployments but the gateway performs no retries.
	RetryAttempts int           `env:"ADMINCTL_RETRY_ATTEMPTS" env-default:"3"`
	RetryDelay    time.Duration `env:"ADMINCTL_RETRY_DELAY" env-default:"1s"`

	DBPath   string `env:"ADMINCTL_DB_PATH"`
	TokenKey string `env:"ADMINCTL_TOKEN_KEY" env-required:"true"`
	Debug    bool   `env:"ADMINCTL_DEBUG" env-default:"false"`
}

// Load reads config.env from the user's config directory (ignored if
// missing) and then parses the environment into a Config.
func Load() (Config, error) {
	LoadEnvFile()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = ConfigPath("credentials.db")
	}
	return cfg, nil
}

// LoadEnvFile loads environment variables from the config file in the
// user's config directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	_ = godotenv.Load(ConfigPath(EnvFileName))
}

// ConfigDir returns the XDG config directory for the app.
// Uses $XDG_CONFIG_HOME/adminctl or ~/.config/adminctl
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the full path to a config file.
func ConfigPath(filename string) string {
	return filepath.Join(ConfigDir(), filename)
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	return os.MkdirAll(ConfigDir(), 0700)
}
