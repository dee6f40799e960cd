package config

import (
	"errors"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the fallback ML backend when ML_API_BASE_URL is not set.
const DefaultBaseURL = "https://draughtiest-delisa-attached.ngrok-free.dev"

const (
	defaultPort          = "8000"
	defaultLogLevel      = "info"
	defaultAllowedOrigin = "http://localhost:8080"
)

// Config carries every process-level setting, resolved once at startup and
// injected into the components that need it. Nothing reads viper after Load.
type Config struct {
	Port          string
	LogLevel      string
	AllowedOrigin string
	// BaseURL is the downstream ML API base, without the /predict suffix.
	BaseURL string
}

// Load reads configs/config.yml (optional) and the ML_API_BASE_URL
// environment variable into an explicit Config, applying defaults for
// anything left unset.
func Load() (Config, error) {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine: everything has a default or comes from env.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}
	if err := viper.BindEnv("ml_api_base_url", "ML_API_BASE_URL"); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:          viper.GetString("port"),
		LogLevel:      viper.GetString("log_level"),
		AllowedOrigin: viper.GetString("cors.allowed_origin"),
		BaseURL:       viper.GetString("ml_api_base_url"),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = defaultAllowedOrigin
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg, nil
}
