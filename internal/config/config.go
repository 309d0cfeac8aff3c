package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config carries everything the binaries need: where the backend lives for
// the SDK, and how the devserver should run.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	REST     RESTConfig     `mapstructure:"rest"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Security SecurityConfig `mapstructure:"security"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Port string `mapstructure:"port" validate:"required,numeric"`
}

type RESTConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`
}

// UploadConfig points at the image hosting account used for avatars.
type UploadConfig struct {
	URL       string `mapstructure:"url"`
	Preset    string `mapstructure:"preset"`
	CloudName string `mapstructure:"cloud_name"`
}

type SecurityConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret" validate:"required,min=16"`
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"required"`
}

type LoggingConfig struct {
	Level     string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format    string `mapstructure:"format" validate:"oneof=text json"`
	AddSource bool   `mapstructure:"add_source"`
}

// Load reads configuration from CAMPUS_* environment variables on top of
// the built-in defaults and validates the result.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "4000")
	v.SetDefault("rest.base_url", "http://localhost:4000/api")
	v.SetDefault("rest.timeout", 10*time.Second)
	v.SetDefault("upload.url", "")
	v.SetDefault("upload.preset", "")
	v.SetDefault("upload.cloud_name", "")
	v.SetDefault("security.jwt_secret", "campus-admin-dev-secret")
	v.SetDefault("security.session_ttl", 7*24*time.Hour)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.add_source", false)

	v.SetEnvPrefix("CAMPUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
}
