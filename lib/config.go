package lib

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint   = "http://localhost:15672"
	DefaultUsername   = "guest"
	DefaultPassword   = "guest"
	DefaultTimeout    = 30 * time.Second
	DefaultClientName = "rabbitmq"
)

type ManagementClientConfig struct {
	// Endpoint: base URL of the management plugin, e.g. http://localhost:15672
	Endpoint string `validate:"required,url"`
	Username string `validate:"required"`
	Password string `validate:"required"`
	// Timeout: per request. Zero means DefaultTimeout.
	Timeout time.Duration `validate:"gte=0"`
	// ClientName: used in span names, HTTP.<ClientName>.<operation>.
	ClientName string
}

func (cfg *ManagementClientConfig) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(cfg)
}

// LoadManagementClientConfig reads RABBITMQ_MGMT_ENDPOINT, RABBITMQ_MGMT_USERNAME,
// RABBITMQ_MGMT_PASSWORD and RABBITMQ_MGMT_TIMEOUT. Variables from envFiles
// (".env" when none are given) are loaded first; a missing file is not an error
// and variables already set in the environment win.
func LoadManagementClientConfig(envFiles ...string) (*ManagementClientConfig, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env files: %w", err)
	}

	timeout := DefaultTimeout
	if raw := os.Getenv("RABBITMQ_MGMT_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("RABBITMQ_MGMT_TIMEOUT: %w", err)
		}
		timeout = parsed
	}

	cfg := &ManagementClientConfig{
		Endpoint:   getEnv("RABBITMQ_MGMT_ENDPOINT", DefaultEndpoint),
		Username:   getEnv("RABBITMQ_MGMT_USERNAME", DefaultUsername),
		Password:   getEnv("RABBITMQ_MGMT_PASSWORD", DefaultPassword),
		Timeout:    timeout,
		ClientName: getEnv("RABBITMQ_MGMT_CLIENT_NAME", DefaultClientName),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
