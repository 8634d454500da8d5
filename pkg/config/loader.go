package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Engine holds the environment-tunable defaults of the validity engine.
// Per-control options take precedence; these only seed the defaults.
type Engine struct {
	// TargetRetryAttempts bounds how often a commit without a validation
	// target re-polls for one before accepting degraded mode.
	TargetRetryAttempts int `env:"FORMCTL_TARGET_RETRY_ATTEMPTS" envDefault:"8"`

	// TargetRetryInterval is the pause between target polls.
	TargetRetryInterval time.Duration `env:"FORMCTL_TARGET_RETRY_INTERVAL" envDefault:"25ms"`

	// AsyncSettleTimeout bounds how long an asynchronous validator may run
	// before its context is cancelled; a validator honoring cancellation
	// then resolves as no-opinion. Zero disables the bound.
	AsyncSettleTimeout time.Duration `env:"FORMCTL_ASYNC_SETTLE_TIMEOUT" envDefault:"0"`
}

// Load populates the provided configuration struct from environment
// variables, loading the default .env file first if one exists.
//
// Example:
//
//	type AppConfig struct {
//		Locale string `env:"APP_LOCALE" envDefault:"en"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; absence is not an error.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return nil
}

// LoadEngine returns the engine defaults from the environment.
func LoadEngine() (Engine, error) {
	var cfg Engine
	if err := Load(&cfg); err != nil {
		return Engine{}, err
	}
	return cfg, nil
}
