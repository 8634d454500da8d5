// Package config loads configuration from environment variables, with
// optional .env file support for development.
//
// Load works with any struct tagged for github.com/caarlos0/env; the
// package also ships the Engine struct holding the validity engine's own
// tunables (validation-target retry bounds, async settle timeout) together
// with the LoadEngine convenience. The engine loads Engine itself during
// construction, so setting the variables is enough; LoadEngine matters when
// the configuration is assembled explicitly:
//
// # Usage
//
//	cfg, err := config.LoadEngine()
//	if err != nil {
//		return err
//	}
//	cfg.TargetRetryAttempts = 3
//	ctl, err := formctl.New(host, typ, formctl.WithEngineConfig(cfg))
//
// Environment variables:
//
//	FORMCTL_TARGET_RETRY_ATTEMPTS  poll attempts for a missing validation target (default 8)
//	FORMCTL_TARGET_RETRY_INTERVAL  pause between polls (default 25ms)
//	FORMCTL_ASYNC_SETTLE_TIMEOUT   bound on a single async validator run (default 0, unbounded)
package config
