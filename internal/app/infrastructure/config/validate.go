package config

import (
	"errors"
	"fmt"
)

func (m *Manager) validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error, fatal; got %s", cfg.App.LogLevel)
	}

	validGinModes := map[string]bool{"debug": true, "release": true, "test": true}
	if cfg.App.GinMode != "" && !validGinModes[cfg.App.GinMode] {
		return fmt.Errorf("app.gin_mode must be one of debug, release, test; got %s", cfg.App.GinMode)
	}

	// log
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 || cfg.Log.MaxAgeDays < 0 {
		return errors.New("log.max_size_mb, log.max_backups and log.max_age_days must be >= 0")
	}

	// limits
	if cfg.Limits.MaxWordLen < 1 || cfg.Limits.MaxWordLen > 4096 {
		return errors.New("limits.max_word_len must be [1,4096]")
	}
	if cfg.Limits.MaxWords < 1 {
		return errors.New("limits.max_words must be >= 1")
	}

	// server
	if cfg.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if cfg.Server.MaxTextBytes < 1 {
		return errors.New("server.max_text_bytes must be >= 1")
	}
	if (cfg.Server.Limiter.Requests != 0 && cfg.Server.Limiter.Per == 0) || (cfg.Server.Limiter.Requests == 0 && cfg.Server.Limiter.Per != 0) {
		return errors.New("server.limiter.requests and server.limiter.per must both be set or both be zero")
	}
	if cfg.Server.Limiter.Requests < 0 || cfg.Server.Limiter.Per < 0 {
		return errors.New("server.limiter values must be >= 0")
	}

	// cache
	if cfg.Cache.Capacity < 0 {
		return errors.New("cache.capacity must be >= 0")
	}
	if cfg.Cache.TTL < 0 {
		return errors.New("cache.ttl must be >= 0")
	}

	// dictionaries
	if cfg.Dictionaries == nil {
		cfg.Dictionaries = make(map[string]string)
	}
	for name, path := range cfg.Dictionaries {
		if name == "" {
			return errors.New("dictionaries: empty name")
		}
		if path == "" {
			return fmt.Errorf("dictionaries.%s: path is required", name)
		}
	}

	return nil
}
