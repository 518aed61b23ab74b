// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/TheACJ/SkillBridge-sub000/internal/logging"
	"github.com/TheACJ/SkillBridge-sub000/internal/matching"
)

// Config holds the complete service configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Matching MatchingConfig `koanf:"matching"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Client   ClientConfig   `koanf:"client"`
	Stats    StatsConfig    `koanf:"stats"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// MaxBodyBytes caps the size of a POST /match body.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// MatchingConfig holds engine limits.
type MatchingConfig struct {
	DefaultLimit  int           `koanf:"default_limit"`
	MaxLimit      int           `koanf:"max_limit"`
	MaxCandidates int           `koanf:"max_candidates"`
	Timeout       time.Duration `koanf:"timeout"`

	// Workers of 0 selects runtime.NumCPU().
	Workers int `koanf:"workers"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	Caller bool `koanf:"caller"`
}

// ClientConfig configures the remote matching client used by callers of
// a separately deployed matching service.
type ClientConfig struct {
	// ServiceURL is the base URL of the remote service. Empty disables the
	// remote path and callers use the in-process engine only.
	ServiceURL string `koanf:"service_url"`

	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	Breaker           BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the client's circuit breaker.
type BreakerConfig struct {
	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval resets failure counts while closed.
	Interval time.Duration `koanf:"interval"`

	// OpenTimeout is how long the breaker stays open before probing.
	OpenTimeout time.Duration `koanf:"open_timeout"`

	// The breaker trips once MinRequests have been seen and the failure
	// ratio reaches FailureRatio.
	MinRequests  uint32  `koanf:"min_requests"`
	FailureRatio float64 `koanf:"failure_ratio"`
}

// StatsConfig configures the periodic stats reporter.
type StatsConfig struct {
	ReportEnabled  bool          `koanf:"report_enabled"`
	ReportInterval time.Duration `koanf:"report_interval"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// EngineConfig converts the matching section into an engine configuration.
func (c *Config) EngineConfig() *matching.Config {
	return &matching.Config{
		Limits: matching.LimitsConfig{
			DefaultLimit:  c.Matching.DefaultLimit,
			MaxLimit:      c.Matching.MaxLimit,
			MaxCandidates: c.Matching.MaxCandidates,
			Timeout:       c.Matching.Timeout,
		},
		Workers: c.Matching.Workers,
	}
}

// LoggingInit converts the logging section into a logging.Config.
func (c *Config) LoggingInit() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}
