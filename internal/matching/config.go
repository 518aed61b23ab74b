// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import (
	"fmt"
	"runtime"
	"time"
)

// Config contains all configuration for the matching engine.
type Config struct {
	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Workers bounds the number of goroutines scoring one request.
	// Zero selects runtime.NumCPU().
	Workers int `json:"workers"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultLimit is used when a request omits its limit.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit clamps the requested limit.
	MaxLimit int `json:"max_limit"`

	// MaxCandidates rejects pools larger than this.
	MaxCandidates int `json:"max_candidates"`

	// Timeout bounds a single Match call.
	Timeout time.Duration `json:"timeout"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultLimit:  5,
			MaxLimit:      20,
			MaxCandidates: 10000,
			Timeout:       5 * time.Second,
		},
		Workers: 0,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.DefaultLimit <= 0 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit (%d) must be >= limits.default_limit (%d)",
			c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if c.Limits.MaxCandidates <= 0 {
		return fmt.Errorf("limits.max_candidates must be positive, got %d", c.Limits.MaxCandidates)
	}
	if c.Limits.Timeout <= 0 {
		return fmt.Errorf("limits.timeout must be positive, got %s", c.Limits.Timeout)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// workerCount resolves the effective pool size.
func (c *Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
