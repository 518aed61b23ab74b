// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

// Package config loads service configuration with koanf v2.
//
// Sources are layered, later ones winning:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, or the first of DefaultConfigPaths)
//  3. Environment variables, through an explicit name mapping
//
// Unmapped environment variables are ignored so unrelated process
// environment never leaks into the configuration.
//
// Example config.yaml:
//
//	server:
//	  port: 8001
//	matching:
//	  default_limit: 5
//	  max_limit: 20
//	  timeout: 5s
//	client:
//	  service_url: http://matcher:8001
package config
